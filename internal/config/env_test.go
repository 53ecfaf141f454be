package config

import (
	"os"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envTestConfig struct {
	Port int `env:"ARAMORPH_TEST_PORT" envDefault:"123"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig
	require.NoError(t, ParseEnv(&cfg))
	assert.Equal(t, 123, cfg.Port)
}

func TestParseEnvError(t *testing.T) {
	t.Setenv("ARAMORPH_TEST_PORT", "not-an-int")
	var cfg envTestConfig
	err := ParseEnv(&cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestLoadServerDefaults(t *testing.T) {
	cfg, err := LoadServer()
	require.NoError(t, err)
	assert.Equal(t, Server{
		DataDir:     "data",
		Addr:        ":8080",
		CORSOrigins: []string{"*"},
		Workers:     4,
	}, cfg)
}

func TestLoadServerFromEnv(t *testing.T) {
	t.Setenv("ARAMORPH_DATA_DIR", "/srv/buckwalter")
	t.Setenv("ARAMORPH_CORS_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("ARAMORPH_WORKERS", "8")

	cfg, err := LoadServer()
	require.NoError(t, err)
	assert.Equal(t, "/srv/buckwalter", cfg.DataDir)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, 8, cfg.Workers)
}

func TestLoadServerRejectsWorkers(t *testing.T) {
	t.Setenv("ARAMORPH_WORKERS", "0")
	_, err := LoadServer()
	assert.ErrorContains(t, err, "ARAMORPH_WORKERS")
}

// os.Exit cannot be intercepted in-process, so Exitf runs in a subprocess.
func TestExitfExitsWithCode1(t *testing.T) {
	if os.Getenv("TEST_EXITF_SUBPROCESS") == "1" {
		Exitf("fatal: %s", "something broke")
		return
	}
	cmd := exec.Command(os.Args[0], "-test.run=^TestExitfExitsWithCode1$")
	cmd.Env = append(os.Environ(), "TEST_EXITF_SUBPROCESS=1")
	out, err := cmd.CombinedOutput()

	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.ExitCode())
	assert.Contains(t, string(out), "fatal: something broke")
}
