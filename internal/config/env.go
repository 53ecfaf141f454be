// Package config loads process configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ParseEnv loads configuration from environment variables into target,
// which must be a pointer to a struct tagged with `env` keys.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Server is the configuration of cmd/server.
type Server struct {
	DataDir     string   `env:"ARAMORPH_DATA_DIR" envDefault:"data"`
	Addr        string   `env:"ARAMORPH_ADDR" envDefault:":8080"`
	CORSOrigins []string `env:"ARAMORPH_CORS_ORIGINS" envSeparator:"," envDefault:"*"`
	Workers     int      `env:"ARAMORPH_WORKERS" envDefault:"4"`
}

// LoadServer parses the server configuration and checks its values.
func LoadServer() (Server, error) {
	var cfg Server
	if err := ParseEnv(&cfg); err != nil {
		return Server{}, err
	}
	if cfg.Workers < 1 {
		return Server{}, fmt.Errorf("ARAMORPH_WORKERS must be positive, got %d", cfg.Workers)
	}
	return cfg, nil
}
