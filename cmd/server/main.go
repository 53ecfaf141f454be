// Command server exposes the Arabic morphological analyzer as a JSON REST API.
//
// Endpoints:
//
//	GET  /api/analyze?word=<word>[&normalize=true]
//	POST /api/analyze/text   body: {"text":"..."}
//	GET  /api/segment?word=<word>
//	GET  /api/stats
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"log"
	"net/http"
	"strconv"

	"github.com/rs/cors"

	"github.com/quenya/aramorph"
	"github.com/quenya/aramorph/internal/config"
)

// ---- JSON response types ------------------------------------------------

type solutionJSON struct {
	Vocalization string `json:"vocalization"`
	POS          string `json:"pos"`
	Gloss        string `json:"gloss"`
	LemmaID      string `json:"lemma_id"`
}

type analyzeWordResponse struct {
	Word      string         `json:"word"`
	Solutions []solutionJSON `json:"solutions"`
}

type analyzeTextResponse struct {
	Results []analyzeWordResponse `json:"results"`
}

type segmentationJSON struct {
	Prefix string `json:"prefix"`
	Stem   string `json:"stem"`
	Suffix string `json:"suffix"`
}

type segmentResponse struct {
	Word          string             `json:"word"`
	Segmentations []segmentationJSON `json:"segmentations"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func toSolutionsJSON(sols []aramorph.Solution) []solutionJSON {
	out := make([]solutionJSON, 0, len(sols))
	for _, s := range sols {
		out = append(out, solutionJSON{
			Vocalization: s.Vocalization,
			POS:          s.POS,
			Gloss:        s.Gloss,
			LemmaID:      s.LemmaID,
		})
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode error: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// analysisStatus maps an analysis error to an HTTP status.
func analysisStatus(err error) int {
	var ae *aramorph.AnalysisError
	if errors.As(err, &ae) {
		return http.StatusInternalServerError
	}
	return http.StatusServiceUnavailable
}

// ---- handlers -----------------------------------------------------------

func handleAnalyzeWord(an *aramorph.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		word := r.URL.Query().Get("word")
		if word == "" {
			writeError(w, http.StatusBadRequest, "missing 'word' query parameter")
			return
		}
		if normalize, _ := strconv.ParseBool(r.URL.Query().Get("normalize")); normalize {
			word = aramorph.Normalize(word)
		}

		sols, err := an.AnalyzeWord(word)
		if err != nil {
			log.Printf("analyze %q: %v", word, err)
			writeError(w, analysisStatus(err), err.Error())
			return
		}
		status := http.StatusOK
		if len(sols) == 0 {
			status = http.StatusNotFound
		}
		writeJSON(w, status, analyzeWordResponse{
			Word:      word,
			Solutions: toSolutionsJSON(sols),
		})
	}
}

func handleAnalyzeText(an *aramorph.Analyzer, workers int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		var body struct {
			Text      string `json:"text"`
			Normalize bool   `json:"normalize"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Text == "" {
			writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'text' field")
			return
		}
		text := body.Text
		if body.Normalize {
			text = aramorph.Normalize(text)
		}

		results, err := an.AnalyzeText(r.Context(), text, workers)
		if err != nil {
			log.Printf("analyze text: %v", err)
			writeError(w, analysisStatus(err), err.Error())
			return
		}
		out := make([]analyzeWordResponse, 0, len(results))
		for _, res := range results {
			out = append(out, analyzeWordResponse{
				Word:      res.Word,
				Solutions: toSolutionsJSON(res.Solutions),
			})
		}
		writeJSON(w, http.StatusOK, analyzeTextResponse{Results: out})
	}
}

func handleSegment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		word := r.URL.Query().Get("word")
		if word == "" {
			writeError(w, http.StatusBadRequest, "missing 'word' query parameter")
			return
		}
		segs := aramorph.Segment(word)
		out := make([]segmentationJSON, 0, len(segs))
		for _, s := range segs {
			out = append(out, segmentationJSON{Prefix: s.Prefix, Stem: s.Stem, Suffix: s.Suffix})
		}
		writeJSON(w, http.StatusOK, segmentResponse{Word: word, Segmentations: out})
	}
}

func handleStats(an *aramorph.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		writeJSON(w, http.StatusOK, an.Stats())
	}
}

// newHandler builds the API mux wrapped in the CORS middleware.
func newHandler(an *aramorph.Analyzer, cfg config.Server) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/analyze/text", handleAnalyzeText(an, cfg.Workers))
	mux.HandleFunc("/api/analyze", handleAnalyzeWord(an))
	mux.HandleFunc("/api/segment", handleSegment())
	mux.HandleFunc("/api/stats", handleStats(an))

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	})
	return c.Handler(mux)
}

// ---- main ---------------------------------------------------------------

func main() {
	cfg, err := config.LoadServer()
	if err != nil {
		config.Exitf("Error: %v", err)
	}
	flag.StringVar(&cfg.DataDir, "data", cfg.DataDir, "path to the lexicon data directory")
	flag.StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address")
	flag.IntVar(&cfg.Workers, "workers", cfg.Workers, "concurrent analyses per text request")
	flag.Parse()

	log.Printf("loading data from %s …", cfg.DataDir)
	an, err := aramorph.New(cfg.DataDir, aramorph.WithLogger(log.Default()))
	if err != nil {
		config.Exitf("failed to load data: %v", err)
	}
	log.Println("data loaded")

	log.Printf("listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, newHandler(an, cfg)); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
