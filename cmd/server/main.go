package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/cors"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/andhikaps/patungan/internal/config"
	"github.com/andhikaps/patungan/internal/extract"
	"github.com/andhikaps/patungan/internal/service"
	"github.com/andhikaps/patungan/internal/session"
	"github.com/andhikaps/patungan/internal/storage/sqlite"
	"github.com/andhikaps/patungan/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	logging.Setup(cfg.LogLevel, cfg.LogFormat)

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	extractor := buildExtractor(cfg)

	tokens := session.NewTokenManager(cfg.SessionSecret, cfg.SessionTTL)
	sessions := session.NewManager(tokens, cfg.DefaultCurrency)

	handler := service.New(sessions, store, extractor).Router()
	handler = corsHandler(cfg)(handler)

	// h2c keeps HTTP/2 available without TLS for local deployments.
	h2cHandler := h2c.NewHandler(handler, &http2.Server{})

	addr := cfg.HTTPAddr()
	slog.Info("Server starting", "address", addr)
	if err := http.ListenAndServe(addr, h2cHandler); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

// buildExtractor assembles the extraction chain. Without an API key the
// primary slot stays empty and only the text fallback runs; that is a
// supported deployment, not an error.
func buildExtractor(cfg *config.Config) extract.Extractor {
	chain := extract.Chain{Fallback: extract.TextFallback{}}

	gemini, err := extract.NewGemini(cfg.GoogleAPIKey, cfg.GeminiModel)
	if err != nil {
		slog.Warn("AI extraction disabled, using text fallback only", "error", err)
		return chain
	}
	chain.Primary = gemini
	return chain
}

func corsHandler(cfg *config.Config) func(http.Handler) http.Handler {
	origins := cfg.CORSAllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	})
}
