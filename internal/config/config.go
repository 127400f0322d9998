// Package config loads application configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Config holds application configuration loaded from the environment.
type Config struct {
	Port               string
	DBPath             string
	GoogleAPIKey       string
	GeminiModel        string
	SessionSecret      string
	SessionTTL         time.Duration
	LogLevel           string
	LogFormat          string
	CORSAllowedOrigins []string
	DefaultCurrency    string
}

// Load reads configuration from environment variables and an optional
// .env file. Only SESSION_SECRET is mandatory; a missing
// GOOGLE_API_KEY is legal (the extraction chain then runs fallback
// only) and is reported when extraction is attempted, not here.
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", func(s string) string { return s }), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := &Config{
		Port:               valueOrDefault(k.String("PORT"), "8080"),
		DBPath:             valueOrDefault(k.String("DB_PATH"), "./data/patungan.db"),
		GoogleAPIKey:       strings.TrimSpace(k.String("GOOGLE_API_KEY")),
		GeminiModel:        strings.TrimSpace(k.String("GEMINI_MODEL")),
		SessionSecret:      k.String("SESSION_SECRET"),
		SessionTTL:         parseDuration(k.String("SESSION_TTL"), "24h"),
		LogLevel:           valueOrDefault(k.String("LOG_LEVEL"), "info"),
		LogFormat:          valueOrDefault(k.String("LOG_FORMAT"), "text"),
		CORSAllowedOrigins: splitAndTrim(k.String("CORS_ALLOWED_ORIGINS")),
		DefaultCurrency:    valueOrDefault(k.String("DEFAULT_CURRENCY"), "IDR"),
	}

	if cfg.SessionSecret == "" {
		return nil, errors.New("SESSION_SECRET is required")
	}

	return cfg, nil
}

// HTTPAddr returns the address the HTTP server should bind to.
func (c *Config) HTTPAddr() string {
	port := strings.TrimSpace(c.Port)
	if port == "" {
		port = "8080"
	}
	if strings.HasPrefix(port, ":") {
		return port
	}
	return ":" + port
}

func splitAndTrim(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func valueOrDefault(value, fallback string) string {
	if strings.TrimSpace(value) != "" {
		return value
	}
	return fallback
}

func parseDuration(value, fallback string) time.Duration {
	base := strings.TrimSpace(value)
	if base == "" {
		base = fallback
	}
	d, err := time.ParseDuration(base)
	if err != nil {
		d, _ = time.ParseDuration(fallback)
	}
	return d
}
