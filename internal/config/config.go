package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/joho/godotenv"
	"go-simpler.org/env"
)

type Config struct {
	APIBaseURL     string        `env:"API_BASE_URL" default:"http://localhost:8000/api/v1"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" default:"10s"`
	LogLevel       string        `env:"LOG_LEVEL" default:"info"`
	LogFormat      string        `env:"LOG_FORMAT" default:"text"`

	// Cached list/detail data is considered fresh for CacheFreshness and
	// evicted after CacheRetention without access.
	CacheFreshness time.Duration `env:"CACHE_FRESHNESS" default:"5m"`
	CacheRetention time.Duration `env:"CACHE_RETENTION" default:"10m"`

	// FetchRetries is the number of automatic retries after a failed
	// fetch. Tests set it to 0 for determinism.
	FetchRetries int `env:"FETCH_RETRIES" default:"1"`
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	var cfg Config
	if err := env.Load(&cfg, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func validate(cfg *Config) error {
	if _, err := url.ParseRequestURI(cfg.APIBaseURL); err != nil {
		return fmt.Errorf("API_BASE_URL must be a valid URL: %w", err)
	}

	if cfg.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must be positive, got %s", cfg.RequestTimeout)
	}

	if cfg.FetchRetries < 0 {
		return fmt.Errorf("FETCH_RETRIES must not be negative, got %d", cfg.FetchRetries)
	}

	if cfg.CacheRetention < cfg.CacheFreshness {
		return fmt.Errorf("CACHE_RETENTION (%s) must not be shorter than CACHE_FRESHNESS (%s)",
			cfg.CacheRetention, cfg.CacheFreshness)
	}

	return nil
}
