package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string
	SiteFile    string
	SessionTTL  time.Duration
	LogLevel    slog.Level
	LogFormat   string
}

// Load reads an optional .env file and then the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}
	return FromEnv(os.Getenv)
}

func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		Port:        getenv("PORT"),
		DatabaseURL: getenv("DATABASE_URL"),
		SiteFile:    getenv("SITE_CONFIG"),
		SessionTTL:  time.Hour,
		LogLevel:    slog.LevelInfo,
		LogFormat:   strings.ToLower(getenv("LOG_FORMAT")),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	if v := getenv("SESSION_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid SESSION_TTL %q: %w", v, err)
		}
		if ttl <= 0 {
			return cfg, fmt.Errorf("invalid SESSION_TTL %q: must be positive", v)
		}
		cfg.SessionTTL = ttl
	}

	if v := getenv("LOG_LEVEL"); v != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return cfg, fmt.Errorf("invalid LOG_LEVEL %q: %w", v, err)
		}
	}

	switch cfg.LogFormat {
	case "", "text":
		cfg.LogFormat = "text"
	case "json":
	default:
		return cfg, fmt.Errorf("invalid LOG_FORMAT %q: want text or json", cfg.LogFormat)
	}

	return cfg, nil
}

// Logger builds the process logger described by cfg.
func (c Config) Logger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.LogLevel}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
