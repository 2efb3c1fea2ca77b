package config

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func env(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv(env(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("expected port 8080, got %q", cfg.Port)
	}
	if cfg.SessionTTL != time.Hour {
		t.Errorf("expected 1h session ttl, got %v", cfg.SessionTTL)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("expected info level, got %v", cfg.LogLevel)
	}
	if cfg.LogFormat != "text" {
		t.Errorf("expected text format, got %q", cfg.LogFormat)
	}
	if cfg.DatabaseURL != "" || cfg.SiteFile != "" {
		t.Error("expected optional sources to be unset")
	}
}

func TestFromEnvValues(t *testing.T) {
	cfg, err := FromEnv(env(map[string]string{
		"PORT":         "9000",
		"DATABASE_URL": "postgres://localhost:5432/portfolio",
		"SITE_CONFIG":  "/etc/portfolio/site.yaml",
		"SESSION_TTL":  "30m",
		"LOG_LEVEL":    "debug",
		"LOG_FORMAT":   "JSON",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "9000" {
		t.Errorf("unexpected port %q", cfg.Port)
	}
	if cfg.SessionTTL != 30*time.Minute {
		t.Errorf("unexpected ttl %v", cfg.SessionTTL)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("unexpected level %v", cfg.LogLevel)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("unexpected format %q", cfg.LogFormat)
	}
	if cfg.SiteFile != "/etc/portfolio/site.yaml" {
		t.Errorf("unexpected site file %q", cfg.SiteFile)
	}
}

func TestFromEnvErrors(t *testing.T) {
	tests := map[string]map[string]string{
		"bad ttl":      {"SESSION_TTL": "soon"},
		"negative ttl": {"SESSION_TTL": "-1h"},
		"bad level":    {"LOG_LEVEL": "loud"},
		"bad format":   {"LOG_FORMAT": "xml"},
	}
	for name, values := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := FromEnv(env(values)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := Config{LogLevel: slog.LevelWarn, LogFormat: "json"}
	logger := cfg.Logger(&buf)

	logger.Info("hidden")
	logger.Warn("shown", slog.String("k", "v"))

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("expected info record to be filtered")
	}
	if !strings.Contains(out, `"msg":"shown"`) {
		t.Errorf("expected json record, got %q", out)
	}
}
