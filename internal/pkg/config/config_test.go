package config

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET": "s3cret",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "3001" || cfg.Env != "development" || cfg.Version != "1.0.0" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.CORSOrigin != "http://localhost:3000" {
		t.Fatalf("unexpected CORS origin: %s", cfg.CORSOrigin)
	}
	if cfg.Redis.Addr != "" {
		t.Fatalf("redis should be disabled by default, got %q", cfg.Redis.Addr)
	}
	if cfg.RateLimit.Max != 100 || cfg.RateLimit.Window != 15*time.Minute {
		t.Fatalf("unexpected rate limit: %+v", cfg.RateLimit)
	}
	if cfg.Location() != time.UTC {
		t.Fatalf("expected UTC, got %s", cfg.Location())
	}
}

func TestLoadFrom_MissingSecret(t *testing.T) {
	_, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{}))
	if !errors.Is(err, ErrMissingJWTSecret) {
		t.Fatalf("expected ErrMissingJWTSecret, got %v", err)
	}
}

func TestLoadFrom_Overrides(t *testing.T) {
	cfg, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET":        "s3cret",
		"APP_ENV":           "production",
		"REDIS_ADDR":        "redis:6379",
		"RATE_LIMIT_MAX":    "10",
		"RATE_LIMIT_WINDOW": "1m",
		"APP_TIMEZONE":      "Europe/London",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.Production() || cfg.Redis.Addr != "redis:6379" || cfg.RateLimit.Max != 10 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.Location().String() != "Europe/London" {
		t.Fatalf("unexpected location: %s", cfg.Location())
	}
}

func TestLoadFrom_BadTimezone(t *testing.T) {
	_, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET":   "s3cret",
		"APP_TIMEZONE": "Mars/Olympus",
	}))
	if err == nil {
		t.Fatalf("expected error for unknown timezone")
	}
}

func TestPrettyLogs(t *testing.T) {
	tests := []struct {
		env    string
		pretty string
		want   bool
	}{
		{env: "development", pretty: "true", want: true},
		{env: "development", pretty: "false", want: false},
		{env: "production", pretty: "true", want: false},
	}
	for _, tt := range tests {
		cfg, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{
			"JWT_SECRET": "s3cret",
			"APP_ENV":    tt.env,
			"LOG_PRETTY": tt.pretty,
		}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := cfg.PrettyLogs(); got != tt.want {
			t.Errorf("env=%s LOG_PRETTY=%s: PrettyLogs() = %v, want %v", tt.env, tt.pretty, got, tt.want)
		}
	}
}
