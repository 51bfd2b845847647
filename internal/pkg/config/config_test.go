package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func TestLoadWith_Defaults(t *testing.T) {
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "5000" {
		t.Errorf("expected default port 5000, got %q", cfg.Port)
	}
	if cfg.UploadDir != "uploads" {
		t.Errorf("expected default upload dir, got %q", cfg.UploadDir)
	}
	if cfg.Mongo.URI != "" {
		t.Errorf("mongo uri must have no default, got %q", cfg.Mongo.URI)
	}
	if cfg.Mongo.Timeout != 10*time.Second {
		t.Errorf("unexpected mongo timeout %v", cfg.Mongo.Timeout)
	}
	if cfg.Redis.Addr != "" {
		t.Errorf("redis must be disabled by default, got %q", cfg.Redis.Addr)
	}
	if cfg.Notify.Workers != 4 || cfg.Notify.Buffer != 256 {
		t.Errorf("unexpected notify defaults %+v", cfg.Notify)
	}
	if !cfg.Development() {
		t.Error("default env must be development")
	}
}

func TestLoadWith_Overrides(t *testing.T) {
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"PORT":           "8081",
		"ENV":            "production",
		"MONGO_URI":      "mongodb://db:27017",
		"REDIS_ADDR":     "redis:6379",
		"NOTIFY_WORKERS": "2",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8081" || cfg.Mongo.URI != "mongodb://db:27017" || cfg.Redis.Addr != "redis:6379" {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Notify.Workers != 2 {
		t.Errorf("expected 2 workers, got %d", cfg.Notify.Workers)
	}
	if cfg.Development() {
		t.Error("production must not be development")
	}
}

func TestLoadWith_Invalid(t *testing.T) {
	cases := map[string]map[string]string{
		"non-numeric port": {"PORT": "http"},
		"unknown level":    {"LOG_LEVEL": "loud"},
		"zero workers":     {"NOTIFY_WORKERS": "0"},
		"unknown env":      {"ENV": "staging"},
		"bad duration":     {"SHUTDOWN_TIMEOUT": "soon"},
	}
	for name, env := range cases {
		if _, err := LoadWith(context.Background(), envconfig.MapLookuper(env)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}
