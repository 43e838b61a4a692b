package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad_Success(t *testing.T) {
	setMinimalEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.App.Env != "production" {
		t.Fatalf("expected App.Env to be production, got %q", cfg.App.Env)
	}

	if cfg.Redis.URL != "redis://localhost:6379/0" {
		t.Fatalf("unexpected Redis URL: %q", cfg.Redis.URL)
	}

	if cfg.Upstream.BaseURL != "http://localhost:3001/api" {
		t.Fatalf("expected default upstream base URL, got %q", cfg.Upstream.BaseURL)
	}

	if got := cfg.Upstream.Timeout; got != 10*time.Second {
		t.Fatalf("expected upstream timeout 10s, got %v", got)
	}

	if got := cfg.Poller.Interval; got != 30*time.Second {
		t.Fatalf("expected poll interval 30s, got %v", got)
	}

	if cfg.Auth.DemoToken != "demo-token-for-testing" {
		t.Fatalf("unexpected demo token %q", cfg.Auth.DemoToken)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	setMinimalEnv(t)
	if err := os.Unsetenv(EnvAppEnv); err != nil {
		t.Fatalf("failed to unset %s: %v", EnvAppEnv, err)
	}

	if _, err := Load(); err == nil {
		t.Fatal("expected missing required env to return an error")
	}
}

func setMinimalEnv(t *testing.T) {
	t.Helper()

	t.Setenv(EnvAppEnv, "production")
	t.Setenv(EnvPort, "8081")
	t.Setenv(EnvRedisURL, "redis://localhost:6379/0")
}
