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
	if !cfg.App.IsProd() {
		t.Fatal("expected IsProd to report true")
	}

	if got := cfg.JWT.AccessTokenTTL(); got != time.Hour {
		t.Fatalf("expected access token ttl 1h, got %v", got)
	}

	if cfg.Auth.MockDelay != 50*time.Millisecond {
		t.Fatalf("unexpected mock delay %v", cfg.Auth.MockDelay)
	}
}

func TestLoad_DefaultMockDelay(t *testing.T) {
	setMinimalEnv(t)
	if err := os.Unsetenv(EnvAuthMockDelay); err != nil {
		t.Fatalf("failed to unset %s: %v", EnvAuthMockDelay, err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if cfg.Auth.MockDelay != time.Second {
		t.Fatalf("expected default mock delay 1s, got %v", cfg.Auth.MockDelay)
	}
}

func TestLoad_CORSOrigins(t *testing.T) {
	setMinimalEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if len(cfg.CORS.AllowedOrigins) != 2 {
		t.Fatalf("expected 2 default origins, got %v", cfg.CORS.AllowedOrigins)
	}
	if cfg.CORS.AllowedOrigins[0] != "http://localhost:3000" {
		t.Fatalf("unexpected default origin %q", cfg.CORS.AllowedOrigins[0])
	}

	t.Setenv(EnvCORSOrigins, "https://shop.example.com")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if len(cfg.CORS.AllowedOrigins) != 1 || cfg.CORS.AllowedOrigins[0] != "https://shop.example.com" {
		t.Fatalf("expected configured origin, got %v", cfg.CORS.AllowedOrigins)
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
	t.Setenv(EnvJWTSecret, "secret")
	t.Setenv(EnvJWTIssuer, "quickkart")
	t.Setenv(EnvJWTExpMins, "60")
	t.Setenv(EnvAuthMockDelay, "50ms")
}
