package config

import (
	"testing"
	"time"
)

func TestFromEnvDefaults(t *testing.T) {
	cfg := FromEnv()
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("expected :8080, got %q", cfg.HTTPAddr)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("expected 10s, got %v", cfg.ShutdownTimeout)
	}
	if cfg.DefaultCountry != "dz" {
		t.Fatalf("expected dz, got %q", cfg.DefaultCountry)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "30")
	t.Setenv("DEFAULT_COUNTRY", "iq")

	cfg := FromEnv()
	if cfg.HTTPAddr != ":9090" {
		t.Fatalf("expected :9090, got %q", cfg.HTTPAddr)
	}
	if cfg.ShutdownTimeout != 30*time.Second {
		t.Fatalf("expected 30s, got %v", cfg.ShutdownTimeout)
	}
	if cfg.DefaultCountry != "iq" {
		t.Fatalf("expected iq, got %q", cfg.DefaultCountry)
	}
}

func TestFromEnvIgnoresMalformedTimeout(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "soon")
	if cfg := FromEnv(); cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("expected default on parse failure, got %v", cfg.ShutdownTimeout)
	}
}
