package config

import (
	"context"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	// No environment set up: every field must fall back to its default so
	// the generator binaries can run with zero configuration.
	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load with empty environment failed: %v", err)
	}

	if cfg.OutputDir != "." {
		t.Errorf("expected default output dir '.', got %q", cfg.OutputDir)
	}
	if cfg.Environment != "local" {
		t.Errorf("expected default environment 'local', got %q", cfg.Environment)
	}
	if cfg.Port != "8981" {
		t.Errorf("expected default port 8981, got %q", cfg.Port)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected default log level 'info', got %q", cfg.LogLevel)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("OUTPUT_DIR", "/tmp/reports")
	t.Setenv("GCS_BUCKET", "integration-artifacts")
	t.Setenv("ENVIRONMENT", "production")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.OutputDir != "/tmp/reports" {
		t.Errorf("expected OUTPUT_DIR override, got %q", cfg.OutputDir)
	}
	if cfg.GCSBucket != "integration-artifacts" {
		t.Errorf("expected GCS_BUCKET override, got %q", cfg.GCSBucket)
	}
	if cfg.Environment != "production" {
		t.Errorf("expected ENVIRONMENT override, got %q", cfg.Environment)
	}
}

func TestGetVersion(t *testing.T) {
	t.Setenv("APP_VERSION", "9.9.9")
	if v := GetVersion(); v != "9.9.9" {
		t.Errorf("expected APP_VERSION to win, got %q", v)
	}
}
