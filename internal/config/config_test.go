package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.AppName != "wave-nodes-http" {
		t.Fatalf("unexpected app name %q", cfg.AppName)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("unexpected log level %q", cfg.LogLevel)
	}
	if cfg.OutputFormat != "json" {
		t.Fatalf("unexpected output format %q", cfg.OutputFormat)
	}
	if cfg.RunTimeout != 300*time.Second {
		t.Fatalf("unexpected run timeout %v", cfg.RunTimeout)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("RUN_TIMEOUT_SECONDS", "30")
	t.Setenv("OUTPUT_FORMAT", "yaml")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("env log level not applied, got %q", cfg.LogLevel)
	}
	if cfg.RunTimeout != 30*time.Second {
		t.Fatalf("env run timeout not applied, got %v", cfg.RunTimeout)
	}
	if cfg.OutputFormat != "yaml" {
		t.Fatalf("env output format not applied, got %q", cfg.OutputFormat)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("RUN_TIMEOUT_SECONDS", "0")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for non-positive run timeout")
	}

	t.Setenv("RUN_TIMEOUT_SECONDS", "300")
	t.Setenv("OUTPUT_FORMAT", "xml")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for unknown output format")
	}
}
