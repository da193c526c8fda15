package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("STATBANK_BASE_URL", "https://api.example.org/v2")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Language != "en" {
		t.Errorf("expected default language en, got %q", cfg.Language)
	}
	if cfg.Transport != TransportStdio {
		t.Errorf("expected default transport stdio, got %q", cfg.Transport)
	}
	if cfg.HTTPTimeout != 30*time.Second {
		t.Errorf("expected default timeout 30s, got %v", cfg.HTTPTimeout)
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "console" {
		t.Errorf("unexpected log defaults %q %q", cfg.LogLevel, cfg.LogFormat)
	}
}

func TestLoadRequiresBaseURL(t *testing.T) {
	t.Setenv("STATBANK_BASE_URL", "")

	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "STATBANK_BASE_URL") {
		t.Fatalf("expected base URL error, got %v", err)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("STATBANK_BASE_URL", "https://api.example.org/v2")
	t.Setenv("STATBANK_LANG", "sv")
	t.Setenv("MCP_TRANSPORT", "HTTP")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("HTTP_TIMEOUT", "5s")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Language != "sv" {
		t.Errorf("expected sv, got %q", cfg.Language)
	}
	if cfg.Transport != TransportHTTP {
		t.Errorf("expected http, got %q", cfg.Transport)
	}
	if cfg.HTTPAddr != ":9090" {
		t.Errorf("expected :9090, got %q", cfg.HTTPAddr)
	}
	if cfg.HTTPTimeout != 5*time.Second {
		t.Errorf("expected 5s, got %v", cfg.HTTPTimeout)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"MCP_TRANSPORT", "grpc"},
		{"LOG_LEVEL", "loud"},
		{"LOG_FORMAT", "xml"},
		{"HTTP_TIMEOUT", "soon"},
		{"HTTP_TIMEOUT", "-2s"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv("STATBANK_BASE_URL", "https://api.example.org/v2")
			t.Setenv(tt.key, tt.value)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%s", tt.key, tt.value)
			}
		})
	}
}
