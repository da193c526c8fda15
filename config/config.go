// Package config provides environment-based configuration for the
// statbank-mcp server. Settings are read from environment variables with
// sensible defaults and validated on startup to fail fast on
// misconfiguration.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Transport values accepted by MCP_TRANSPORT.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
	TransportSSE   = "sse"
)

// Config holds all server configuration.
type Config struct {
	// BaseURL is the statistics API root (STATBANK_BASE_URL, required).
	BaseURL string

	// Language selects the API response language (STATBANK_LANG, default "en").
	Language string

	// Transport selects the MCP transport (MCP_TRANSPORT, default "stdio").
	Transport string

	// HTTPAddr is the listen address for http/sse transports
	// (HTTP_ADDR, default ":8080").
	HTTPAddr string

	// HTTPTimeout bounds a single remote API request
	// (HTTP_TIMEOUT, default 30s).
	HTTPTimeout time.Duration

	// LogLevel is "debug", "info", "warn" or "error" (LOG_LEVEL, default "info").
	LogLevel string

	// LogFormat is "json" or "console" (LOG_FORMAT, default "console").
	LogFormat string
}

// Load reads configuration from the environment and validates it.
func Load() (*Config, error) {
	cfg := &Config{
		BaseURL:     strings.TrimSpace(os.Getenv("STATBANK_BASE_URL")),
		Language:    envOr("STATBANK_LANG", "en"),
		Transport:   strings.ToLower(envOr("MCP_TRANSPORT", TransportStdio)),
		HTTPAddr:    envOr("HTTP_ADDR", ":8080"),
		LogLevel:    strings.ToLower(envOr("LOG_LEVEL", "info")),
		LogFormat:   strings.ToLower(envOr("LOG_FORMAT", "console")),
		HTTPTimeout: 30 * time.Second,
	}

	if raw := os.Getenv("HTTP_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid HTTP_TIMEOUT %q: %w", raw, err)
		}
		cfg.HTTPTimeout = d
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("STATBANK_BASE_URL is required")
	}
	switch c.Transport {
	case TransportStdio, TransportHTTP, TransportSSE:
	default:
		return fmt.Errorf("invalid MCP_TRANSPORT %q (want stdio, http or sse)", c.Transport)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid LOG_LEVEL %q", c.LogLevel)
	}
	switch c.LogFormat {
	case "json", "console":
	default:
		return fmt.Errorf("invalid LOG_FORMAT %q", c.LogFormat)
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
