// Package config loads dashboard configuration: process-level settings from
// environment variables and the dataset schema declarations from a YAML
// file. Everything is validated fail-fast at startup; a misconfigured
// process refuses to serve rather than render empty panels.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Defaults for optional settings.
const (
	DefaultAddr         = ":8080"
	DefaultBaseURL      = "https://docs.google.com/spreadsheets/d"
	DefaultFetchTimeout = 30 * time.Second
	DefaultFetchRate    = 1.0 // requests per second against the gviz endpoint
	DefaultFetchBurst   = 2
	DefaultSchemaPath   = "config/datasets.yaml"
)

// Config holds process-level dashboard settings.
// The spreadsheet identifier is explicit configuration handed to the loader
// at construction time, never a module-level constant.
type Config struct {
	// Addr is the HTTP listen address of the API server.
	Addr string

	// SheetID identifies the published Google Sheets document.
	SheetID string

	// BaseURL is the spreadsheet host prefix; overridable for tests.
	BaseURL string

	// FetchTimeout bounds one dataset fetch, retries included.
	FetchTimeout time.Duration

	// FetchRate and FetchBurst shape the client-side rate limit on
	// outbound gviz requests.
	FetchRate  float64
	FetchBurst int

	// SchemaPath points at the YAML dataset schema file.
	SchemaPath string
}

// Load reads configuration from the environment.
// SHEET_ID is required; everything else has a default.
func Load() (*Config, error) {
	cfg := &Config{
		Addr:         envOr("LISTEN_ADDR", DefaultAddr),
		SheetID:      os.Getenv("SHEET_ID"),
		BaseURL:      envOr("SHEET_BASE_URL", DefaultBaseURL),
		FetchTimeout: DefaultFetchTimeout,
		FetchRate:    DefaultFetchRate,
		FetchBurst:   DefaultFetchBurst,
		SchemaPath:   envOr("DATASET_SCHEMA_PATH", DefaultSchemaPath),
	}

	if cfg.SheetID == "" {
		return nil, fmt.Errorf("SHEET_ID must be set")
	}

	if v := os.Getenv("SHEET_FETCH_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SHEET_FETCH_TIMEOUT %q: %w", v, err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("SHEET_FETCH_TIMEOUT must be positive, got %q", v)
		}
		cfg.FetchTimeout = d
	}

	if v := os.Getenv("SHEET_FETCH_RATE"); v != "" {
		r, err := strconv.ParseFloat(v, 64)
		if err != nil || r <= 0 {
			return nil, fmt.Errorf("invalid SHEET_FETCH_RATE %q", v)
		}
		cfg.FetchRate = r
	}

	if v := os.Getenv("SHEET_FETCH_BURST"); v != "" {
		b, err := strconv.Atoi(v)
		if err != nil || b <= 0 {
			return nil, fmt.Errorf("invalid SHEET_FETCH_BURST %q", v)
		}
		cfg.FetchBurst = b
	}

	return cfg, nil
}

// envOr returns the environment value or a fallback when unset.
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
