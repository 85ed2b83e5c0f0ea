// Package config provides centralized configuration management for the
// importer. It loads configuration from environment variables with sensible
// defaults and validates all settings on startup to fail fast on
// misconfiguration.
package config

import (
	"fmt"
	"strings"
	"time"
)

// Config holds all importer configuration.
// All settings can be configured via environment variables; the input and
// output paths are command-line flags because they change on every run.
type Config struct {
	Lookup   LookupConfig
	Import   ImportConfig
	Database DatabaseConfig
	Logging  LoggingConfig
}

// LookupConfig holds settings for the external enrichment services.
type LookupConfig struct {
	// TreeOfLifeURL is the base URL of the Open Tree of Life API.
	TreeOfLifeURL string `env:"TREE_OF_LIFE_URL" default:"https://api.opentreeoflife.org/v3/"`

	// WikipediaURL is the Wikipedia API endpoint used to resolve wikibase item ids.
	WikipediaURL string `env:"WIKIPEDIA_API_URL" default:"https://en.wikipedia.org/w/api.php"`

	// WikidataURL is the Wikidata API endpoint used for vernacular-name labels.
	WikidataURL string `env:"WIKIDATA_API_URL" default:"https://www.wikidata.org/w/api.php"`

	// DOIURL is the DOI content-negotiation endpoint for citation lookups.
	DOIURL string `env:"DOI_API_URL" default:"https://doi.org/"`

	// Timeout is the per-request timeout for all lookup calls (default: 15s).
	// A hung external service must never block the whole run.
	Timeout time.Duration `env:"LOOKUP_TIMEOUT" default:"15s"`

	// Retries is how many times a failed lookup is retried (default: 2).
	Retries int `env:"LOOKUP_RETRIES" default:"2"`

	// RetryBackoff is the delay between retries, doubled per attempt (default: 500ms).
	RetryBackoff time.Duration `env:"LOOKUP_RETRY_BACKOFF" default:"500ms"`
}

// ImportConfig holds toggles for optional pipeline stages.
type ImportConfig struct {
	// DataPoints controls whether audiogram data points are built, one per
	// sheet row (default: true).
	DataPoints bool `env:"IMPORT_DATA_POINTS" default:"true"`
}

// DatabaseConfig holds the optional direct-load target.
type DatabaseConfig struct {
	// URL is a database to apply the generated statements to after the dump
	// file is written. postgres:// URLs use pgx; anything else is treated as
	// a SQLite path. Empty disables direct loading.
	URL string `env:"DATABASE_URL"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// Validate checks configuration consistency.
func (c *Config) Validate() error {
	if c.Lookup.Timeout <= 0 {
		return fmt.Errorf("LOOKUP_TIMEOUT must be positive, got %s", c.Lookup.Timeout)
	}
	if c.Lookup.Retries < 0 {
		return fmt.Errorf("LOOKUP_RETRIES must not be negative, got %d", c.Lookup.Retries)
	}
	if c.Lookup.RetryBackoff < 0 {
		return fmt.Errorf("LOOKUP_RETRY_BACKOFF must not be negative, got %s", c.Lookup.RetryBackoff)
	}
	for name, u := range map[string]string{
		"TREE_OF_LIFE_URL":  c.Lookup.TreeOfLifeURL,
		"WIKIPEDIA_API_URL": c.Lookup.WikipediaURL,
		"WIKIDATA_API_URL":  c.Lookup.WikidataURL,
		"DOI_API_URL":       c.Lookup.DOIURL,
	} {
		if u == "" {
			return fmt.Errorf("%s must not be empty", name)
		}
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid LOG_LEVEL %q", c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("invalid LOG_FORMAT %q", c.Logging.Format)
	}
	return nil
}
