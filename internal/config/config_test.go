package config

import (
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range EnvKeys() {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Lookup.TreeOfLifeURL != "https://api.opentreeoflife.org/v3/" {
		t.Errorf("TreeOfLifeURL = %q", cfg.Lookup.TreeOfLifeURL)
	}
	if cfg.Lookup.DOIURL != "https://doi.org/" {
		t.Errorf("DOIURL = %q", cfg.Lookup.DOIURL)
	}
	if cfg.Lookup.Timeout != 15*time.Second {
		t.Errorf("Timeout = %s, want 15s", cfg.Lookup.Timeout)
	}
	if cfg.Lookup.Retries != 2 {
		t.Errorf("Retries = %d, want 2", cfg.Lookup.Retries)
	}
	if !cfg.Import.DataPoints {
		t.Error("DataPoints should default to true")
	}
	if cfg.Database.URL != "" {
		t.Errorf("Database.URL = %q, want empty", cfg.Database.URL)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "text" {
		t.Errorf("logging defaults = %q/%q", cfg.Logging.Level, cfg.Logging.Format)
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOOKUP_TIMEOUT", "3s")
	t.Setenv("LOOKUP_RETRIES", "5")
	t.Setenv("IMPORT_DATA_POINTS", "false")
	t.Setenv("DATABASE_URL", "audiograms.db")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Lookup.Timeout != 3*time.Second {
		t.Errorf("Timeout = %s, want 3s", cfg.Lookup.Timeout)
	}
	if cfg.Lookup.Retries != 5 {
		t.Errorf("Retries = %d, want 5", cfg.Lookup.Retries)
	}
	if cfg.Import.DataPoints {
		t.Error("DataPoints should be false")
	}
	if cfg.Database.URL != "audiograms.db" {
		t.Errorf("Database.URL = %q", cfg.Database.URL)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Format = %q", cfg.Logging.Format)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "malformed duration", key: "LOOKUP_TIMEOUT", value: "soon"},
		{name: "malformed int", key: "LOOKUP_RETRIES", value: "two"},
		{name: "malformed bool", key: "IMPORT_DATA_POINTS", value: "yep"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)
			if _, err := Load(); err == nil {
				t.Errorf("Load accepted %s=%q", tt.key, tt.value)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	clearEnv(t)
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}

	cfg.Lookup.Timeout = 0
	if err := cfg.Validate(); err == nil {
		t.Error("zero timeout should be rejected")
	}
	cfg.Lookup.Timeout = time.Second

	cfg.Logging.Level = "verbose"
	if err := cfg.Validate(); err == nil {
		t.Error("unknown log level should be rejected")
	}
	cfg.Logging.Level = "info"

	cfg.Lookup.DOIURL = ""
	if err := cfg.Validate(); err == nil {
		t.Error("empty DOI_API_URL should be rejected")
	}
}
