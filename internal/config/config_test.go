package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_DefaultsAndTemplates(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("OPENAI_API_KEY", "")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Journal.DBPath != filepath.Join(dir, "reflectr.db") {
		t.Errorf("Unexpected db path %q", cfg.Journal.DBPath)
	}
	if cfg.Journal.WarnThreshold != 6 {
		t.Errorf("Default warn_threshold = %d, want 6", cfg.Journal.WarnThreshold)
	}
	if cfg.Insights.Model != "gpt-4o-mini" {
		t.Errorf("Default model = %q", cfg.Insights.Model)
	}
	if cfg.Insights.Window != 10 || cfg.Insights.MinTrades != 3 {
		t.Errorf("Default insight window/min = %d/%d", cfg.Insights.Window, cfg.Insights.MinTrades)
	}
	if cfg.HasInsights() {
		t.Error("No credentials file must mean no insights")
	}

	// first load drops template files for the user to edit
	if _, err := os.Stat(filepath.Join(dir, "config.toml")); err != nil {
		t.Error("Load must create a template config.toml")
	}
	if _, err := os.Stat(filepath.Join(dir, "credentials.toml")); err != nil {
		t.Error("Load must create a template credentials.toml")
	}
}

func TestLoad_ReadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("REFLECTR_DB", "")
	t.Setenv("REFLECTR_MODEL", "")
	content := `
[journal]
db_path = "/tmp/custom.db"
warn_threshold = 4

[insights]
model = "gpt-4o"
window = 5
`
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Journal.DBPath != "/tmp/custom.db" {
		t.Errorf("db_path = %q", cfg.Journal.DBPath)
	}
	if cfg.Journal.WarnThreshold != 4 {
		t.Errorf("warn_threshold = %d", cfg.Journal.WarnThreshold)
	}
	if cfg.Insights.Model != "gpt-4o" {
		t.Errorf("model = %q", cfg.Insights.Model)
	}
	if cfg.Insights.Window != 5 {
		t.Errorf("window = %d", cfg.Insights.Window)
	}
	// unset keys keep their defaults
	if cfg.Insights.MinTrades != 3 {
		t.Errorf("min_trades = %d, want default 3", cfg.Insights.MinTrades)
	}
}

func TestLoad_ReadsCredentials(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("OPENAI_API_KEY", "")
	creds := `
[openai]
api_key = "sk-test-key"
`
	if err := os.WriteFile(filepath.Join(dir, "credentials.toml"), []byte(creds), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !cfg.HasInsights() || cfg.Credentials.OpenAI.APIKey != "sk-test-key" {
		t.Errorf("Credentials not loaded: %+v", cfg.Credentials)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("OPENAI_API_KEY", "sk-env-key")
	t.Setenv("REFLECTR_DB", "/tmp/env.db")
	t.Setenv("REFLECTR_MODEL", "gpt-4-turbo")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Credentials.OpenAI.APIKey != "sk-env-key" {
		t.Error("OPENAI_API_KEY must override the credentials file")
	}
	if cfg.Journal.DBPath != "/tmp/env.db" {
		t.Error("REFLECTR_DB must override the db path")
	}
	if cfg.Insights.Model != "gpt-4-turbo" {
		t.Error("REFLECTR_MODEL must override the model")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults are valid", func(c *Config) {}, true},
		{"negative threshold", func(c *Config) { c.Journal.WarnThreshold = -1 }, false},
		{"threshold above scale", func(c *Config) { c.Journal.WarnThreshold = 11 }, false},
		{"zero window", func(c *Config) { c.Insights.Window = 0 }, false},
		{"negative min trades", func(c *Config) { c.Insights.MinTrades = -1 }, false},
		{"zero timeout", func(c *Config) { c.Insights.TimeoutSeconds = 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				Journal:  JournalConfig{WarnThreshold: 6},
				Insights: InsightsConfig{Model: "gpt-4o-mini", Window: 10, MinTrades: 3, TimeoutSeconds: 60},
			}
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Errorf("Expected valid, got %v", err)
			}
			if !tt.ok && err == nil {
				t.Error("Expected validation error")
			}
		})
	}
}
