package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const configTemplate = `# Reflectr Configuration

[journal]
# Path to the SQLite journal database
# db_path = "~/.config/reflectr/reflectr.db"
# Default CSV export filename
export_path = "reflectr_journal.csv"
# Impulsiveness above this value triggers the pre-trade risk warning
warn_threshold = 6

[insights]
# Model used for psychology analysis
model = "gpt-4o-mini"
# Number of recent trades sent per analysis
window = 10
# Minimum trades required before the AI provider is invoked
min_trades = 3
# Per-request timeout in seconds
timeout_seconds = 60

[ui]
# Enable colored output
color_enabled = true
# Date format (Go reference time layout)
date_format = "2006-01-02"
# Time format
time_format = "15:04"
`

const credentialsTemplate = `# Reflectr Credentials
# This file contains sensitive data. Keep it private (chmod 600).

[openai]
api_key = ""
`

func createTemplateConfig(configDir string) error {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	path := filepath.Join(configDir, "config.toml")
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	if err := os.WriteFile(path, []byte(configTemplate), 0644); err != nil {
		return fmt.Errorf("writing config template: %w", err)
	}
	return nil
}

func createTemplateCredentials(configDir string) error {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	path := filepath.Join(configDir, "credentials.toml")
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	if err := os.WriteFile(path, []byte(credentialsTemplate), 0600); err != nil {
		return fmt.Errorf("writing credentials template: %w", err)
	}
	return nil
}
