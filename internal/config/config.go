// Package config provides configuration management for the journaling application.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Journal     JournalConfig  `mapstructure:"journal"`
	Insights    InsightsConfig `mapstructure:"insights"`
	UI          UIConfig       `mapstructure:"ui"`
	Credentials Credentials    `mapstructure:"-"` // Loaded separately
}

// JournalConfig holds journal-related configuration.
type JournalConfig struct {
	DBPath        string `mapstructure:"db_path"`
	ExportPath    string `mapstructure:"export_path"`
	WarnThreshold int    `mapstructure:"warn_threshold"` // impulsiveness above this triggers the risk warning
}

// InsightsConfig holds AI insight configuration.
type InsightsConfig struct {
	Model          string `mapstructure:"model"`
	Window         int    `mapstructure:"window"`          // trades sent per analysis
	MinTrades      int    `mapstructure:"min_trades"`      // below this the provider is never invoked
	TimeoutSeconds int    `mapstructure:"timeout_seconds"` // per-request timeout
}

// UIConfig holds UI-related configuration.
type UIConfig struct {
	ColorEnabled bool   `mapstructure:"color_enabled"`
	DateFormat   string `mapstructure:"date_format"`
	TimeFormat   string `mapstructure:"time_format"`
}

// Credentials holds API credentials.
type Credentials struct {
	OpenAI OpenAICredentials `mapstructure:"openai"`
}

// OpenAICredentials holds OpenAI API credentials.
type OpenAICredentials struct {
	APIKey string `mapstructure:"api_key"`
}

// DefaultConfigDir returns the default configuration directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".config/reflectr"
	}
	return filepath.Join(home, ".config", "reflectr")
}

// Load loads configuration from the specified directory.
// If configDir is empty, uses the default config directory.
func Load(configDir string) (*Config, error) {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}

	cfg := &Config{}

	if err := loadConfigFile(configDir, cfg); err != nil {
		return nil, fmt.Errorf("loading config.toml: %w", err)
	}

	if err := loadCredentials(configDir, &cfg.Credentials); err != nil {
		return nil, fmt.Errorf("loading credentials.toml: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func loadConfigFile(configDir string, target *Config) error {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	v.SetDefault("journal.db_path", filepath.Join(configDir, "reflectr.db"))
	v.SetDefault("journal.export_path", "reflectr_journal.csv")
	v.SetDefault("journal.warn_threshold", 6)
	v.SetDefault("insights.model", "gpt-4o-mini")
	v.SetDefault("insights.window", 10)
	v.SetDefault("insights.min_trades", 3)
	v.SetDefault("insights.timeout_seconds", 60)
	v.SetDefault("ui.color_enabled", true)
	v.SetDefault("ui.date_format", "2006-01-02")
	v.SetDefault("ui.time_format", "15:04")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if werr := createTemplateConfig(configDir); werr != nil {
				return werr
			}
			return v.Unmarshal(target)
		}
		return err
	}

	return v.Unmarshal(target)
}

func loadCredentials(configDir string, creds *Credentials) error {
	v := viper.New()
	v.SetConfigName("credentials")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return createTemplateCredentials(configDir)
		}
		return err
	}

	return v.Unmarshal(creds)
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.Credentials.OpenAI.APIKey = v
	}
	if v := os.Getenv("REFLECTR_DB"); v != "" {
		cfg.Journal.DBPath = v
	}
	if v := os.Getenv("REFLECTR_MODEL"); v != "" {
		cfg.Insights.Model = v
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Journal.WarnThreshold < 0 || c.Journal.WarnThreshold > 10 {
		return fmt.Errorf("warn_threshold must be between 0 and 10")
	}
	if c.Insights.Window <= 0 {
		return fmt.Errorf("insights window must be positive")
	}
	if c.Insights.MinTrades < 0 {
		return fmt.Errorf("insights min_trades must be non-negative")
	}
	if c.Insights.TimeoutSeconds <= 0 {
		return fmt.Errorf("insights timeout_seconds must be positive")
	}
	return nil
}

// HasInsights returns true if an AI provider key is configured.
func (c *Config) HasInsights() bool {
	return c.Credentials.OpenAI.APIKey != ""
}
