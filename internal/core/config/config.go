// Package config handles configuration loading and validation for klippy.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration.
type Config struct {
	// MaxEntries is the history capacity used until a saved snapshot
	// provides its own value.
	MaxEntries int `yaml:"max_entries"`
	// PollInterval is how often the clipboard is checked for new content.
	PollInterval time.Duration `yaml:"poll_interval"`
	// StatusDuration is how long transient status messages stay visible.
	StatusDuration time.Duration `yaml:"status_duration"`

	DataDir string `yaml:"-"` // set by caller, not from config file
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxEntries:     50,
		PollInterval:   time.Second,
		StatusDuration: 2 * time.Second,
	}
}

// Load reads configuration from the given path and sets the data directory.
// If configPath is empty or doesn't exist, returns defaults with the
// provided dataDir.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.DataDir = dataDir

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}

			// Re-set dataDir since Unmarshal may have cleared it
			cfg.DataDir = dataDir
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.MaxEntries == 0 {
		c.MaxEntries = defaults.MaxEntries
	}
	if c.PollInterval == 0 {
		c.PollInterval = defaults.PollInterval
	}
	if c.StatusDuration == 0 {
		c.StatusDuration = defaults.StatusDuration
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data directory cannot be empty")
	}

	if c.MaxEntries < 1 {
		return fmt.Errorf("max_entries must be at least 1")
	}

	if c.PollInterval <= 0 {
		return fmt.Errorf("poll_interval must be positive")
	}

	if c.StatusDuration <= 0 {
		return fmt.Errorf("status_duration must be positive")
	}

	return nil
}

// HistoryFile returns the path to the history JSON file.
func (c *Config) HistoryFile() string {
	return filepath.Join(c.DataDir, "data.json")
}
