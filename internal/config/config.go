// Package config provides configuration loading and validation for the
// optimizer CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the optimizer configuration that can be loaded from a
// JSON file. All fields are optional; missing values use defaults or must
// be provided via CLI flags or environment variables.
type Config struct {
	// Server
	Port     int    `json:"port,omitempty"`      // HTTP API port
	LogLevel string `json:"log_level,omitempty"` // debug, info, warn, error

	// Storage
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL

	// External content system
	ContentBaseURL  string `json:"content_base_url,omitempty"` // WordPress site base URL
	ContentUser     string `json:"content_user,omitempty"`     // API username
	ContentPassword string `json:"content_password,omitempty"` // Application password
	ContentPostType string `json:"content_post_type,omitempty"`

	// Batch runs
	BatchSize   int `json:"batch_size,omitempty"`  // Max postings per run
	Concurrency int `json:"concurrency,omitempty"` // Parallel optimizations per run
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv fills unset fields from environment variables.
func (c *Config) FromEnv() {
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if c.ContentBaseURL == "" {
		c.ContentBaseURL = os.Getenv("CONTENT_BASE_URL")
	}
	if c.ContentUser == "" {
		c.ContentUser = os.Getenv("CONTENT_USER")
	}
	if c.ContentPassword == "" {
		c.ContentPassword = os.Getenv("CONTENT_PASSWORD")
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be a valid TCP port")
	}
	if c.BatchSize < 0 {
		return fmt.Errorf("config error: 'batch_size' must be non-negative")
	}
	if c.Concurrency < 0 {
		return fmt.Errorf("config error: 'concurrency' must be non-negative")
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This applies config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.ContentBaseURL == "" {
		result.ContentBaseURL = defaults.ContentBaseURL
	}
	if result.ContentUser == "" {
		result.ContentUser = defaults.ContentUser
	}
	if result.ContentPassword == "" {
		result.ContentPassword = defaults.ContentPassword
	}
	if result.ContentPostType == "" {
		if defaults.ContentPostType != "" {
			result.ContentPostType = defaults.ContentPostType
		} else {
			result.ContentPostType = "job-listings"
		}
	}
	if result.BatchSize == 0 {
		if defaults.BatchSize > 0 {
			result.BatchSize = defaults.BatchSize
		} else {
			result.BatchSize = 25
		}
	}
	if result.Concurrency == 0 {
		if defaults.Concurrency > 0 {
			result.Concurrency = defaults.Concurrency
		} else {
			result.Concurrency = 4
		}
	}

	return result
}
