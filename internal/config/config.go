// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	Data      string `json:"data,omitempty"`       // Path to YAML profile record
	OutputDir string `json:"output_dir,omitempty"` // Output directory for generated documents
	Label     string `json:"label,omitempty"`      // Company/context label appended to file names

	// Behavior
	Verbose      bool `json:"verbose,omitempty"`        // Print detailed render information
	NoHiddenText bool `json:"no_hidden_text,omitempty"` // Never emit the invisible-text layer
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
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

// Validate checks that the configuration has valid values.
// Required fields are checked after flag merging, not here.
func (c *Config) Validate() error {
	if c.Data != "" {
		if _, err := os.Stat(c.Data); os.IsNotExist(err) {
			return fmt.Errorf("config error: data file not found: %s", c.Data)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Data == "" {
		result.Data = defaults.Data
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.Label == "" {
		result.Label = defaults.Label
	}
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}
	if !result.NoHiddenText {
		result.NoHiddenText = defaults.NoHiddenText
	}

	return result
}
