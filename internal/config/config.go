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
	// Paths
	InputDir  string `json:"input_dir,omitempty"`  // Directory of per-document run dumps (extract mode)
	OutputDir string `json:"output_dir,omitempty"` // Directory for per-document outline JSON (extract mode)
	Manifest  string `json:"manifest,omitempty"`   // Collection manifest path (collection mode)
	RunsDir   string `json:"runs_dir,omitempty"`   // Directory of run dumps (collection mode)
	Out       string `json:"out,omitempty"`        // Output path for the collection result

	// Limits
	TopN              int `json:"top_n,omitempty"`               // Sections to select per collection run
	DocTimeoutSeconds int `json:"doc_timeout_seconds,omitempty"` // Per-document wall-clock budget

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
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
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	// Validate numeric ranges
	if c.TopN < 0 {
		return fmt.Errorf("config error: 'top_n' must be non-negative")
	}
	if c.DocTimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'doc_timeout_seconds' must be non-negative")
	}

	// Validate paths exist (if specified)
	if c.InputDir != "" {
		if _, err := os.Stat(c.InputDir); os.IsNotExist(err) {
			return fmt.Errorf("config error: input directory not found: %s", c.InputDir)
		}
	}
	if c.Manifest != "" {
		if _, err := os.Stat(c.Manifest); os.IsNotExist(err) {
			return fmt.Errorf("config error: manifest file not found: %s", c.Manifest)
		}
	}
	if c.RunsDir != "" {
		if _, err := os.Stat(c.RunsDir); os.IsNotExist(err) {
			return fmt.Errorf("config error: runs directory not found: %s", c.RunsDir)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.InputDir == "" {
		result.InputDir = defaults.InputDir
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.Manifest == "" {
		result.Manifest = defaults.Manifest
	}
	if result.RunsDir == "" {
		result.RunsDir = defaults.RunsDir
	}
	if result.Out == "" {
		result.Out = defaults.Out
	}

	// Int fields: use default if zero
	if result.TopN == 0 {
		result.TopN = defaults.TopN
	}
	if result.DocTimeoutSeconds == 0 {
		result.DocTimeoutSeconds = defaults.DocTimeoutSeconds
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
