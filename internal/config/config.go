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
	Skills          string `json:"skills,omitempty"`           // Path to user skills JSON file
	Requirements    string `json:"requirements,omitempty"`     // Path to job requirements JSON file
	ReferenceTables string `json:"reference_tables,omitempty"` // Path to reference table overrides
	Output          string `json:"output,omitempty"`           // Path to write the result JSON

	// Path generation
	HoursPerWeek         float64 `json:"hours_per_week,omitempty"`        // Weekly study budget
	MaxPathLength        int     `json:"max_path_length,omitempty"`       // Cap on learning path steps (0 = unlimited)
	DifficultyPreference string  `json:"difficulty_preference,omitempty"` // "easy-first" or "hard-first"
	PrioritizeQuickWins  bool    `json:"prioritize_quick_wins,omitempty"` // Surface quick wins early in the path
	IncludeTransferable  bool    `json:"include_transferable,omitempty"`  // Discount effort using transferable skills

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed progress information
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
	if c.HoursPerWeek < 0 {
		return fmt.Errorf("config error: 'hours_per_week' must be non-negative")
	}
	if c.MaxPathLength < 0 {
		return fmt.Errorf("config error: 'max_path_length' must be non-negative")
	}

	if c.DifficultyPreference != "" &&
		c.DifficultyPreference != "easy-first" && c.DifficultyPreference != "hard-first" {
		return fmt.Errorf("config error: 'difficulty_preference' must be \"easy-first\" or \"hard-first\", got %q", c.DifficultyPreference)
	}

	// Validate file paths exist (if specified)
	if c.Skills != "" {
		if _, err := os.Stat(c.Skills); os.IsNotExist(err) {
			return fmt.Errorf("config error: skills file not found: %s", c.Skills)
		}
	}

	if c.Requirements != "" {
		if _, err := os.Stat(c.Requirements); os.IsNotExist(err) {
			return fmt.Errorf("config error: requirements file not found: %s", c.Requirements)
		}
	}

	if c.ReferenceTables != "" {
		if _, err := os.Stat(c.ReferenceTables); os.IsNotExist(err) {
			return fmt.Errorf("config error: reference tables file not found: %s", c.ReferenceTables)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Skills == "" {
		result.Skills = defaults.Skills
	}
	if result.Requirements == "" {
		result.Requirements = defaults.Requirements
	}
	if result.ReferenceTables == "" {
		result.ReferenceTables = defaults.ReferenceTables
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.DifficultyPreference == "" {
		result.DifficultyPreference = defaults.DifficultyPreference
	}

	// Int fields: use default if zero
	if result.MaxPathLength == 0 {
		result.MaxPathLength = defaults.MaxPathLength
	}

	// Float fields
	if result.HoursPerWeek == 0 {
		if defaults.HoursPerWeek > 0 {
			result.HoursPerWeek = defaults.HoursPerWeek
		} else {
			result.HoursPerWeek = 10 // Default to 10 study hours per week
		}
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
