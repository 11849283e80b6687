package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/philip928lin/pathnav/internal/util"
	"gopkg.in/yaml.v3"
)

// Default configuration constants. See [Config] for field descriptions.
const (
	DefaultRecursive    = true
	DefaultIgnoreHidden = true
	DefaultDisplay      = false
	DefaultLazyScan     = false
)

// Config contains runtime configuration values for a navigator.
type Config struct {
	Recursive      bool          // Whether the initial scan descends into subdirectories (Default true)
	IncludePattern string        // Regex; when non-empty only matching entry names are kept
	ExcludePattern string        // Regex; matching entry names are skipped before the include filter
	IgnoreHidden   bool          // Whether entries starting with "." are skipped (Default true)
	Display        bool          // Whether construction prints a directory tree to stdout (Default false)
	LazyScan       bool          // Whether the initial scan is deferred to first lookup (Default false)
	LogLvl         util.LogLevel // Log level for library components (Default InfoLevel)
}

// Override uses pointer fields to distinguish between unset and zero values
// when loading partial configuration. See [Config] for field descriptions.
//
// LogLvl is CLI verbosity between 1 (error) and 5 (trace), clamped.
type Override struct {
	Recursive      *bool   `yaml:"recursive,omitempty" json:"recursive,omitempty"`
	IncludePattern *string `yaml:"include_pattern,omitempty" json:"include_pattern,omitempty"`
	ExcludePattern *string `yaml:"exclude_pattern,omitempty" json:"exclude_pattern,omitempty"`
	IgnoreHidden   *bool   `yaml:"ignore_hidden,omitempty" json:"ignore_hidden,omitempty"`
	Display        *bool   `yaml:"display,omitempty" json:"display,omitempty"`
	LazyScan       *bool   `yaml:"lazy_scan,omitempty" json:"lazy_scan,omitempty"`
	LogLvl         *int    `yaml:"verbose,omitempty" json:"verbose,omitempty"`
}

// NewDefaultConfig creates a new Config with all default values.
func NewDefaultConfig() *Config {
	return &Config{
		Recursive:    DefaultRecursive,
		IgnoreHidden: DefaultIgnoreHidden,
		Display:      DefaultDisplay,
		LazyScan:     DefaultLazyScan,
		LogLvl:       util.InfoLevel,
	}
}

// NewConfig creates a Config from defaults with override applied on top.
// A nil override yields the defaults.
func NewConfig(override *Override) *Config {
	cfg := NewDefaultConfig()
	if override != nil {
		cfg.Merge(override)
	}
	return cfg
}

// Merge applies non-nil values from override onto this Config.
// This allows partial configuration updates while preserving existing values.
func (c *Config) Merge(override *Override) {
	if override.Recursive != nil {
		c.Recursive = *override.Recursive
	}
	if override.IncludePattern != nil {
		c.IncludePattern = *override.IncludePattern
	}
	if override.ExcludePattern != nil {
		c.ExcludePattern = *override.ExcludePattern
	}
	if override.IgnoreHidden != nil {
		c.IgnoreHidden = *override.IgnoreHidden
	}
	if override.Display != nil {
		c.Display = *override.Display
	}
	if override.LazyScan != nil {
		c.LazyScan = *override.LazyScan
	}
	if override.LogLvl != nil {
		c.LogLvl = verboseToLevel(*override.LogLvl)
	}
}

// verboseToLevel maps CLI verbosity 1..5 (clamped) onto internal log levels.
func verboseToLevel(verbose int) util.LogLevel {
	if verbose < 1 {
		verbose = 1
	}
	if verbose > 5 {
		verbose = 5
	}
	lvls := [5]util.LogLevel{util.ErrorLevel, util.WarnLevel, util.InfoLevel, util.DebugLevel, util.TraceLevel}
	return lvls[verbose-1]
}

// LoadOverrideFile loads configuration overrides from a file without merging.
// Supports both YAML (.yaml, .yml) and JSON (.json) formats.
func LoadOverrideFile(path string) (*Override, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var override Override

	// Determine format by file extension
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown config file extension: %s", path)
	}

	return &override, nil
}

// NewConfigFromFile creates a new Config by merging file overrides with defaults.
// This is a convenience function that combines NewDefaultConfig, LoadOverrideFile, and Merge.
func NewConfigFromFile(path string) (*Config, error) {
	cfg := NewDefaultConfig()
	override, err := LoadOverrideFile(path)
	if err != nil {
		return nil, err
	}
	cfg.Merge(override)
	return cfg, nil
}
