// Package config provides configuration management.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"shipment-discount/internal/errors"
	"shipment-discount/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version" yaml:"version"`

	// Pricing contains price table and discount rule settings
	Pricing PricingConfig `json:"pricing" yaml:"pricing"`

	// Input contains input settings
	Input InputConfig `json:"input" yaml:"input"`

	// Output contains output settings
	Output OutputConfig `json:"output" yaml:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging" yaml:"logging"`
}

// PricingConfig contains pricing-related settings
type PricingConfig struct {
	// PriceFile is an optional HCL price table replacing the built-in one
	PriceFile string `json:"price_file,omitempty" yaml:"price_file,omitempty"`

	// MonthlyDiscountLimit caps granted discount per calendar month, in cents
	MonthlyDiscountLimit int64 `json:"monthly_discount_limit" yaml:"monthly_discount_limit"`

	// LargeLPThreshold is the occurrence within a month that ships free
	LargeLPThreshold int `json:"large_lp_threshold" yaml:"large_lp_threshold"`
}

// InputConfig contains input-related settings
type InputConfig struct {
	// DefaultFile is read when no path is given on the command line
	DefaultFile string `json:"default_file" yaml:"default_file"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// Format is the output format (text, json)
	Format string `json:"format" yaml:"format"`

	// Summary prints run totals to stderr after processing
	Summary bool `json:"summary" yaml:"summary"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Pricing: PricingConfig{
			MonthlyDiscountLimit: 1000,
			LargeLPThreshold:     3,
		},
		Input: InputConfig{
			DefaultFile: "input.txt",
		},
		Output: OutputConfig{
			Format: "text",
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a JSON or YAML file.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, errors.Config("failed to read config", err)
	}

	config := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, config)
	default:
		err = json.Unmarshal(data, config)
	}
	if err != nil {
		return nil, errors.Config(fmt.Sprintf("failed to parse %s", path), err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks that the configuration can drive a run
func (c *Config) Validate() error {
	if c.Pricing.MonthlyDiscountLimit < 0 {
		return errors.Config("pricing.monthly_discount_limit must not be negative", nil)
	}
	if c.Pricing.LargeLPThreshold < 1 {
		return errors.Config("pricing.large_lp_threshold must be at least 1", nil)
	}
	switch c.Output.Format {
	case "text", "json":
	default:
		return errors.Config(fmt.Sprintf("unknown output format %q", c.Output.Format), nil)
	}
	return nil
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
