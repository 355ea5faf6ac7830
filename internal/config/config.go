// Package config loads pipeloop settings from an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Default values for Config.
const (
	DefaultWorkers  = 1
	DefaultColor    = "auto"
	DefaultLogLevel = "warn"
	MaxWorkers      = 1024
)

// Config holds the tunables of a pipeloop run.
type Config struct {
	// Workers bounds how many rows the interior scan processes at once.
	Workers int `yaml:"workers"`
	// Render prints the classified grid before the results.
	Render bool `yaml:"render"`
	// Color selects the render color profile: auto, ascii, ansi, ansi256, truecolor.
	Color string `yaml:"color"`
	// LogLevel is a logrus level name.
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{
		Workers:  DefaultWorkers,
		Render:   false,
		Color:    DefaultColor,
		LogLevel: DefaultLogLevel,
	}
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

var colorNames = []string{"auto", "ascii", "none", "ansi", "ansi256", "truecolor"}

var logLevels = []string{"panic", "fatal", "error", "warn", "warning", "info", "debug", "trace"}

// LoadConfig reads and parses the YAML file at path.
// An empty path or a missing file yields the default config.
// Missing fields keep their defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return &cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ValidateConfig checks that all config values are valid.
func ValidateConfig(cfg *Config) error {
	if cfg.Workers < 0 || cfg.Workers > MaxWorkers {
		return ValidationError{Field: "workers", Message: fmt.Sprintf("must be between 0 and %d", MaxWorkers)}
	}
	if !oneOf(cfg.Color, colorNames) {
		return ValidationError{Field: "color", Message: "must be one of " + strings.Join(colorNames, ", ")}
	}
	if !oneOf(cfg.LogLevel, logLevels) {
		return ValidationError{Field: "log_level", Message: "must be one of " + strings.Join(logLevels, ", ")}
	}

	return nil
}

func oneOf(v string, set []string) bool {
	v = strings.ToLower(v)
	for _, s := range set {
		if v == s {
			return true
		}
	}
	return false
}
