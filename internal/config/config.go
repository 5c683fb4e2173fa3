// Package config provides configuration management for the contact book.
// The environment variables only tune diagnostics (logging, metrics) and
// whether sample contacts are loaded; contact data is never read from or
// written to the environment or files.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

// Default configuration values.
const (
	DefaultLogLevel       = "warn"
	DefaultLogOutput      = "stderr"
	DefaultSeedEnabled    = true
	DefaultMetricsEnabled = true
)

// Environment variable names.
const (
	EnvLogLevel       = "APP_LOG_LEVEL"
	EnvLogOutput      = "APP_LOG_OUTPUT"
	EnvSeedEnabled    = "APP_SEED_ENABLED"
	EnvMetricsEnabled = "APP_METRICS_ENABLED"
)

// Special log outputs. Any other value is treated as a file path.
const (
	LogOutputStderr  = "stderr"
	LogOutputStdout  = "stdout"
	LogOutputDiscard = "discard"
)

// Config holds the application configuration.
type Config struct {
	LogLevel  string
	LogOutput string

	// SeedEnabled loads the sample contacts at startup.
	SeedEnabled bool

	// MetricsEnabled records operation counters and logs a summary on exit.
	MetricsEnabled bool
}

// Validation errors.
var (
	ErrInvalidLogLevel  = errors.New("log level must be one of: debug, info, warn, error")
	ErrInvalidLogOutput = errors.New("log output must not be empty")
)

// Load reads configuration from environment variables with defaults.
// Environment variables have priority over default values.
func Load() (*Config, error) {
	cfg := &Config{
		LogLevel:       DefaultLogLevel,
		LogOutput:      DefaultLogOutput,
		SeedEnabled:    DefaultSeedEnabled,
		MetricsEnabled: DefaultMetricsEnabled,
	}

	if err := cfg.loadFromEnv(); err != nil {
		return nil, fmt.Errorf("loading config from environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// loadFromEnv loads configuration values from environment variables.
func (c *Config) loadFromEnv() error {
	if val := os.Getenv(EnvLogLevel); val != "" {
		c.LogLevel = val
	}

	if val := os.Getenv(EnvLogOutput); val != "" {
		c.LogOutput = val
	}

	if val := os.Getenv(EnvSeedEnabled); val != "" {
		enabled, err := strconv.ParseBool(val)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", EnvSeedEnabled, err)
		}
		c.SeedEnabled = enabled
	}

	if val := os.Getenv(EnvMetricsEnabled); val != "" {
		enabled, err := strconv.ParseBool(val)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", EnvMetricsEnabled, err)
		}
		c.MetricsEnabled = enabled
	}

	return nil
}

// Validate checks if the configuration values are valid.
func (c *Config) Validate() error {
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return ErrInvalidLogLevel
	}

	if c.LogOutput == "" {
		return ErrInvalidLogOutput
	}

	return nil
}

// LogOutputPaths returns the zap output paths for the configured log output.
// Discarded output yields no paths.
func (c *Config) LogOutputPaths() []string {
	if c.LogOutput == LogOutputDiscard {
		return nil
	}
	return []string{c.LogOutput}
}
