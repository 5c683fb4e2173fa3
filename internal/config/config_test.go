// Package config provides configuration management for the contact book.
package config

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoad_DefaultValues(t *testing.T) {
	// Arrange - Clear all environment variables
	clearEnvVars(t)

	// Act
	cfg, err := Load()

	// Assert
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("LogLevel = %s, want %s", cfg.LogLevel, DefaultLogLevel)
	}
	if cfg.LogOutput != DefaultLogOutput {
		t.Errorf("LogOutput = %s, want %s", cfg.LogOutput, DefaultLogOutput)
	}
	if cfg.SeedEnabled != DefaultSeedEnabled {
		t.Errorf("SeedEnabled = %v, want %v", cfg.SeedEnabled, DefaultSeedEnabled)
	}
	if cfg.MetricsEnabled != DefaultMetricsEnabled {
		t.Errorf("MetricsEnabled = %v, want %v", cfg.MetricsEnabled, DefaultMetricsEnabled)
	}
}

func TestLoad_EnvironmentVariables(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		validate func(*testing.T, *Config)
	}{
		{
			name: "custom log level",
			envVars: map[string]string{
				EnvLogLevel: "debug",
			},
			validate: func(t *testing.T, cfg *Config) {
				if cfg.LogLevel != "debug" {
					t.Errorf("LogLevel = %s, want debug", cfg.LogLevel)
				}
			},
		},
		{
			name: "log output file",
			envVars: map[string]string{
				EnvLogOutput: "/tmp/contactbook.log",
			},
			validate: func(t *testing.T, cfg *Config) {
				if cfg.LogOutput != "/tmp/contactbook.log" {
					t.Errorf("LogOutput = %s, want /tmp/contactbook.log", cfg.LogOutput)
				}
			},
		},
		{
			name: "seed disabled",
			envVars: map[string]string{
				EnvSeedEnabled: "false",
			},
			validate: func(t *testing.T, cfg *Config) {
				if cfg.SeedEnabled {
					t.Error("SeedEnabled = true, want false")
				}
			},
		},
		{
			name: "metrics disabled",
			envVars: map[string]string{
				EnvMetricsEnabled: "0",
			},
			validate: func(t *testing.T, cfg *Config) {
				if cfg.MetricsEnabled {
					t.Error("MetricsEnabled = true, want false")
				}
			},
		},
		{
			name: "all custom values",
			envVars: map[string]string{
				EnvLogLevel:       "error",
				EnvLogOutput:      LogOutputDiscard,
				EnvSeedEnabled:    "true",
				EnvMetricsEnabled: "false",
			},
			validate: func(t *testing.T, cfg *Config) {
				want := &Config{
					LogLevel:       "error",
					LogOutput:      LogOutputDiscard,
					SeedEnabled:    true,
					MetricsEnabled: false,
				}
				if diff := cmp.Diff(want, cfg); diff != "" {
					t.Errorf("Config mismatch (-want +got):\n%s", diff)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			clearEnvVars(t)
			for key, value := range tt.envVars {
				t.Setenv(key, value)
			}

			// Act
			cfg, err := Load()

			// Assert
			if err != nil {
				t.Fatalf("Load() returned unexpected error: %v", err)
			}
			tt.validate(t, cfg)
		})
	}
}

func TestLoad_ValidationErrors(t *testing.T) {
	// Arrange
	clearEnvVars(t)
	t.Setenv(EnvLogLevel, "verbose")

	// Act
	cfg, err := Load()

	// Assert
	if !errors.Is(err, ErrInvalidLogLevel) {
		t.Errorf("Load() error = %v, want %v", err, ErrInvalidLogLevel)
	}
	if cfg != nil {
		t.Errorf("Load() expected nil config on error, got %+v", cfg)
	}
}

func TestLoad_ParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
	}{
		{
			name: "invalid seed enabled - not a bool",
			envVars: map[string]string{
				EnvSeedEnabled: "maybe",
			},
		},
		{
			name: "invalid metrics enabled - not a bool",
			envVars: map[string]string{
				EnvMetricsEnabled: "notabool",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			clearEnvVars(t)
			for key, value := range tt.envVars {
				t.Setenv(key, value)
			}

			// Act
			cfg, err := Load()

			// Assert
			if err == nil {
				t.Fatalf("Load() expected error, got nil")
			}
			if cfg != nil {
				t.Errorf("Load() expected nil config on error, got %+v", cfg)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:    "valid",
			config:  Config{LogLevel: "info", LogOutput: LogOutputStderr},
			wantErr: nil,
		},
		{
			name:    "empty log level",
			config:  Config{LogLevel: "", LogOutput: LogOutputStderr},
			wantErr: ErrInvalidLogLevel,
		},
		{
			name:    "upper case log level",
			config:  Config{LogLevel: "DEBUG", LogOutput: LogOutputStderr},
			wantErr: ErrInvalidLogLevel,
		},
		{
			name:    "empty log output",
			config:  Config{LogLevel: "warn", LogOutput: ""},
			wantErr: ErrInvalidLogOutput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			err := tt.config.Validate()

			// Assert
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_LogOutputPaths(t *testing.T) {
	tests := []struct {
		output string
		want   []string
	}{
		{LogOutputStderr, []string{"stderr"}},
		{LogOutputStdout, []string{"stdout"}},
		{LogOutputDiscard, nil},
		{"/var/log/contactbook.log", []string{"/var/log/contactbook.log"}},
	}

	for _, tt := range tests {
		cfg := &Config{LogOutput: tt.output}
		if diff := cmp.Diff(tt.want, cfg.LogOutputPaths()); diff != "" {
			t.Errorf("LogOutputPaths(%q) mismatch (-want +got):\n%s", tt.output, diff)
		}
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	envVars := []string{
		EnvLogLevel,
		EnvLogOutput,
		EnvSeedEnabled,
		EnvMetricsEnabled,
	}
	for _, env := range envVars {
		// Empty values are treated as unset by Load.
		t.Setenv(env, "")
	}
}
