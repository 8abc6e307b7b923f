// SPDX-License-Identifier: EPL-2.0

// Package config loads pipeline configuration from YAML files with
// sane defaults for every field.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidTargetRMS is returned for a loudness target outside (0, 1).
	ErrInvalidTargetRMS = errors.New("target_rms must be in (0, 1)")
	// ErrInvalidOutputRate is returned for a non-positive output rate.
	ErrInvalidOutputRate = errors.New("output_rate must be positive")
	// ErrInvalidBufferSize is returned for a non-positive buffer size.
	ErrInvalidBufferSize = errors.New("buffer_size must be positive")
)

// Config holds the recognized pipeline options.
type Config struct {
	Pipeline struct {
		// TargetRMS is the loudness normalization target.
		TargetRMS float64 `yaml:"target_rms"`
		// OutputRate is the playback sample rate in Hz.
		OutputRate int `yaml:"output_rate"`
		// BufferSize is the chunk size for streaming ingestion reads.
		BufferSize int `yaml:"buffer_size"`
	} `yaml:"pipeline"`

	Log struct {
		// Level is one of debug, info, warn, error.
		Level string `yaml:"level"`
	} `yaml:"log"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Pipeline.TargetRMS = 0.15
	cfg.Pipeline.OutputRate = 48000
	cfg.Pipeline.BufferSize = 4096

	cfg.Log.Level = "info"

	return cfg
}

// Load reads path and overlays it on the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadWithFallback loads path if it exists and silently falls back to
// the defaults when it does not.
func LoadWithFallback(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	return Load(path)
}

// Validate checks the option ranges.
func (c *Config) Validate() error {
	if c.Pipeline.TargetRMS <= 0 || c.Pipeline.TargetRMS >= 1 {
		return fmt.Errorf("%w: got %v", ErrInvalidTargetRMS, c.Pipeline.TargetRMS)
	}
	if c.Pipeline.OutputRate <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidOutputRate, c.Pipeline.OutputRate)
	}
	if c.Pipeline.BufferSize <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidBufferSize, c.Pipeline.BufferSize)
	}

	return nil
}
