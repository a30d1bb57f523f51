// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads the configuration of the emvtlv command.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"codello.dev/emvtlv"
	"codello.dev/emvtlv/emv"
	"codello.dev/emvtlv/internal/output"
)

// Config represents the emvtlv configuration
type Config struct {
	Decoder Decoder `yaml:"decoder"`
	Output  Output  `yaml:"output"`
	Logging Logging `yaml:"logging"`
}

// Decoder contains the decoding options
type Decoder struct {
	// Expand lists hexadecimal tags such as "70" or "BF0C" to expand.
	Expand []string `yaml:"expand"`

	// Templates expands all EMV template tags in addition to Expand.
	Templates   bool `yaml:"templates"`
	MaxDepth    int  `yaml:"max_depth"`
	Strict      bool `yaml:"strict"`
	SkipPadding bool `yaml:"skip_padding"`
}

// Output contains output configuration
type Output struct {
	Format string `yaml:"format"`
}

// Logging contains logging configuration
type Logging struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Decoder: Decoder{
			MaxDepth: emvtlv.DefaultMaxDepth,
		},
		Output: Output{
			Format: "text",
		},
		Logging: Logging{
			Level: "warn",
		},
	}
}

// LoadConfig loads configuration from the specified path. Fields missing from
// the file keep their default values.
func LoadConfig(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
	}
	return config, nil
}

// Validate checks that all values of c can be used.
func (c *Config) Validate() error {
	if _, err := c.ExpansionSet(); err != nil {
		return err
	}
	if c.Decoder.MaxDepth < 0 {
		return fmt.Errorf("decoder.max_depth must not be negative: %d", c.Decoder.MaxDepth)
	}
	if !slices.Contains(output.Names(), c.Output.Format) {
		return fmt.Errorf("output.format: %w: %q", output.ErrUnknownFormat, c.Output.Format)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// ExpansionSet returns the set of tags to expand.
func (c *Config) ExpansionSet() (emvtlv.ExpansionSet, error) {
	s := emvtlv.NewExpansionSet()
	if c.Decoder.Templates {
		s = emv.Templates()
	}
	for _, tag := range c.Decoder.Expand {
		id, err := emvtlv.ParseTagID(tag)
		if err != nil {
			return nil, fmt.Errorf("decoder.expand: %w", err)
		}
		s[id] = struct{}{}
	}
	return s, nil
}

// NewDecoder returns a decoder configured by c that logs to logger.
func (c *Config) NewDecoder(logger *slog.Logger) (*emvtlv.Decoder, error) {
	expand, err := c.ExpansionSet()
	if err != nil {
		return nil, err
	}
	return &emvtlv.Decoder{
		Expand:      expand,
		MaxDepth:    c.Decoder.MaxDepth,
		Strict:      c.Decoder.Strict,
		SkipPadding: c.Decoder.SkipPadding,
		Logger:      logger,
	}, nil
}

// LogLevel returns the configured log level.
func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Logging.Level)); err != nil {
		return 0, fmt.Errorf("logging.level: %w", err)
	}
	return level, nil
}
