// Package config holds the aoc CLI configuration: application metadata,
// logging and defaults. Values come from Default and may be overlaid from a
// YAML file.
package config

import (
	"fmt"
	"os"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridwalk/puzzle"
)

// Config holds all CLI configuration.
type Config struct {
	App      AppConfig      `yaml:"app"`
	Logging  LoggingConfig  `yaml:"logging"`
	Defaults DefaultsConfig `yaml:"defaults"`
}

// AppConfig is the metadata shown by --help and --version.
type AppConfig struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
	Author  string `yaml:"author"`
	About   string `yaml:"about"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultsConfig supplies flag defaults.
type DefaultsConfig struct {
	Part string `yaml:"part"` // "1" or "2"

	// ResetPerLine restarts every keypad line from the initial key.
	ResetPerLine bool `yaml:"reset_per_line"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		App: AppConfig{
			Name:    "Advent of Code 2016 CLI",
			Version: "0.1.0",
			Author:  "gridwalk authors",
			About:   "Run Advent of Code solutions",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Defaults: DefaultsConfig{
			Part: "1",
		},
	}
}

// Load reads path over the defaults. An empty path returns Default().
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the log level and default part are usable.
func (c *Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("config: logging.level: %w", err)
	}
	if _, err := puzzle.ParsePart(c.Defaults.Part); err != nil {
		return fmt.Errorf("config: defaults.part: %w", err)
	}
	return nil
}
