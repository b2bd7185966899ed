// Package config loads and saves the triage YAML configuration.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"gopkg.in/yaml.v3"
)

// Config represents the complete triage configuration for YAML serialization.
type Config struct {
	Prompt     string      `yaml:"prompt"`
	Startup    []string    `yaml:"startup,omitempty"`      // command files replayed before the first prompt
	SaveOnQuit string      `yaml:"save_on_quit,omitempty"` // command log written when the session ends
	Log        LogConfig   `yaml:"log"`
	Board      BoardConfig `yaml:"board"`
}

// LogConfig holds diagnostics settings
type LogConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

// BoardConfig holds settings for the interactive board
type BoardConfig struct {
	Height int `yaml:"height"` // rows of the waiting table
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		Prompt: "triage> ",
		Log: LogConfig{
			Level: "warn",
		},
		Board: BoardConfig{
			Height: 12,
		},
	}
}

// LoadFromYAML reads a configuration file. Fields missing from the file keep
// their default values.
func LoadFromYAML(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// SaveToYAML writes cfg to path
func SaveToYAML(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// Validate checks if config is valid
func (c *Config) Validate() error {
	if c.Prompt == "" {
		return fmt.Errorf("prompt must not be empty")
	}
	if hclog.LevelFromString(c.Log.Level) == hclog.NoLevel {
		return fmt.Errorf("unknown log level %q (valid: trace, debug, info, warn, error, off)", c.Log.Level)
	}
	if c.Board.Height <= 0 {
		return fmt.Errorf("board height must be > 0, got %d", c.Board.Height)
	}
	for _, path := range c.Startup {
		if path == "" {
			return fmt.Errorf("startup entries must not be empty")
		}
	}
	return nil
}

// NewLogger builds the diagnostics logger described by the log section.
func (c *Config) NewLogger(output io.Writer) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:       "triage",
		Level:      hclog.LevelFromString(c.Log.Level),
		Output:     output,
		JSONFormat: c.Log.JSON,
	})
}
