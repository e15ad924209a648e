package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"

	"github.com/danieljhkim/arithtutor/internal/planner"
)

// ErrInvalidConfig indicates a configuration value outside its allowed set.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds user preferences for the tutor.
type Config struct {
	// Operation is the exercise kind played by default
	Operation string `json:"operation" toml:"operation" env:"ARITHTUTOR_OPERATION"`

	// Seed fixes the problem sequence; 0 draws a fresh seed per run
	Seed int64 `json:"seed" toml:"seed" env:"ARITHTUTOR_SEED"`

	// Hints shows the explanation of the active cell
	Hints bool `json:"hints" toml:"hints" env:"ARITHTUTOR_HINTS"`

	// Bell rings the terminal bell on a wrong digit
	Bell bool `json:"bell" toml:"bell" env:"ARITHTUTOR_BELL"`

	// Color enables colored output
	Color bool `json:"color" toml:"color" env:"ARITHTUTOR_COLOR"`

	// LogLevel is one of debug, info, warn, error
	LogLevel string `json:"logLevel" toml:"log_level" env:"ARITHTUTOR_LOG_LEVEL"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Operation: string(planner.OpDivision),
		Hints:     true,
		Bell:      false,
		Color:     true,
		LogLevel:  "warn",
	}
}

// Load reads the configuration: defaults, then the TOML file at path when it
// exists, then environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to stat config file %s: %w", path, err)
		}
	}

	if err := ParseEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ParseEnv applies ARITHTUTOR_* environment variables to target.
// Unset variables leave the existing values untouched.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate checks that every field holds an allowed value.
func (c *Config) Validate() error {
	if _, err := planner.ParseOperation(c.Operation); err != nil {
		return fmt.Errorf("%w: operation: %v", ErrInvalidConfig, err)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log_level %q (want debug|info|warn|error)", ErrInvalidConfig, c.LogLevel)
	}
	return nil
}

// Op returns the configured operation. Validate must have succeeded.
func (c *Config) Op() planner.Operation {
	op, _ := planner.ParseOperation(c.Operation)
	return op
}
