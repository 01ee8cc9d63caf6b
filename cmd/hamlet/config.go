package main

import (
	"errors"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds the process environment settings. Everything is optional;
// the defaults give a colored, info-level CLI.
type Config struct {
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	NoColor  bool   `envconfig:"NO_COLOR" default:"false"`
}

// Config validation errors.
var ErrInvalidLogLevel = errors.New("log_level must be debug, info, warn, or error")

// LoadConfig reads a .env file when one is present, then the HAMLET_*
// environment, and validates the result.
func LoadConfig() (Config, error) {
	_ = godotenv.Load() // a missing .env file is not an error

	var cfg Config
	if err := envconfig.Process("HAMLET", &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := ValidateConfig(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// ValidateConfig checks the configuration and returns an error if any
// setting is invalid.
func ValidateConfig(cfg *Config) error {
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return ErrInvalidLogLevel
	}
}
