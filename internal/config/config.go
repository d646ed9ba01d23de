// Package config provides the environment-backed configuration used by the
// payment-optimizer entry point.
package config

import "os"

// Config holds the small set of runtime settings read from the environment.
type Config struct {
	LogLevel string // LOG_LEVEL
	LogEnv   string // LOG_ENV
}

// LoadFromEnv reads configuration from environment variables, applying
// defaults suitable for local use.
func LoadFromEnv() Config {
	cfg := Config{
		LogLevel: os.Getenv("LOG_LEVEL"),
		LogEnv:   os.Getenv("LOG_ENV"),
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	if cfg.LogEnv == "" {
		cfg.LogEnv = "local"
	}

	return cfg
}
