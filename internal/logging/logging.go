// Package logging builds the application's structured zap logger.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EnvironmentProduction selects the JSON production encoder profile; any
// other environment gets the development console profile.
const EnvironmentProduction = "production"

// New creates a structured logger for the given environment profile and level
// string, returning the runtime-adjustable level handle alongside it.
func New(environment, level string) (*zap.Logger, zap.AtomicLevel, error) {
	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, zap.AtomicLevel{}, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	atomicLevel := zap.NewAtomicLevelAt(parsed)

	var cfg zap.Config
	if environment == EnvironmentProduction {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}

	cfg.Level = atomicLevel
	cfg.DisableStacktrace = true

	logger, err := cfg.Build()
	if err != nil {
		return nil, zap.AtomicLevel{}, fmt.Errorf("build logger: %w", err)
	}

	return logger, atomicLevel, nil
}
