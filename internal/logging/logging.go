// Package logging provides the structured logging used across the
// transaction execution core and its CLI.
// It leverages the zap library to offer structured and performant logging.
package logging

import (
	"go.uber.org/zap"
)

// Sugar is a globally accessible SugaredLogger instance, used by callers
// (the CLI, tests) that don't construct their own.
// It provides a more ergonomic API for logging compared to the base Zap logger.
var Sugar zap.SugaredLogger

// Initialize sets up the global SugaredLogger using Zap's development configuration.
// The package's init calls it, so Sugar is ready once the package is loaded. If initialization fails, the function returns an error.
func Initialize() error {
	logger, err := zap.NewDevelopment()
	if err != nil {
		return err
	}

	Sugar = *logger.Sugar()
	return nil
}

func init() {
	if err := Initialize(); err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
}

// NewNop returns a SugaredLogger that discards everything, for tests that
// want a non-nil *zap.SugaredLogger without development-logger noise.
func NewNop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
