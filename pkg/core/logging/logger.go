// ============================================================================
// Bhasha - Bilingual expression language toolchain
// ============================================================================
//
// Package:     logging
// Description: Process-wide logger installation for the command-line tool
// Author:      msto63
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package logging

import (
	bhlog "github.com/msto63/bhasha/foundation/core/log"
)

// Setup creates a logger from cfg and installs it as the foundation default,
// so lexer and parser instances without an explicit logger share it. The
// returned function restores the previous default.
func Setup(cfg LoggerConfig) (*bhlog.Logger, func()) {
	previous := bhlog.GetDefault()
	logger := NewLogger(cfg)
	bhlog.SetDefault(logger)
	return logger, func() { bhlog.SetDefault(previous) }
}

// Component returns a child logger tagged with the given component name
func Component(logger *bhlog.Logger, name string) *bhlog.Logger {
	if logger == nil {
		logger = bhlog.GetDefault()
	}
	return logger.WithField("component", name)
}
