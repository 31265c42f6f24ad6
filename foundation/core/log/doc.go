// Package log provides structured logging for the Bhasha toolchain.
//
// Package: log
// Title: Bhasha Structured Logging
// Description: This package implements structured logging with contextual
// fields, several output formats and integration with the
// structured error type. The lexer and parser log per-token
// traces at trace level and phase timings at debug level.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-02 v0.2.0: Trimmed to the toolchain's needs, immutable loggers
//
// Usage:
//
//	import bhlog "github.com/msto63/bhasha/foundation/core/log"
//
//	logger := bhlog.New().
//		WithLevel(bhlog.LevelDebug).
//		WithFormat(bhlog.FormatJSON).
//		WithField("component", "parser")
//
//	logger.Debug("token consumed", bhlog.Fields{"kind": "INT", "index": 4})
//
//	timer := logger.StartTimer("parse")
//	// ... parse
//	timer.Stop()
//
// Loggers are never mutated after construction. Every With* method returns
// a copy, so a logger can be shared freely between goroutines.
package log
