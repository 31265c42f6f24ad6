// ============================================================================
// Bhasha - Bilingual expression language toolchain
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating the command-line loggers
// Author:      msto63
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	bhlog "github.com/msto63/bhasha/foundation/core/log"
	"github.com/msto63/bhasha/pkg/core/config"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Logger name shown in every entry
	Name string

	// Log level (trace, debug, info, warn, error, fatal)
	Level string

	// Output format (console, text, logfmt, json)
	Format string

	// Verbose lowers the level to debug unless it is already lower
	Verbose bool

	// NoColor downgrades the console format to plain text
	NoColor bool

	// CorrelationID tags every entry of one run
	CorrelationID string

	// Output defaults to stderr so diagnostics on stdout stay clean
	Output io.Writer

	// Additional outputs besides Output
	AdditionalOutputs []io.Writer
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  "error",
		Format: "console",
	}
}

// NewLogger creates a foundation logger from cfg. Unparseable level and
// format values fall back to the foundation defaults.
func NewLogger(cfg LoggerConfig) *bhlog.Logger {
	level, err := bhlog.ParseLevel(cfg.Level)
	if err != nil {
		level = bhlog.DefaultLevel()
	}
	if cfg.Verbose && level > bhlog.LevelDebug {
		level = bhlog.LevelDebug
	}

	format, err := bhlog.ParseFormat(cfg.Format)
	if err != nil {
		format = bhlog.FormatConsole
	}
	if cfg.NoColor && format == bhlog.FormatConsole {
		format = bhlog.FormatText
	}

	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}
	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	logger := bhlog.NewWithConfig(bhlog.Config{
		Level:  level,
		Format: format,
		Output: output,
		Name:   cfg.Name,
	})
	if cfg.CorrelationID != "" {
		logger = logger.WithCorrelationID(cfg.CorrelationID)
	}
	return logger
}

// FromConfig builds the logger configuration of the command-line tool
func FromConfig(cfg *config.Config, verbose bool, correlationID string) LoggerConfig {
	lc := DefaultLoggerConfig("bhasha")
	lc.Level = cfg.General.LogLevel
	lc.Format = cfg.General.LogFormat
	lc.Verbose = verbose
	lc.NoColor = cfg.Output.Color == "never"
	lc.CorrelationID = correlationID
	return lc
}

// NewSimpleLogger creates a logger with the default configuration
func NewSimpleLogger(name string) *bhlog.Logger {
	return NewLogger(DefaultLoggerConfig(name))
}
