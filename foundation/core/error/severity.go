// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors. The logger maps severities
//              to log levels, so a rejected source never shows up as a tool
//              failure.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-03
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-03 v0.2.0: Severities for language and tool codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a problem with user input, such as a syntax error
	SeverityLow Severity = iota

	// SeverityMedium indicates a problem the tool works around
	SeverityMedium

	// SeverityHigh indicates a failed tool operation
	SeverityHigh

	// SeverityCritical indicates the tool cannot continue
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// ShouldAlert returns true if this severity level should be shown prominently
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines the severity level for an error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical

	case CodeIO, CodeStorageError, CodeConfigError, CodeInvalidConfig:
		return SeverityHigh

	case CodeWatchError, CodeLocaleMissing:
		return SeverityMedium

	case CodeIllegalCharacter, CodeExpectedChar, CodeInvalidSyntax, CodeNumberRange,
		CodeInputTooLarge, CodeInvalidInput, CodeNotFound:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
