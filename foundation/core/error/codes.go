// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used by the Bhasha toolchain. Language
//              codes classify diagnostics of the lexer and parser, the
//              remaining codes classify failures of the tool around them.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-03
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-03 v0.2.0: Language codes, process exit codes instead of HTTP status

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Language diagnostics
	CodeIllegalCharacter Code = "ILLEGAL_CHARACTER"
	CodeExpectedChar     Code = "EXPECTED_CHAR"
	CodeInvalidSyntax    Code = "INVALID_SYNTAX"
	CodeNumberRange      Code = "NUMBER_RANGE"
	CodeInputTooLarge    Code = "INPUT_TOO_LARGE"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
	CodeLocaleMissing Code = "LOCALE_MISSING"

	// Files, storage and watching
	CodeIO           Code = "IO_ERROR"
	CodeStorageError Code = "STORAGE_ERROR"
	CodeWatchError   Code = "WATCH_ERROR"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeIllegalCharacter, CodeExpectedChar, CodeInvalidSyntax, CodeNumberRange, CodeInputTooLarge,
		CodeConfigError, CodeInvalidConfig, CodeLocaleMissing,
		CodeIO, CodeStorageError, CodeWatchError:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeIllegalCharacter, CodeExpectedChar, CodeNumberRange:
		return "lexical"
	case CodeInvalidSyntax:
		return "syntax"
	case CodeInputTooLarge, CodeInvalidInput:
		return "input"
	case CodeConfigError, CodeInvalidConfig, CodeLocaleMissing:
		return "configuration"
	case CodeIO, CodeNotFound, CodeStorageError, CodeWatchError:
		return "io"
	default:
		return "generic"
	}
}

// IsLanguage reports whether the code classifies a source text diagnostic
func (c Code) IsLanguage() bool {
	switch c.Category() {
	case "lexical", "syntax":
		return true
	default:
		return false
	}
}

// ExitCode returns the process exit status the command-line tool uses for
// errors with this code
func (c Code) ExitCode() int {
	switch c.Category() {
	case "lexical", "syntax", "input":
		return 1
	case "configuration":
		return 3
	case "io":
		return 4
	default:
		return 2
	}
}
