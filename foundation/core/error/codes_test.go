// File: codes_test.go
// Title: Error Code Tests
// Description: Tests for code validity, categories and exit codes.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-03
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2026-10-03 v0.2.0: Language categories and exit codes

package error

import "testing"

var allCodes = []Code{
	CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
	CodeIllegalCharacter, CodeExpectedChar, CodeInvalidSyntax, CodeNumberRange, CodeInputTooLarge,
	CodeConfigError, CodeInvalidConfig, CodeLocaleMissing,
	CodeIO, CodeStorageError, CodeWatchError,
}

func TestCodeIsValid(t *testing.T) {
	for _, c := range allCodes {
		if !c.IsValid() {
			t.Errorf("%s should be valid", c)
		}
	}
	if Code("NOPE").IsValid() {
		t.Error("unknown code should not be valid")
	}
}

func TestCodeCategoryAndExitCode(t *testing.T) {
	tests := []struct {
		code     Code
		category string
		exit     int
		language bool
	}{
		{CodeIllegalCharacter, "lexical", 1, true},
		{CodeExpectedChar, "lexical", 1, true},
		{CodeNumberRange, "lexical", 1, true},
		{CodeInvalidSyntax, "syntax", 1, true},
		{CodeInputTooLarge, "input", 1, false},
		{CodeInvalidConfig, "configuration", 3, false},
		{CodeLocaleMissing, "configuration", 3, false},
		{CodeIO, "io", 4, false},
		{CodeStorageError, "io", 4, false},
		{CodeInternal, "generic", 2, false},
		{CodeUnknown, "generic", 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			if got := tt.code.Category(); got != tt.category {
				t.Errorf("Category() = %q, want %q", got, tt.category)
			}
			if got := tt.code.ExitCode(); got != tt.exit {
				t.Errorf("ExitCode() = %d, want %d", got, tt.exit)
			}
			if got := tt.code.IsLanguage(); got != tt.language {
				t.Errorf("IsLanguage() = %v, want %v", got, tt.language)
			}
		})
	}
}
