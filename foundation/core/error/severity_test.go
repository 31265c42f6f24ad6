// File: severity_test.go
// Title: Error Severity Tests
// Description: Tests for severity names and code based severities.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-03
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2026-10-03 v0.2.0: Severities for toolchain codes

package error

import "testing"

func TestSeverityString(t *testing.T) {
	tests := map[Severity]string{
		SeverityLow:      "low",
		SeverityMedium:   "medium",
		SeverityHigh:     "high",
		SeverityCritical: "critical",
		Severity(9):      "unknown",
	}
	for s, want := range tests {
		if got := s.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", s, got, want)
		}
	}
}

func TestSeverityShouldAlert(t *testing.T) {
	if SeverityMedium.ShouldAlert() || !SeverityHigh.ShouldAlert() {
		t.Error("alerting threshold should be SeverityHigh")
	}
	if SeverityCritical.Level() != 3 {
		t.Errorf("Level() = %d", SeverityCritical.Level())
	}
}

func TestGetSeverityFromCode(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeInternal, SeverityCritical},
		{CodeIO, SeverityHigh},
		{CodeInvalidConfig, SeverityHigh},
		{CodeWatchError, SeverityMedium},
		{CodeInvalidSyntax, SeverityLow},
		{CodeIllegalCharacter, SeverityLow},
		{CodeUnknown, SeverityMedium},
	}

	for _, tt := range tests {
		if got := GetSeverityFromCode(tt.code); got != tt.want {
			t.Errorf("GetSeverityFromCode(%s) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestEveryCodeHasSeverity(t *testing.T) {
	for _, c := range allCodes {
		s := GetSeverityFromCode(c)
		if s < SeverityLow || s > SeverityCritical {
			t.Errorf("%s has out-of-range severity %d", c, s)
		}
	}
}
