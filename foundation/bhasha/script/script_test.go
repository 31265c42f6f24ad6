// File: script_test.go
// Title: Script Translation Tests
// Description: Tests for digit translation and rune classification.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-05
// Modified: 2026-10-05
//
// Change History:
// - 2026-10-05 v0.1.0: Initial implementation

package script

import "testing"

func TestDigitToLatin(t *testing.T) {
	native := []rune("०१२३४५६७८९")
	for i, r := range native {
		want := rune('0' + i)
		if got := DigitToLatin(r); got != want {
			t.Errorf("DigitToLatin(%q) = %q, want %q", r, got, want)
		}
	}

	for _, r := range []rune{'0', '9', 'a', 'क', '.', 0} {
		if got := DigitToLatin(r); got != r {
			t.Errorf("DigitToLatin(%q) = %q, want unchanged", r, got)
		}
	}

	if got := TranslateDigits("x१२.५"); got != "x12.5" {
		t.Errorf("TranslateDigits() = %q", got)
	}
}

func TestClassification(t *testing.T) {
	tests := []struct {
		r      rune
		letter bool
		digit  bool
		part   bool
	}{
		{'a', true, false, true},
		{'Z', true, false, true},
		{'क', true, false, true},
		{'\u093e', true, false, true}, // vowel sign AA
		{'\u094d', true, false, true}, // virama
		{'\u0902', true, false, true}, // anusvara
		{'७', false, true, true},
		{'3', false, true, true},
		{'_', false, false, true},
		{'@', false, false, false},
		{' ', false, false, false},
		{'\u0301', false, false, false}, // combining acute, not Devanagari
	}

	for _, tt := range tests {
		if got := IsLetter(tt.r); got != tt.letter {
			t.Errorf("IsLetter(%q) = %v, want %v", tt.r, got, tt.letter)
		}
		if got := IsDigit(tt.r); got != tt.digit {
			t.Errorf("IsDigit(%q) = %v, want %v", tt.r, got, tt.digit)
		}
		if got := IsIdentPart(tt.r); got != tt.part {
			t.Errorf("IsIdentPart(%q) = %v, want %v", tt.r, got, tt.part)
		}
	}
}

func TestIsWhitespace(t *testing.T) {
	for _, r := range " \t\n\r" {
		if !IsWhitespace(r) {
			t.Errorf("IsWhitespace(%q) = false", r)
		}
	}
	if IsWhitespace('\v') || IsWhitespace('x') {
		t.Error("unexpected whitespace")
	}
}
