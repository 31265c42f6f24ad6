// File: script.go
// Title: Script Translation
// Description: Character classification and digit translation for mixed
//              Latin and Devanagari source text. Devanagari digits map to
//              their Latin equivalents so numerals are script-independent.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-05
// Modified: 2026-10-05
//
// Change History:
// - 2026-10-05 v0.1.0: Initial implementation

// Package script classifies runes of Latin and Devanagari source text.
package script

import "unicode"

const (
	devanagariZero = '०' // U+0966
	devanagariNine = '९' // U+096F
)

// DigitToLatin maps a Devanagari digit to the Latin digit of the same value.
// Every other rune is returned unchanged.
func DigitToLatin(r rune) rune {
	if r >= devanagariZero && r <= devanagariNine {
		return '0' + (r - devanagariZero)
	}
	return r
}

// TranslateDigits applies DigitToLatin to every rune of s
func TranslateDigits(s string) string {
	out := []rune(s)
	for i, r := range out {
		out[i] = DigitToLatin(r)
	}
	return string(out)
}

// IsDevanagariDigit reports whether r is one of ० to ९
func IsDevanagariDigit(r rune) bool {
	return r >= devanagariZero && r <= devanagariNine
}

// IsDigit reports whether r is a Latin or Devanagari decimal digit
func IsDigit(r rune) bool {
	return (r >= '0' && r <= '9') || IsDevanagariDigit(r)
}

// IsDevanagari reports whether r belongs to the Devanagari block
func IsDevanagari(r rune) bool {
	return unicode.Is(unicode.Devanagari, r)
}

// IsLetter reports whether r can start an identifier. Devanagari vowel
// signs and the virama are marks, not letters, but they are part of words.
func IsLetter(r rune) bool {
	if IsDevanagariDigit(r) {
		return false
	}
	if unicode.IsLetter(r) {
		return true
	}
	return IsDevanagari(r) && unicode.IsMark(r)
}

// IsIdentPart reports whether r can continue an identifier
func IsIdentPart(r rune) bool {
	return IsLetter(r) || IsDigit(r) || r == '_'
}

// IsWhitespace reports whether r separates tokens
func IsWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
