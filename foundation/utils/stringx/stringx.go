// File: stringx.go
// Title: Core String Utility Functions
// Description: Implements string operations that extend the Go standard
//              library. Widths are terminal display widths, so Devanagari
//              text with combining vowel signs lines up with Latin text in
//              tables, carets and the explorer panes.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-03
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core utilities
// - 2026-10-03 v0.2.0: Display-width aware padding and truncation via go-runewidth

package stringx

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

// IsEmpty returns true if the string is empty (length 0).
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsBlank returns true if the string is empty or contains only whitespace.
func IsBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsNotBlank is the inverse of IsBlank.
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// Width returns the number of terminal cells s occupies.
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// RuneWidth returns the number of terminal cells r occupies. Combining marks
// such as Devanagari vowel signs occupy zero cells.
func RuneWidth(r rune) int {
	return runewidth.RuneWidth(r)
}

// Truncate shortens s to at most maxWidth cells, ending with ellipsis when
// something was cut. Multi-byte characters are never split.
func Truncate(s string, maxWidth int, ellipsis string) string {
	if maxWidth <= 0 {
		return ""
	}
	if Width(s) <= maxWidth {
		return s
	}
	if Width(ellipsis) >= maxWidth {
		return runewidth.Truncate(s, maxWidth, "")
	}
	return runewidth.Truncate(s, maxWidth, ellipsis)
}

// PadLeft pads s on the left with pad until it is width cells wide.
// If the string is already wider, it is returned unchanged.
func PadLeft(s string, width int, pad rune) string {
	n := padCount(s, width, pad)
	if n == 0 {
		return s
	}
	return strings.Repeat(string(pad), n) + s
}

// PadRight pads s on the right with pad until it is width cells wide.
// If the string is already wider, it is returned unchanged.
func PadRight(s string, width int, pad rune) string {
	n := padCount(s, width, pad)
	if n == 0 {
		return s
	}
	return s + strings.Repeat(string(pad), n)
}

func padCount(s string, width int, pad rune) int {
	pw := RuneWidth(pad)
	if pw <= 0 {
		pw = 1
	}
	missing := width - Width(s)
	if missing <= 0 {
		return 0
	}
	return missing / pw
}

// SplitLines splits a string into lines, handling \n, \r\n and \r endings.
func SplitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.Split(s, "\n")
}

// FirstNonBlank returns the first non-blank string from the provided strings.
func FirstNonBlank(values ...string) string {
	for _, s := range values {
		if IsNotBlank(s) {
			return s
		}
	}
	return ""
}

// FromBlankDefault returns defaultValue if s is blank, otherwise s.
func FromBlankDefault(s, defaultValue string) string {
	if IsBlank(s) {
		return defaultValue
	}
	return s
}
