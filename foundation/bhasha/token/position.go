// File: position.go
// Title: Source Positions
// Description: Defines the shared source buffer and the position cursor the
//              lexer advances one character at a time. Positions count runes,
//              lines and columns are 0-based internally and printed 1-based.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-05
// Modified: 2026-10-05
//
// Change History:
// - 2026-10-05 v0.1.0: Initial implementation

package token

import (
	"fmt"
	"strings"
)

// Source is a named source text. It is read-only after construction and may
// be shared by any number of positions, tokens and diagnostics.
type Source struct {
	Name string
	Text []rune

	lineStarts []int
}

// NewSource creates a source from UTF-8 text
func NewSource(name, text string) *Source {
	src := &Source{Name: name, Text: []rune(text)}

	src.lineStarts = []int{0}
	for i, r := range src.Text {
		if r == '\n' {
			src.lineStarts = append(src.lineStarts, i+1)
		}
	}
	return src
}

// LineCount returns the number of lines, counting a trailing empty line
func (s *Source) LineCount() int {
	return len(s.lineStarts)
}

// Line returns the text of line n (0-based) without its line terminator
func (s *Source) Line(n int) string {
	if n < 0 || n >= len(s.lineStarts) {
		return ""
	}

	start := s.lineStarts[n]
	end := len(s.Text)
	if n+1 < len(s.lineStarts) {
		end = s.lineStarts[n+1] - 1
	}
	return strings.TrimRight(string(s.Text[start:end]), "\r")
}

// Slice returns the text between two rune indices, clamped to the buffer
func (s *Source) Slice(start, end int) string {
	if start < 0 {
		start = 0
	}
	if end > len(s.Text) {
		end = len(s.Text)
	}
	if start >= end {
		return ""
	}
	return string(s.Text[start:end])
}

// Position is a cursor into a Source
type Position struct {
	Index  int
	Line   int
	Column int
	Src    *Source
}

// Before returns the position that precedes the first character of src, so
// that the first Advance lands on index 0, column 0.
func Before(src *Source) Position {
	return Position{Index: -1, Line: 0, Column: -1, Src: src}
}

// At returns the position of the rune at index in src
func At(src *Source, index int) Position {
	pos := Before(src)
	var prev rune
	for pos.Index < index {
		pos.Advance(prev)
		if pos.Index < len(src.Text) {
			prev = src.Text[pos.Index]
		} else {
			prev = 0
		}
	}
	return pos
}

// Advance moves the cursor one rune forward. prev is the rune being left
// behind; a newline starts a new line.
func (p *Position) Advance(prev rune) {
	p.Index++
	if prev == '\n' {
		p.Line++
		p.Column = 0
	} else {
		p.Column++
	}
}

// Copy returns an independent snapshot of the position
func (p Position) Copy() Position {
	return p
}

// Next returns the position one rune after p
func (p Position) Next() Position {
	next := p
	next.Advance(p.Rune())
	return next
}

// Rune returns the rune under the cursor, or 0 outside the buffer
func (p Position) Rune() rune {
	if p.Src == nil || p.Index < 0 || p.Index >= len(p.Src.Text) {
		return 0
	}
	return p.Src.Text[p.Index]
}

// Filename returns the source name, or "<unknown>"
func (p Position) Filename() string {
	if p.Src == nil || p.Src.Name == "" {
		return "<unknown>"
	}
	return p.Src.Name
}

// String renders the position as name:line:column, 1-based
func (p Position) String() string {
	return fmt.Sprintf("%s:%d:%d", p.Filename(), p.Line+1, p.Column+1)
}
