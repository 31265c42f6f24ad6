// File: error.go
// Title: Language Diagnostics
// Description: The error value produced by the lexer and the parser. A
//              diagnostic carries its kind, the exact [start, end) span in
//              the source and the catalog key it was rendered from, so it can
//              be re-rendered in another locale or converted into a coded
//              core error for logging.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-06
// Modified: 2026-10-06
//
// Change History:
// - 2026-10-06 v0.1.0: Initial implementation

package diag

import (
	"fmt"

	"github.com/msto63/bhasha/foundation/bhasha/token"
	bherror "github.com/msto63/bhasha/foundation/core/error"
)

// Kind classifies a diagnostic
type Kind int

const (
	// IllegalCharacter is a character no token can start with
	IllegalCharacter Kind = iota

	// ExpectedChar is a character that was required but not found
	ExpectedChar

	// InvalidSyntax is a token sequence the grammar does not accept
	InvalidSyntax

	// NumberRange is an integer literal that does not fit in int64
	NumberRange
)

var kindNames = map[Kind]string{
	IllegalCharacter: "IllegalCharacter",
	ExpectedChar:     "ExpectedChar",
	InvalidSyntax:    "InvalidSyntax",
	NumberRange:      "NumberRange",
}

var kindKeys = map[Kind]string{
	IllegalCharacter: "kind.illegal_character",
	ExpectedChar:     "kind.expected_char",
	InvalidSyntax:    "kind.invalid_syntax",
	NumberRange:      "kind.number_range",
}

// String returns the kind identifier
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// TitleKey returns the catalog key of the kind's display name
func (k Kind) TitleKey() string {
	return kindKeys[k]
}

// IsLexical reports whether the kind is raised by the lexer
func (k Kind) IsLexical() bool {
	return k != InvalidSyntax
}

// Code maps the kind to its core error code
func (k Kind) Code() bherror.Code {
	switch k {
	case IllegalCharacter:
		return bherror.CodeIllegalCharacter
	case ExpectedChar:
		return bherror.CodeExpectedChar
	case InvalidSyntax:
		return bherror.CodeInvalidSyntax
	case NumberRange:
		return bherror.CodeNumberRange
	default:
		return bherror.CodeUnknown
	}
}

// Error is a lexical or syntax error with its source span
type Error struct {
	Kind  Kind
	Start token.Position
	End   token.Position

	// Key and Args identify the message in the catalog
	Key  string
	Args map[string]interface{}

	// Title and Detail are the rendered kind name and message
	Title  string
	Detail string
}

// Error implements the error interface as "name:line:col: Title: Detail"
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Start, e.Title, e.Detail)
}

// Span returns the offending source text
func (e *Error) Span() string {
	if e.Start.Src == nil {
		return ""
	}
	return e.Start.Src.Slice(e.Start.Index, e.End.Index)
}

// CoreError converts the diagnostic into a coded core error
func (e *Error) CoreError() *bherror.Error {
	return bherror.New(e.Detail).
		WithCode(e.Kind.Code()).
		WithOperation("bhasha.parse").
		WithMessage(e.Key, e.Args).
		WithDetails(map[string]interface{}{
			"file":   e.Start.Filename(),
			"line":   e.Start.Line + 1,
			"column": e.Start.Column + 1,
			"start":  e.Start.Index,
			"end":    e.End.Index,
			"kind":   e.Kind.String(),
		})
}
