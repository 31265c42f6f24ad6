// File: token.go
// Title: Lexical Tokens
// Description: Token kinds and the immutable Token value produced by the
//              lexer. A token carries its literal payload and the [start,
//              end) span it was read from.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-05
// Modified: 2026-10-05
//
// Change History:
// - 2026-10-05 v0.1.0: Initial implementation

package token

import "fmt"

// Kind is the lexical class of a token
type Kind int

// Token kinds
const (
	ILLEGAL Kind = iota

	INT
	FLOAT
	STRING
	IDENTIFIER
	KEYWORD

	PLUS
	MINUS
	MUL
	DIV
	POWER

	LPAREN
	RPAREN

	EQ
	EE
	NE
	LT
	GT
	LTE
	GTE

	COMMA
	ARROW

	EOF
)

var kindNames = [...]string{
	ILLEGAL:    "ILLEGAL",
	INT:        "INT",
	FLOAT:      "FLOAT",
	STRING:     "STRING",
	IDENTIFIER: "IDENTIFIER",
	KEYWORD:    "KEYWORD",
	PLUS:       "PLUS",
	MINUS:      "MINUS",
	MUL:        "MUL",
	DIV:        "DIV",
	POWER:      "POWER",
	LPAREN:     "LPAREN",
	RPAREN:     "RPAREN",
	EQ:         "EQ",
	EE:         "EE",
	NE:         "NE",
	LT:         "LT",
	GT:         "GT",
	LTE:        "LTE",
	GTE:        "GTE",
	COMMA:      "COMMA",
	ARROW:      "ARROW",
	EOF:        "EOF",
}

var kindSymbols = map[Kind]string{
	PLUS:   "+",
	MINUS:  "-",
	MUL:    "*",
	DIV:    "/",
	POWER:  "**",
	LPAREN: "(",
	RPAREN: ")",
	EQ:     "=",
	EE:     "==",
	NE:     "!=",
	LT:     "<",
	GT:     ">",
	LTE:    "<=",
	GTE:    ">=",
	COMMA:  ",",
	ARROW:  "->",
}

// String returns the kind name, e.g. "POWER"
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Symbol returns the source text of an operator or punctuation kind, or ""
func (k Kind) Symbol() string {
	return kindSymbols[k]
}

// Kinds returns every kind except ILLEGAL
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(kindNames)-1)
	for k := INT; k <= EOF; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// Token is a lexical token. Value is int64 for INT, float64 for FLOAT, the
// text for STRING, IDENTIFIER and KEYWORD, and nil otherwise. Keyword is set
// for KEYWORD tokens only.
type Token struct {
	Kind    Kind
	Value   interface{}
	Keyword Keyword
	Start   Position
	End     Position
}

// New creates a token spanning one rune from start
func New(kind Kind, value interface{}, start Position) Token {
	return Token{Kind: kind, Value: value, Start: start, End: start.Next()}
}

// NewSpan creates a token with an explicit [start, end) span
func NewSpan(kind Kind, value interface{}, start, end Position) Token {
	return Token{Kind: kind, Value: value, Start: start, End: end}
}

// NewKeyword creates a KEYWORD token for kw as spelled in text
func NewKeyword(kw Keyword, text string, start, end Position) Token {
	return Token{Kind: KEYWORD, Value: text, Keyword: kw, Start: start, End: end}
}

// Is reports whether the token has one of kinds
func (t Token) Is(kinds ...Kind) bool {
	for _, k := range kinds {
		if t.Kind == k {
			return true
		}
	}
	return false
}

// Matches reports whether the token is keyword kw in either spelling
func (t Token) Matches(kw Keyword) bool {
	return t.Kind == KEYWORD && t.Keyword == kw
}

// Int returns the INT payload
func (t Token) Int() int64 {
	v, _ := t.Value.(int64)
	return v
}

// Float returns the FLOAT payload, converting INT payloads
func (t Token) Float() float64 {
	switch v := t.Value.(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	default:
		return 0
	}
}

// Text returns the string payload of STRING, IDENTIFIER and KEYWORD tokens
func (t Token) Text() string {
	v, _ := t.Value.(string)
	return v
}

// Lexeme returns the source text the token was read from
func (t Token) Lexeme() string {
	if t.Start.Src == nil {
		return ""
	}
	return t.Start.Src.Slice(t.Start.Index, t.End.Index)
}

// Describe returns the token as a user would recognise it: the symbol for
// operators, the text for words and numbers, and "end of input" for EOF
func (t Token) Describe() string {
	switch t.Kind {
	case EOF:
		return "end of input"
	case STRING:
		return fmt.Sprintf("%q", t.Text())
	default:
		if sym := t.Kind.Symbol(); sym != "" {
			return sym
		}
		if t.Value != nil {
			return fmt.Sprintf("%v", t.Value)
		}
		return t.Kind.String()
	}
}

// String renders KIND:value, or KIND for tokens without payload
func (t Token) String() string {
	if t.Value == nil {
		return t.Kind.String()
	}
	return fmt.Sprintf("%s:%v", t.Kind, t.Value)
}
