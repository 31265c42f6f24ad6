// File: keyword.go
// Title: Bilingual Keyword Table
// Description: The single table of keyword spellings. Every keyword has a
//              Latin and a Devanagari (Marathi) spelling; both are accepted
//              everywhere the keyword may appear. The lexer classifies
//              identifiers through Lookup and the parser matches on the
//              canonical Keyword, so no other package lists spellings.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-05
// Modified: 2026-10-05
//
// Change History:
// - 2026-10-05 v0.1.0: Initial implementation

package token

// Keyword is the canonical identity of a keyword, independent of spelling
type Keyword int

// Canonical keywords
const (
	NoKeyword Keyword = iota
	Var
	And
	Or
	Not
	If
	Then
	Elif
	Else
	For
	To
	Step
	While
	Fun
)

// Script identifies the writing system of a keyword spelling
type Script int

const (
	Latin Script = iota
	Devanagari
)

// String returns the script name
func (s Script) String() string {
	if s == Devanagari {
		return "devanagari"
	}
	return "latin"
}

type spelling struct {
	latin  string
	native string
}

var keywordTable = map[Keyword]spelling{
	Var:   {"var", "चल"},
	And:   {"AND", "आणि"},
	Or:    {"OR", "किंवा"},
	Not:   {"NOT", "नाही"},
	If:    {"IF", "जर"},
	Then:  {"THEN", "तर"},
	Elif:  {"ELIF", "किंवाजर"},
	Else:  {"ELSE", "नाहीतर"},
	For:   {"FOR", "वारंवार"},
	To:    {"TO", "ते"},
	Step:  {"STEP", "पाऊल"},
	While: {"WHILE", "जोपर्यंत"},
	Fun:   {"FUN", "कार्य"},
}

type lookupEntry struct {
	keyword Keyword
	script  Script
}

var spellings = func() map[string]lookupEntry {
	m := make(map[string]lookupEntry, 2*len(keywordTable))
	for kw, sp := range keywordTable {
		m[sp.latin] = lookupEntry{kw, Latin}
		m[sp.native] = lookupEntry{kw, Devanagari}
	}
	return m
}()

// Lookup classifies an identifier. Matching is exact and case-sensitive.
func Lookup(ident string) (Keyword, bool) {
	e, ok := spellings[ident]
	return e.keyword, ok
}

// ScriptOf reports which spelling of a keyword ident is
func ScriptOf(ident string) (Script, bool) {
	e, ok := spellings[ident]
	return e.script, ok
}

// Keywords returns all canonical keywords in declaration order
func Keywords() []Keyword {
	return []Keyword{Var, And, Or, Not, If, Then, Elif, Else, For, To, Step, While, Fun}
}

// Spelling returns the keyword as written in script
func (k Keyword) Spelling(script Script) string {
	sp, ok := keywordTable[k]
	if !ok {
		return ""
	}
	if script == Devanagari {
		return sp.native
	}
	return sp.latin
}

// Latin returns the Latin spelling
func (k Keyword) Latin() string {
	return k.Spelling(Latin)
}

// Native returns the Devanagari spelling
func (k Keyword) Native() string {
	return k.Spelling(Devanagari)
}

// String returns the Latin spelling, or "NoKeyword"
func (k Keyword) String() string {
	if s := k.Latin(); s != "" {
		return s
	}
	return "NoKeyword"
}
