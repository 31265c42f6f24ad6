// File: lexer.go
// Title: Bhasha Lexical Analyzer
// Description: Converts source text into a token stream. The lexer walks the
//              source one rune at a time; Devanagari digits are translated to
//              Latin digits as they are read, and words are classified as
//              keywords through the shared keyword table. Scanning stops at
//              the first lexical error.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-06
// Modified: 2026-10-09
//
// Change History:
// - 2026-10-06 v0.1.0: Initial lexer implementation
// - 2026-10-09 v0.2.0: String literals, comma and arrow, integer range check

package parser

import (
	"strconv"
	"strings"

	"github.com/msto63/bhasha/foundation/bhasha/diag"
	"github.com/msto63/bhasha/foundation/bhasha/script"
	"github.com/msto63/bhasha/foundation/bhasha/token"
	bhlog "github.com/msto63/bhasha/foundation/core/log"
)

// Options configures a Lexer or Parser. Zero values select the default
// logger and the English messages.
type Options struct {
	Logger   *bhlog.Logger
	Messages *diag.Messages
}

func (o Options) withDefaults(component string) Options {
	if o.Logger == nil {
		o.Logger = bhlog.GetDefault()
	}
	o.Logger = o.Logger.WithField("component", component)
	if o.Messages == nil {
		o.Messages = diag.DefaultMessages()
	}
	return o
}

var escapes = map[rune]rune{
	'n':  '\n',
	't':  '\t',
	'\\': '\\',
	'"':  '"',
}

// Lexer performs lexical analysis of one source. It is not safe for
// concurrent use; create one per source.
type Lexer struct {
	src     *token.Source
	pos     token.Position
	current rune
	atEnd   bool

	logger *bhlog.Logger
	msgs   *diag.Messages
}

// NewLexer creates a lexer positioned on the first rune of src
func NewLexer(src *token.Source, opts Options) *Lexer {
	opts = opts.withDefaults("bhasha-lexer")
	l := &Lexer{
		src:    src,
		pos:    token.Before(src),
		logger: opts.Logger.WithField("source", src.Name),
		msgs:   opts.Messages,
	}
	l.advance()
	return l
}

func (l *Lexer) advance() {
	l.pos.Advance(l.current)
	if l.pos.Index < len(l.src.Text) {
		l.current = l.src.Text[l.pos.Index]
		l.atEnd = false
	} else {
		l.current = 0
		l.atEnd = true
	}
}

func (l *Lexer) peek() rune {
	next := l.pos.Index + 1
	if next < len(l.src.Text) {
		return l.src.Text[next]
	}
	return 0
}

// Tokenize scans the whole source. The token list ends with EOF. On error
// the returned error is a *diag.Error and the token list is nil.
func (l *Lexer) Tokenize() ([]token.Token, error) {
	timer := l.logger.StartTimer("tokenize")
	tracing := l.logger.IsLevelEnabled(bhlog.LevelTrace)

	var tokens []token.Token
	for !l.atEnd {
		if script.IsWhitespace(l.current) {
			l.advance()
			continue
		}

		tok, err := l.next()
		if err != nil {
			timer.WithField("error_code", err.Kind.Code().String()).StopWithError(err)
			return nil, err
		}
		if tracing {
			l.logger.Trace("token", bhlog.Fields{"token": tok.String(), "at": tok.Start.String()})
		}
		tokens = append(tokens, tok)
	}

	tokens = append(tokens, token.New(token.EOF, nil, l.pos))
	timer.WithField("tokens", len(tokens)).Stop()
	return tokens, nil
}

// next scans one token starting at the current, non-blank rune
func (l *Lexer) next() (token.Token, *diag.Error) {
	switch r := l.current; {
	case r == '+':
		return l.single(token.PLUS), nil
	case r == '-':
		return l.either('>', token.MINUS, token.ARROW), nil
	case r == '*':
		return l.either('*', token.MUL, token.POWER), nil
	case r == '/':
		return l.single(token.DIV), nil
	case r == '(':
		return l.single(token.LPAREN), nil
	case r == ')':
		return l.single(token.RPAREN), nil
	case r == ',':
		return l.single(token.COMMA), nil
	case r == '=':
		return l.either('=', token.EQ, token.EE), nil
	case r == '<':
		return l.either('=', token.LT, token.LTE), nil
	case r == '>':
		return l.either('=', token.GT, token.GTE), nil
	case r == '!':
		return l.notEquals()
	case r == '"':
		return l.stringLiteral()
	case script.IsDigit(r):
		return l.number()
	case script.IsLetter(r):
		return l.identifier(), nil
	default:
		start := l.pos
		l.advance()
		return token.Token{}, l.msgs.New(diag.IllegalCharacter, start, l.pos,
			"lex.illegal_character", map[string]interface{}{"Char": string(r)})
	}
}

func (l *Lexer) single(kind token.Kind) token.Token {
	start := l.pos
	l.advance()
	return token.NewSpan(kind, nil, start, l.pos)
}

// either reads a one-rune token, or a two-rune token when the next rune is
// second
func (l *Lexer) either(second rune, one, two token.Kind) token.Token {
	start := l.pos
	l.advance()
	if !l.atEnd && l.current == second {
		l.advance()
		return token.NewSpan(two, nil, start, l.pos)
	}
	return token.NewSpan(one, nil, start, l.pos)
}

func (l *Lexer) notEquals() (token.Token, *diag.Error) {
	start := l.pos
	l.advance()
	if !l.atEnd && l.current == '=' {
		l.advance()
		return token.NewSpan(token.NE, nil, start, l.pos), nil
	}
	return token.Token{}, l.msgs.New(diag.ExpectedChar, start, l.pos.Next(), "lex.expected_equals", nil)
}

func (l *Lexer) stringLiteral() (token.Token, *diag.Error) {
	start := l.pos
	l.advance()

	var b strings.Builder
	escaped := false
	for !l.atEnd {
		r := l.current
		switch {
		case escaped:
			if e, ok := escapes[r]; ok {
				r = e
			}
			b.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case r == '"':
			l.advance()
			return token.NewSpan(token.STRING, b.String(), start, l.pos), nil
		default:
			b.WriteRune(r)
		}
		l.advance()
	}

	return token.Token{}, l.msgs.New(diag.ExpectedChar, start, l.pos, "lex.unterminated_string", nil)
}

// number reads digits and at most one '.'; a second '.' ends the literal
func (l *Lexer) number() (token.Token, *diag.Error) {
	start := l.pos

	var b strings.Builder
	dots := 0
	for !l.atEnd && (script.IsDigit(l.current) || l.current == '.') {
		if l.current == '.' {
			if dots == 1 {
				break
			}
			dots++
		}
		b.WriteRune(script.DigitToLatin(l.current))
		l.advance()
	}

	text := b.String()
	if dots == 0 {
		v, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return token.Token{}, l.rangeError(start)
		}
		return token.NewSpan(token.INT, v, start, l.pos), nil
	}

	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return token.Token{}, l.rangeError(start)
	}
	return token.NewSpan(token.FLOAT, v, start, l.pos), nil
}

func (l *Lexer) rangeError(start token.Position) *diag.Error {
	literal := l.src.Slice(start.Index, l.pos.Index)
	return l.msgs.New(diag.NumberRange, start, l.pos, "lex.number_range",
		map[string]interface{}{"Literal": literal})
}

func (l *Lexer) identifier() token.Token {
	start := l.pos

	var b strings.Builder
	for !l.atEnd && script.IsIdentPart(l.current) {
		b.WriteRune(script.DigitToLatin(l.current))
		l.advance()
	}

	text := b.String()
	if kw, ok := token.Lookup(text); ok {
		return token.NewKeyword(kw, text, start, l.pos)
	}
	return token.NewSpan(token.IDENTIFIER, text, start, l.pos)
}

// Tokenize scans src with a fresh lexer
func Tokenize(src *token.Source, opts Options) ([]token.Token, error) {
	return NewLexer(src, opts).Tokenize()
}
