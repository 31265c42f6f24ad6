// File: bhasha.go
// Title: Bhasha Engine
// Description: High-level entry point of the language front end. The Engine
//              loads sources from strings, readers and files, optionally
//              normalizes them to Unicode NFC, enforces an input size limit
//              and runs a fresh lexer and parser per call, rendering
//              diagnostics in the configured locale.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-10
// Modified: 2026-10-10
//
// Change History:
// - 2026-10-10 v0.1.0: Initial engine implementation

package bhasha

import (
	"errors"
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/msto63/bhasha/foundation/bhasha/ast"
	"github.com/msto63/bhasha/foundation/bhasha/diag"
	"github.com/msto63/bhasha/foundation/bhasha/parser"
	"github.com/msto63/bhasha/foundation/bhasha/token"
	bherror "github.com/msto63/bhasha/foundation/core/error"
	bhlog "github.com/msto63/bhasha/foundation/core/log"
)

// DefaultMaxInputLength is the input limit in characters when none is set
const DefaultMaxInputLength = 1 << 20

// Options configures the engine
type Options struct {
	// Logger for engine, lexer and parser (optional, defaults to default logger)
	Logger *bhlog.Logger

	// Locale of diagnostic messages: "en", "mr" or "mr-en" (default: "en")
	Locale string

	// Normalize converts input to Unicode NFC before lexing, so letters
	// typed as base plus combining mark lex as one identifier character
	Normalize bool

	// MaxInputLength limits the input in characters (default: 1 MiB worth)
	MaxInputLength int
}

// Engine parses Bhasha sources. It holds no per-source state and is safe
// for concurrent use.
type Engine struct {
	logger  *bhlog.Logger
	msgs    *diag.Messages
	options Options
}

// New creates an engine
func New(opts Options) (*Engine, error) {
	if opts.Logger == nil {
		opts.Logger = bhlog.GetDefault()
	}
	if opts.MaxInputLength <= 0 {
		opts.MaxInputLength = DefaultMaxInputLength
	}

	msgs, err := diag.NewMessages(opts.Locale)
	if err != nil {
		return nil, bherror.Wrap(err, "failed to initialize diagnostics").
			WithOperation("bhasha.New").
			WithDetail("locale", opts.Locale)
	}

	logger := opts.Logger.WithField("component", "bhasha-engine")
	logger.Debug("engine initialized", bhlog.Fields{
		"locale":         msgs.Locale(),
		"normalize":      opts.Normalize,
		"maxInputLength": opts.MaxInputLength,
	})

	return &Engine{logger: logger, msgs: msgs, options: opts}, nil
}

// Messages returns the diagnostic renderer of the engine's locale
func (e *Engine) Messages() *diag.Messages {
	return e.msgs
}

// Load builds a source from text, applying normalization and the size limit
func (e *Engine) Load(name, text string) (*token.Source, error) {
	if n := utf8.RuneCountInString(text); n > e.options.MaxInputLength {
		return nil, bherror.Newf("input exceeds maximum length: %d > %d", n, e.options.MaxInputLength).
			WithCode(bherror.CodeInputTooLarge).
			WithOperation("bhasha.Load").
			WithDetail("source", name)
	}
	if !utf8.ValidString(text) {
		return nil, bherror.New("source is not valid UTF-8").
			WithCode(bherror.CodeInvalidInput).
			WithOperation("bhasha.Load").
			WithDetail("source", name)
	}
	if e.options.Normalize {
		text = norm.NFC.String(text)
	}
	return token.NewSource(name, text), nil
}

// LoadReader reads a whole source from r
func (e *Engine) LoadReader(name string, r io.Reader) (*token.Source, error) {
	data, err := io.ReadAll(io.LimitReader(r, int64(e.options.MaxInputLength)*utf8.UTFMax+1))
	if err != nil {
		return nil, bherror.Wrap(err, "failed to read source").
			WithCode(bherror.CodeIO).
			WithOperation("bhasha.LoadReader").
			WithDetail("source", name)
	}
	return e.Load(name, string(data))
}

// LoadFile reads a source file
func (e *Engine) LoadFile(path string) (*token.Source, error) {
	f, err := os.Open(path)
	if err != nil {
		code := bherror.CodeIO
		if errors.Is(err, os.ErrNotExist) {
			code = bherror.CodeNotFound
		}
		return nil, bherror.Wrap(err, "failed to open source").
			WithCode(code).
			WithOperation("bhasha.LoadFile").
			WithDetail("path", path)
	}
	defer f.Close()

	return e.LoadReader(path, f)
}

func (e *Engine) parserOptions() parser.Options {
	return parser.Options{Logger: e.options.Logger, Messages: e.msgs}
}

// TokenizeSource runs the lexer over src
func (e *Engine) TokenizeSource(src *token.Source) ([]token.Token, error) {
	return parser.Tokenize(src, e.parserOptions())
}

// ParseSource runs the lexer and parser over src
func (e *Engine) ParseSource(src *token.Source) (ast.Node, error) {
	return parser.Parse(src, e.parserOptions())
}

// Tokenize loads text and returns its tokens
func (e *Engine) Tokenize(name, text string) ([]token.Token, error) {
	src, err := e.Load(name, text)
	if err != nil {
		return nil, err
	}
	return e.TokenizeSource(src)
}

// Parse loads text and returns its syntax tree
func (e *Engine) Parse(name, text string) (ast.Node, error) {
	src, err := e.Load(name, text)
	if err != nil {
		return nil, err
	}
	return e.ParseSource(src)
}

// ParseFile reads and parses a source file
func (e *Engine) ParseFile(path string) (ast.Node, error) {
	src, err := e.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return e.ParseSource(src)
}

// Render formats err for users: a caret report for diagnostics, the plain
// message otherwise
func (e *Engine) Render(err error) string {
	if err == nil {
		return ""
	}
	var derr *diag.Error
	if errors.As(err, &derr) {
		return e.msgs.Render(derr)
	}
	return err.Error()
}

// Diagnostic returns the language diagnostic in err's chain, if any
func Diagnostic(err error) (*diag.Error, bool) {
	var derr *diag.Error
	if errors.As(err, &derr) {
		return derr, true
	}
	return nil, false
}

// Coded converts err into a core error: diagnostics get their language
// code, other errors are returned as core errors unchanged or wrapped
func Coded(err error) *bherror.Error {
	if err == nil {
		return nil
	}
	if derr, ok := Diagnostic(err); ok {
		return derr.CoreError()
	}
	var core *bherror.Error
	if errors.As(err, &core) {
		return core
	}
	return bherror.Wrap(err, "bhasha failed").WithCode(bherror.CodeInternal)
}
