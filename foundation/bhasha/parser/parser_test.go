// File: parser_test.go
// Title: Bhasha Parser Unit Tests
// Description: Tests for precedence and associativity, every construct in
//              both keyword scripts, the error chosen by the deepest partial
//              parse, node spans and logging.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-06
// Modified: 2026-10-09
//
// Change History:
// - 2026-10-06 v0.1.0: Initial parser test suite
// - 2026-10-09 v0.2.0: Function and call tests, bilingual equivalence

package parser

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/msto63/bhasha/foundation/bhasha/ast"
	"github.com/msto63/bhasha/foundation/bhasha/diag"
	"github.com/msto63/bhasha/foundation/bhasha/token"
	bhlog "github.com/msto63/bhasha/foundation/core/log"
)

func mustParse(t *testing.T, text string) ast.Node {
	t.Helper()
	node, err := Parse(token.NewSource("t.bh", text), quiet())
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", text, err)
	}
	return node
}

func parseError(t *testing.T, text string, opts Options) *diag.Error {
	t.Helper()
	node, err := Parse(token.NewSource("t.bh", text), opts)
	if err == nil {
		t.Fatalf("Parse(%q) = %s, want error", text, ast.Sprint(node))
	}
	if node != nil {
		t.Errorf("Parse(%q) returned a partial tree %s", text, ast.Sprint(node))
	}
	var derr *diag.Error
	if !errors.As(err, &derr) {
		t.Fatalf("error %T is not a *diag.Error", err)
	}
	return derr
}

func TestParser_Expressions(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		// precedence and associativity
		{"product binds tighter", "1 + 2 * 3", "(+ 1 (* 2 3))"},
		{"sum is left associative", "1 - 2 - 3", "(- (- 1 2) 3)"},
		{"division is left associative", "8 / 4 / 2", "(/ (/ 8 4) 2)"},
		{"parentheses", "(1 + 2) * 3", "(* (+ 1 2) 3)"},
		{"power binds tighter than product", "2 * 3 ** 2", "(* 2 (** 3 2))"},
		{"power chains nest right", "2 ** 3 ** 2", "(** 2 (** 3 2))"},
		{"signed exponent", "2 ** -3", "(** 2 (- 3))"},
		{"repeated signs in exponent", "2 ** - + 3", "(** 2 (- (+ 3)))"},
		{"comparison below arithmetic", "1 + 2 < 3 * 4", "(< (+ 1 2) (* 3 4))"},
		{"comparison chains fold left", "1 == 2 != 3", "(!= (== 1 2) 3)"},
		{"all comparisons", "a < b <= c > d >= e", "(>= (> (<= (< a b) c) d) e)"},
		{"logic below comparison", "1 < 2 AND 3 >= 4 OR NOT 5 == 6", "(OR (AND (< 1 2) (>= 3 4)) (NOT (== 5 6)))"},
		{"not binds a whole comparison", "NOT 1 == 2", "(NOT (== 1 2))"},
		{"double not", "NOT NOT x", "(NOT (NOT x))"},

		// literals and variables
		{"float", "1.5 * 2", "(* 1.5 2)"},
		{"devanagari digits", "१२ + ३.५", "(+ 12 3.5)"},
		{"string", `"hi" + "\n"`, `(+ "hi" "\n")`},
		{"assignment", "var x = 1 + 2", "(var x (+ 1 2))"},
		{"chained assignment", "var x = var y = 5", "(var x (var y 5))"},
		{"assignment inside parentheses", "(var x = 1) + x", "(+ (var x 1) x)"},
		{"devanagari identifier", "चल क्ष = १", "(var क्ष 1)"},
		{"multi-line", "var x =\n  1 +\n  2", "(var x (+ 1 2))"},

		// control flow
		{"if", "IF x THEN 1", "(IF (x 1))"},
		{"if elif else", "IF x THEN 1 ELIF y THEN 2 ELIF z THEN 3 ELSE 4", "(IF (x 1) (y 2) (z 3) (ELSE 4))"},
		{"else binds innermost if", "IF x THEN IF y THEN 1 ELSE 2", "(IF (x (IF (y 1) (ELSE 2))))"},
		{"if as operand", "1 + IF x THEN 2 ELSE 3", "(+ 1 (IF (x 2) (ELSE 3)))"},
		{"for", "FOR i = 1 TO 10 THEN i", "(FOR i 1 10 i)"},
		{"for with step", "FOR i = 10 TO 0 STEP 0 - 2 THEN i * 2", "(FOR i 10 0 (STEP (- 0 2)) (* i 2))"},
		{"while", "WHILE x < 3 THEN var x = x + 1", "(WHILE (< x 3) (var x (+ x 1)))"},

		// functions and calls
		{"named function", "FUN add(a, b) -> a + b", "(FUN add (a b) (+ a b))"},
		{"anonymous function", "FUN (x) -> x * x", "(FUN (x) (* x x))"},
		{"no parameters", "FUN () -> 1", "(FUN () 1)"},
		{"assigned function", "var sq = FUN (x) -> x ** 2", "(var sq (FUN (x) (** x 2)))"},
		{"empty call", "f()", "(call f)"},
		{"call arguments", "f(1, 2 + 3, g(4))", "(call f 1 (+ 2 3) (call g 4))"},
		{"call binds tighter than power", "f(2) ** 2", "(** (call f 2) 2)"},
		{"call on any atom", "3 (4)", "(call 3 4)"},
		{"call a function literal", "(FUN (x) -> x)(7)", "(call (FUN (x) x) 7)"},
		{"call with assignment argument", "f(var x = 1)", "(call f (var x 1))"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ast.Sprint(mustParse(t, tt.input)); got != tt.want {
				t.Errorf("Parse(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestParser_BilingualEquivalence(t *testing.T) {
	pairs := []struct {
		latin  string
		native string
	}{
		{"var x = 1", "चल x = १"},
		{"a AND b OR NOT c", "a आणि b किंवा नाही c"},
		{"IF a THEN 1 ELIF b THEN 2 ELSE 3", "जर a तर 1 किंवाजर b तर 2 नाहीतर 3"},
		{"FOR i = 1 TO 10 STEP 2 THEN i", "वारंवार i = १ ते १० पाऊल २ तर i"},
		{"WHILE x < 10 THEN var x = x + 1", "जोपर्यंत x < १० तर चल x = x + १"},
		{"FUN f(a, b) -> a * b", "कार्य f(a, b) -> a * b"},
		{"IF a THEN 1 ELSE 2", "जर a THEN 1 नाहीतर 2"},
	}

	for _, tt := range pairs {
		latin := mustParse(t, tt.latin)
		native := mustParse(t, tt.native)
		if !ast.Equal(latin, native) {
			t.Errorf("%q = %s\n%q = %s", tt.latin, ast.Sprint(latin), tt.native, ast.Sprint(native))
		}
	}
}

func TestParser_Idempotent(t *testing.T) {
	input := "FUN f(n) -> IF n <= 1 THEN 1 ELSE n * f(n - 1)"
	first := mustParse(t, input)
	second := mustParse(t, input)
	if !ast.Equal(first, second) {
		t.Error("parsing the same source twice gave different trees")
	}
	if first == second {
		t.Error("each parse should build a fresh tree")
	}
}

func TestParser_Errors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		kind   diag.Kind
		start  int
		end    int
		detail string
	}{
		{"empty input", "", diag.InvalidSyntax, 0, 1,
			"Expected 'var', int, float, identifier, 'IF', 'FOR', 'WHILE', 'FUN', '+', '-' or '('"},
		{"leading minus", "-3", diag.InvalidSyntax, 0, 1,
			"Expected 'var', int, float, identifier, 'IF', 'FOR', 'WHILE', 'FUN', '+', '-' or '('"},
		{"missing operand", "1 +", diag.InvalidSyntax, 3, 4,
			"Expected int, float, string, identifier, 'IF', 'FOR', 'WHILE', 'FUN', '+', '-' or '('"},
		{"missing comparison operand", "1 ==", diag.InvalidSyntax, 4, 5,
			"Expected int, float, string, identifier, 'IF', 'FOR', 'WHILE', 'FUN', '+', '-' or '('"},
		{"bare not", "NOT", diag.InvalidSyntax, 3, 4,
			"Expected int, float, identifier, '+', '-', '(' or 'NOT'"},
		{"unclosed parenthesis", "(1 + 2", diag.InvalidSyntax, 6, 7, "Expected ')'"},
		{"unclosed nested parenthesis", "((1)", diag.InvalidSyntax, 4, 5, "Expected ')'"},
		{"trailing token", "1 2", diag.InvalidSyntax, 2, 3, "Expected an operator or end of input"},
		{"trailing call", "f(1)(2)", diag.InvalidSyntax, 4, 5, "Expected an operator or end of input"},
		{"stray rparen", "1 )", diag.InvalidSyntax, 2, 3, "Expected an operator or end of input"},
		{"missing argument", "f(,)", diag.InvalidSyntax, 2, 3,
			"Expected ')', 'var', 'IF', 'FOR', 'WHILE', 'FUN', int, float, identifier, '+', '-', '(' or 'NOT'"},
		{"trailing comma in call", "f(1, 2,)", diag.InvalidSyntax, 7, 8,
			"Expected 'var', int, float, identifier, 'IF', 'FOR', 'WHILE', 'FUN', '+', '-' or '('"},
		{"missing comma in call", "f(1 2)", diag.InvalidSyntax, 4, 5, "Expected ',' or ')'"},
		{"unclosed call", "f(1", diag.InvalidSyntax, 3, 4, "Expected ',' or ')'"},
		{"var without name", "var 1 = 2", diag.InvalidSyntax, 4, 5, "Expected identifier"},
		{"var keyword as name", "var IF = 2", diag.InvalidSyntax, 4, 6, "Expected identifier"},
		{"var without equals", "var x 2", diag.InvalidSyntax, 6, 7, "Expected '='"},
		{"var without value", "var x =", diag.InvalidSyntax, 7, 8,
			"Expected 'var', int, float, identifier, 'IF', 'FOR', 'WHILE', 'FUN', '+', '-' or '('"},
		{"if without then", "IF 1 2", diag.InvalidSyntax, 5, 6, "Expected 'THEN'"},
		{"elif without then", "IF 1 THEN 2 ELIF 3 4", diag.InvalidSyntax, 19, 20, "Expected 'THEN'"},
		{"else without body", "IF x THEN 1 ELSE", diag.InvalidSyntax, 16, 17,
			"Expected 'var', int, float, identifier, 'IF', 'FOR', 'WHILE', 'FUN', '+', '-' or '('"},
		{"for without name", "FOR 1", diag.InvalidSyntax, 4, 5, "Expected identifier"},
		{"for without equals", "FOR i 1", diag.InvalidSyntax, 6, 7, "Expected '='"},
		{"for without to", "FOR i = 1 THEN 2", diag.InvalidSyntax, 10, 14, "Expected 'TO'"},
		{"for without then", "FOR i = 1 TO 2 3", diag.InvalidSyntax, 15, 16, "Expected 'THEN'"},
		{"while without then", "WHILE 1 2", diag.InvalidSyntax, 8, 9, "Expected 'THEN'"},
		{"fun without parameters", "FUN 1", diag.InvalidSyntax, 4, 5, "Expected identifier or '('"},
		{"named fun without parameters", "FUN f 1", diag.InvalidSyntax, 6, 7, "Expected '('"},
		{"bad first parameter", "FUN f(1)", diag.InvalidSyntax, 6, 7, "Expected identifier or ')'"},
		{"bad later parameter", "FUN f(a, 1)", diag.InvalidSyntax, 9, 10, "Expected identifier"},
		{"missing comma in parameters", "FUN f(a b)", diag.InvalidSyntax, 8, 9, "Expected ',' or ')'"},
		{"missing arrow", "FUN f(a) a", diag.InvalidSyntax, 9, 10, "Expected '->'"},
		{"missing body", "FUN f(a) ->", diag.InvalidSyntax, 11, 12,
			"Expected 'var', int, float, identifier, 'IF', 'FOR', 'WHILE', 'FUN', '+', '-' or '('"},

		// lexical errors pass through unchanged
		{"illegal character", "1 + $", diag.IllegalCharacter, 4, 5, "'$'"},
		{"bang without equals", "1 ! 2", diag.ExpectedChar, 2, 4, "'=' (after '!')"},
		{"number out of range", "1 + 99999999999999999999", diag.NumberRange, 4, 24,
			"99999999999999999999 does not fit in a 64-bit integer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := parseError(t, tt.input, quiet())
			if err.Kind != tt.kind {
				t.Errorf("kind = %s, want %s", err.Kind, tt.kind)
			}
			if err.Start.Index != tt.start || err.End.Index != tt.end {
				t.Errorf("span = [%d, %d), want [%d, %d)", err.Start.Index, err.End.Index, tt.start, tt.end)
			}
			if err.Detail != tt.detail {
				t.Errorf("detail = %q\nwant     %q", err.Detail, tt.detail)
			}
		})
	}
}

func TestParser_LocalizedErrors(t *testing.T) {
	tests := []struct {
		locale string
		input  string
		want   string
	}{
		{"en", "जर 1 2", "t.bh:1:6: Invalid Syntax: Expected 'THEN'"},
		{"mr", "जर 1 2", "t.bh:1:6: अवैध रचना: 'तर' अपेक्षित"},
		{"mr-en", "जर 1 2", "t.bh:1:6: अवैध रचना (Invalid Syntax): अपेक्षित 'तर' ('THEN')"},
		{"mr-en", "(1", "t.bh:1:3: अवैध रचना (Invalid Syntax): अपेक्षित(Expected) ')'"},
		{"mr", "1 $", "t.bh:1:3: अवैध अक्षर: '$'"},
	}

	for _, tt := range tests {
		t.Run(tt.locale+"/"+tt.input, func(t *testing.T) {
			msgs, err := diag.NewMessages(tt.locale)
			if err != nil {
				t.Fatal(err)
			}
			opts := quiet()
			opts.Messages = msgs

			if got := parseError(t, tt.input, opts).Error(); got != tt.want {
				t.Errorf("error = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParser_Spans(t *testing.T) {
	tests := []struct {
		input      string
		start, end int
	}{
		{"1 + 23", 0, 6},
		{"var x = 5", 4, 9},
		{"  NOT x", 2, 7},
		{"IF a THEN b ELSE cd", 3, 19},
		{"f(1, 22)", 0, 7},
		{"FUN (a) -> a", 5, 12},
	}

	for _, tt := range tests {
		node := mustParse(t, tt.input)
		if node.Start().Index != tt.start || node.End().Index != tt.end {
			t.Errorf("%q spans [%d, %d), want [%d, %d)",
				tt.input, node.Start().Index, node.End().Index, tt.start, tt.end)
		}
	}
}

func TestParser_NodeShapes(t *testing.T) {
	loop, ok := mustParse(t, "FOR i = 1 TO 3 THEN i").(*ast.CountedLoop)
	if !ok {
		t.Fatal("expected a CountedLoop")
	}
	if loop.Step != nil {
		t.Errorf("missing STEP should be nil, got %s", ast.Sprint(loop.Step))
	}

	fn, ok := mustParse(t, "FUN (a, b) -> a").(*ast.FunctionDefinition)
	if !ok {
		t.Fatal("expected a FunctionDefinition")
	}
	if !fn.IsAnonymous() || len(fn.Params) != 2 {
		t.Errorf("anonymous = %v, params = %d", fn.IsAnonymous(), len(fn.Params))
	}

	op, ok := mustParse(t, "a आणि b").(*ast.BinaryOp)
	if !ok {
		t.Fatal("expected a BinaryOp")
	}
	if !op.Op.Matches(token.And) || op.Op.Text() != "आणि" {
		t.Errorf("operator token = %s", op.Op)
	}
}

func TestResult(t *testing.T) {
	src := token.NewSource("t.bh", "ab")
	msgs := diag.DefaultMessages()
	first := msgs.New(diag.InvalidSyntax, token.At(src, 0), token.At(src, 1), "parse.expected_rparen", nil)
	second := msgs.New(diag.InvalidSyntax, token.At(src, 1), token.At(src, 2), "parse.expected_atom", nil)

	res := &Result{}
	res.Failure(first)
	res.Failure(second)
	if res.Err != second {
		t.Error("without advancement the later failure should win")
	}

	res = &Result{}
	res.RegisterAdvancement()
	res.Failure(first)
	res.Failure(second)
	if res.Err != first {
		t.Error("after advancement the recorded failure should win")
	}

	outer := &Result{}
	inner := &Result{AdvanceCount: 2, Err: first}
	if node := outer.Register(inner); node != nil || outer.AdvanceCount != 2 || outer.Err != first || outer.OK() {
		t.Errorf("Register folded to count %d err %v", outer.AdvanceCount, outer.Err)
	}

	ok := &Result{}
	num := &ast.NumberLiteral{}
	if ok.Success(num).Node != num || !ok.OK() {
		t.Error("Success should record the node")
	}
}

func TestParser_TokensWithoutEOF(t *testing.T) {
	res := NewParser(nil, quiet()).Parse()
	if res.Err == nil || res.Err.Key != "parse.expected_expression" {
		t.Errorf("empty token list: %v", res.Err)
	}

	tokens := lex(t, "1 + 2")
	res = NewParser(tokens[:len(tokens)-1], quiet()).Parse()
	if res.Err != nil || ast.Sprint(res.Node) != "(+ 1 2)" {
		t.Errorf("tokens without EOF: %v %v", ast.Sprint(res.Node), res.Err)
	}
}

func TestParser_Logging(t *testing.T) {
	var buf bytes.Buffer
	logger := bhlog.NewWithConfig(bhlog.Config{Level: bhlog.LevelDebug, Format: bhlog.FormatLogfmt, Output: &buf})
	opts := Options{Logger: logger}

	if _, err := Parse(token.NewSource("ok.bh", "1 + 2"), opts); err != nil {
		t.Fatal(err)
	}
	if _, err := Parse(token.NewSource("bad.bh", "1 +"), opts); err == nil {
		t.Fatal("expected an error")
	}

	out := buf.String()
	for _, want := range []string{
		`message="tokenize completed"`,
		`message="parse completed"`,
		`message="parse failed"`,
		`component="bhasha-parser"`,
		`error_code="INVALID_SYNTAX"`,
		`source="bad.bh"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output misses %s:\n%s", want, out)
		}
	}
	if strings.Contains(out, "level=trace") {
		t.Error("trace entries logged at debug level")
	}
}
