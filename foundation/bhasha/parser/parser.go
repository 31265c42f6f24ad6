// File: parser.go
// Title: Bhasha Recursive Descent Parser
// Description: Builds the syntax tree from a token stream. One method per
//              grammar production, lowest precedence first:
//
//                expr       := VAR IDENT '=' expr | comp-expr ((AND|OR) comp-expr)*
//                comp-expr  := NOT comp-expr | arith-expr (cmp arith-expr)*
//                arith-expr := term (('+'|'-') term)*
//                term       := power (('*'|'/') power)*
//                power      := call ('**' factor)*
//                factor     := ('+'|'-') factor | power
//                call       := atom ('(' (expr (',' expr)*)? ')')?
//                atom       := INT | FLOAT | STRING | IDENT | '(' expr ')'
//                            | if-expr | for-expr | while-expr | func-def
//
//              Keywords match in either script. There is no error recovery:
//              the first error ends the parse.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-06
// Modified: 2026-10-09
//
// Change History:
// - 2026-10-06 v0.1.0: Initial parser implementation
// - 2026-10-09 v0.2.0: Function definitions and calls, string atoms

package parser

import (
	"github.com/msto63/bhasha/foundation/bhasha/ast"
	"github.com/msto63/bhasha/foundation/bhasha/diag"
	"github.com/msto63/bhasha/foundation/bhasha/token"
	bhlog "github.com/msto63/bhasha/foundation/core/log"
)

// Parser implements recursive descent parsing over one token stream. It is
// not safe for concurrent use; create one per source.
type Parser struct {
	tokens  []token.Token
	index   int
	current token.Token

	logger  *bhlog.Logger
	msgs    *diag.Messages
	tracing bool
}

// operator matches an operator token kind or a keyword
type operator struct {
	kind    token.Kind
	keyword token.Keyword
}

func (o operator) matches(tok token.Token) bool {
	if o.keyword != token.NoKeyword {
		return tok.Matches(o.keyword)
	}
	return tok.Kind == o.kind
}

func kinds(ks ...token.Kind) []operator {
	ops := make([]operator, len(ks))
	for i, k := range ks {
		ops[i] = operator{kind: k}
	}
	return ops
}

var (
	logicalOps    = []operator{{keyword: token.And}, {keyword: token.Or}}
	comparisonOps = kinds(token.EE, token.NE, token.LT, token.GT, token.LTE, token.GTE)
	additiveOps   = kinds(token.PLUS, token.MINUS)
	productOps    = kinds(token.MUL, token.DIV)
	powerOps      = kinds(token.POWER)
)

// NewParser creates a parser over tokens, which must end with EOF
func NewParser(tokens []token.Token, opts Options) *Parser {
	opts = opts.withDefaults("bhasha-parser")
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != token.EOF {
		var end token.Position
		if len(tokens) > 0 {
			end = tokens[len(tokens)-1].End
		}
		tokens = append(tokens[:len(tokens):len(tokens)], token.New(token.EOF, nil, end))
	}

	p := &Parser{
		tokens:  tokens,
		index:   -1,
		logger:  opts.Logger,
		msgs:    opts.Messages,
		tracing: opts.Logger.IsLevelEnabled(bhlog.LevelTrace),
	}
	p.advance()
	return p
}

func (p *Parser) advance() {
	p.index++
	if p.index < len(p.tokens) {
		p.current = p.tokens[p.index]
	}
	if p.tracing {
		p.logger.Trace("current", bhlog.Fields{"token": p.current.String(), "index": p.index})
	}
}

// Parse runs the entry production and requires the whole stream to be
// consumed
func (p *Parser) Parse() *Result {
	timer := p.logger.StartTimer("parse").WithField("tokens", len(p.tokens))

	res := p.expr()
	if res.Err == nil && p.current.Kind != token.EOF {
		res.Failure(p.syntaxError("parse.expected_operator_or_end", nil))
	}

	if res.Err != nil {
		timer.WithField("error_code", res.Err.Kind.Code().String()).
			WithField("at", res.Err.Start.String()).
			StopWithError(res.Err)
	} else {
		timer.Stop()
	}
	return res
}

func (p *Parser) syntaxError(key string, args map[string]interface{}) *diag.Error {
	return p.msgs.New(diag.InvalidSyntax, p.current.Start, p.current.End, key, args)
}

// consume advances past the current token when it has kind, else records
// an error under key
func (p *Parser) consume(res *Result, kind token.Kind, key string) bool {
	if p.current.Kind != kind {
		res.Failure(p.syntaxError(key, nil))
		return false
	}
	res.RegisterAdvancement()
	p.advance()
	return true
}

// consumeKeyword advances past the current token when it is kw
func (p *Parser) consumeKeyword(res *Result, kw token.Keyword) bool {
	if !p.current.Matches(kw) {
		res.Failure(p.syntaxError("parse.expected_keyword", diag.KeywordArgs(kw)))
		return false
	}
	res.RegisterAdvancement()
	p.advance()
	return true
}

// binOp parses left (op right)* and folds the operands to the left
func (p *Parser) binOp(left func() *Result, ops []operator, right func() *Result) *Result {
	res := &Result{}

	node := res.Register(left())
	if res.Err != nil {
		return res
	}

	for matchesAny(ops, p.current) {
		op := p.current
		res.RegisterAdvancement()
		p.advance()

		rhs := res.Register(right())
		if res.Err != nil {
			return res
		}
		node = &ast.BinaryOp{Left: node, Op: op, Right: rhs}
	}

	return res.Success(node)
}

func matchesAny(ops []operator, tok token.Token) bool {
	for _, op := range ops {
		if op.matches(tok) {
			return true
		}
	}
	return false
}

func (p *Parser) expr() *Result {
	res := &Result{}

	if p.current.Matches(token.Var) {
		res.RegisterAdvancement()
		p.advance()

		name := p.current
		if !p.consume(res, token.IDENTIFIER, "parse.expected_identifier") {
			return res
		}
		if !p.consume(res, token.EQ, "parse.expected_equals") {
			return res
		}

		value := res.Register(p.expr())
		if res.Err != nil {
			return res
		}
		return res.Success(&ast.VariableAssign{Name: name, Value: value})
	}

	node := res.Register(p.binOp(p.compExpr, logicalOps, p.compExpr))
	if res.Err != nil {
		return res.Failure(p.syntaxError("parse.expected_expression", nil))
	}
	return res.Success(node)
}

func (p *Parser) compExpr() *Result {
	res := &Result{}

	if p.current.Matches(token.Not) {
		op := p.current
		res.RegisterAdvancement()
		p.advance()

		operand := res.Register(p.compExpr())
		if res.Err != nil {
			return res
		}
		return res.Success(&ast.UnaryOp{Op: op, Operand: operand})
	}

	node := res.Register(p.binOp(p.arithExpr, comparisonOps, p.arithExpr))
	if res.Err != nil {
		return res.Failure(p.syntaxError("parse.expected_comparison", nil))
	}
	return res.Success(node)
}

func (p *Parser) arithExpr() *Result {
	return p.binOp(p.term, additiveOps, p.term)
}

func (p *Parser) term() *Result {
	return p.binOp(p.power, productOps, p.power)
}

// power takes factor on the right, which reaches power again, so chains of
// '**' nest to the right
func (p *Parser) power() *Result {
	return p.binOp(p.call, powerOps, p.factor)
}

func (p *Parser) factor() *Result {
	res := &Result{}

	if p.current.Is(token.PLUS, token.MINUS) {
		op := p.current
		res.RegisterAdvancement()
		p.advance()

		operand := res.Register(p.factor())
		if res.Err != nil {
			return res
		}
		return res.Success(&ast.UnaryOp{Op: op, Operand: operand})
	}

	return p.power()
}

func (p *Parser) call() *Result {
	res := &Result{}

	callee := res.Register(p.atom())
	if res.Err != nil {
		return res
	}
	if p.current.Kind != token.LPAREN {
		return res.Success(callee)
	}

	res.RegisterAdvancement()
	p.advance()

	var args []ast.Node
	if p.current.Kind == token.RPAREN {
		res.RegisterAdvancement()
		p.advance()
		return res.Success(&ast.Call{Callee: callee})
	}

	first := p.expr()
	if first.Err != nil && first.AdvanceCount == 0 {
		first.Err = p.syntaxError("parse.expected_argument", nil)
	}
	args = append(args, res.Register(first))
	if res.Err != nil {
		return res
	}

	for p.current.Kind == token.COMMA {
		res.RegisterAdvancement()
		p.advance()

		args = append(args, res.Register(p.expr()))
		if res.Err != nil {
			return res
		}
	}

	if !p.consume(res, token.RPAREN, "parse.expected_comma_or_rparen") {
		return res
	}
	return res.Success(&ast.Call{Callee: callee, Args: args})
}

func (p *Parser) atom() *Result {
	res := &Result{}
	tok := p.current

	switch {
	case tok.Is(token.INT, token.FLOAT):
		res.RegisterAdvancement()
		p.advance()
		return res.Success(&ast.NumberLiteral{Tok: tok})

	case tok.Kind == token.STRING:
		res.RegisterAdvancement()
		p.advance()
		return res.Success(&ast.StringLiteral{Tok: tok})

	case tok.Kind == token.IDENTIFIER:
		res.RegisterAdvancement()
		p.advance()
		return res.Success(&ast.VariableAccess{Name: tok})

	case tok.Kind == token.LPAREN:
		res.RegisterAdvancement()
		p.advance()

		inner := res.Register(p.expr())
		if res.Err != nil {
			return res
		}
		if !p.consume(res, token.RPAREN, "parse.expected_rparen") {
			return res
		}
		return res.Success(inner)

	case tok.Matches(token.If):
		return p.ifExpr()
	case tok.Matches(token.For):
		return p.forExpr()
	case tok.Matches(token.While):
		return p.whileExpr()
	case tok.Matches(token.Fun):
		return p.funcDef()
	}

	return res.Failure(p.syntaxError("parse.expected_atom", nil))
}

func (p *Parser) ifExpr() *Result {
	res := &Result{}
	if !p.consumeKeyword(res, token.If) {
		return res
	}

	node := &ast.Conditional{}
	for {
		cond := res.Register(p.expr())
		if res.Err != nil {
			return res
		}
		if !p.consumeKeyword(res, token.Then) {
			return res
		}
		body := res.Register(p.expr())
		if res.Err != nil {
			return res
		}
		node.Cases = append(node.Cases, ast.Case{Cond: cond, Body: body})

		if !p.current.Matches(token.Elif) {
			break
		}
		res.RegisterAdvancement()
		p.advance()
	}

	if p.current.Matches(token.Else) {
		res.RegisterAdvancement()
		p.advance()

		elseNode := res.Register(p.expr())
		if res.Err != nil {
			return res
		}
		node.Else = elseNode
	}

	return res.Success(node)
}

func (p *Parser) forExpr() *Result {
	res := &Result{}
	if !p.consumeKeyword(res, token.For) {
		return res
	}

	name := p.current
	if !p.consume(res, token.IDENTIFIER, "parse.expected_identifier") {
		return res
	}
	if !p.consume(res, token.EQ, "parse.expected_equals") {
		return res
	}

	node := &ast.CountedLoop{Var: name}
	node.From = res.Register(p.expr())
	if res.Err != nil {
		return res
	}
	if !p.consumeKeyword(res, token.To) {
		return res
	}
	node.To = res.Register(p.expr())
	if res.Err != nil {
		return res
	}

	if p.current.Matches(token.Step) {
		res.RegisterAdvancement()
		p.advance()

		step := res.Register(p.expr())
		if res.Err != nil {
			return res
		}
		node.Step = step
	}

	if !p.consumeKeyword(res, token.Then) {
		return res
	}
	node.Body = res.Register(p.expr())
	if res.Err != nil {
		return res
	}

	return res.Success(node)
}

func (p *Parser) whileExpr() *Result {
	res := &Result{}
	if !p.consumeKeyword(res, token.While) {
		return res
	}

	cond := res.Register(p.expr())
	if res.Err != nil {
		return res
	}
	if !p.consumeKeyword(res, token.Then) {
		return res
	}
	body := res.Register(p.expr())
	if res.Err != nil {
		return res
	}

	return res.Success(&ast.ConditionalLoop{Cond: cond, Body: body})
}

func (p *Parser) funcDef() *Result {
	res := &Result{}
	if !p.consumeKeyword(res, token.Fun) {
		return res
	}

	node := &ast.FunctionDefinition{}
	if p.current.Kind == token.IDENTIFIER {
		name := p.current
		node.Name = &name
		res.RegisterAdvancement()
		p.advance()

		if !p.consume(res, token.LPAREN, "parse.expected_lparen") {
			return res
		}
	} else if !p.consume(res, token.LPAREN, "parse.expected_ident_or_lparen") {
		return res
	}

	if p.current.Kind == token.IDENTIFIER {
		node.Params = append(node.Params, p.current)
		res.RegisterAdvancement()
		p.advance()

		for p.current.Kind == token.COMMA {
			res.RegisterAdvancement()
			p.advance()

			param := p.current
			if !p.consume(res, token.IDENTIFIER, "parse.expected_identifier") {
				return res
			}
			node.Params = append(node.Params, param)
		}

		if !p.consume(res, token.RPAREN, "parse.expected_comma_or_rparen") {
			return res
		}
	} else if !p.consume(res, token.RPAREN, "parse.expected_ident_or_rparen") {
		return res
	}

	if !p.consume(res, token.ARROW, "parse.expected_arrow") {
		return res
	}

	node.Body = res.Register(p.expr())
	if res.Err != nil {
		return res
	}
	return res.Success(node)
}

// Parse tokenizes and parses src. On failure the error is a *diag.Error
// and the node is nil.
func Parse(src *token.Source, opts Options) (ast.Node, error) {
	tokens, err := Tokenize(src, opts)
	if err != nil {
		return nil, err
	}

	res := NewParser(tokens, opts).Parse()
	if res.Err != nil {
		return nil, res.Err
	}
	return res.Node, nil
}
