// File: nodes.go
// Title: Bhasha AST Node Definitions
// Description: Defines the closed set of syntax tree nodes produced by the
//              parser. Every construct of the language is an expression, so
//              every node is a Node. Nodes own their children; tokens are
//              embedded by value and carry the source span.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-06
// Modified: 2026-10-06
//
// Change History:
// - 2026-10-06 v0.1.0: Initial node definitions

package ast

import (
	"github.com/msto63/bhasha/foundation/bhasha/token"
)

// Node is implemented by the node types of this package only
type Node interface {
	// Start returns the position of the first rune of the node
	Start() token.Position

	// End returns the position just after the node
	End() token.Position

	// Accept implements the visitor pattern
	Accept(visitor Visitor) interface{}

	node()
}

// NumberLiteral is an INT or FLOAT literal
type NumberLiteral struct {
	Tok token.Token
}

// IsInt reports whether the literal is an integer
func (n *NumberLiteral) IsInt() bool { return n.Tok.Kind == token.INT }

// Int returns the integer value
func (n *NumberLiteral) Int() int64 { return n.Tok.Int() }

// Float returns the value as a float, converting integers
func (n *NumberLiteral) Float() float64 { return n.Tok.Float() }

// StringLiteral is a quoted string
type StringLiteral struct {
	Tok token.Token
}

// Value returns the unescaped string
func (n *StringLiteral) Value() string { return n.Tok.Text() }

// VariableAccess reads a variable
type VariableAccess struct {
	Name token.Token
}

// VariableAssign declares a variable: var name = value
type VariableAssign struct {
	Name  token.Token
	Value Node
}

// BinaryOp applies an infix operator. Op is an operator token or the AND
// and OR keywords.
type BinaryOp struct {
	Left  Node
	Op    token.Token
	Right Node
}

// UnaryOp applies a prefix + or - or the NOT keyword
type UnaryOp struct {
	Op      token.Token
	Operand Node
}

// Case is one condition and body of a Conditional
type Case struct {
	Cond Node
	Body Node
}

// Conditional is IF ... THEN ... (ELIF ... THEN ...)* (ELSE ...)?. Cases has
// at least one element; Else is nil when absent.
type Conditional struct {
	Cases []Case
	Else  Node
}

// CountedLoop is FOR var = from TO to (STEP step)? THEN body. Step is nil
// when absent.
type CountedLoop struct {
	Var  token.Token
	From Node
	To   Node
	Step Node
	Body Node
}

// ConditionalLoop is WHILE cond THEN body
type ConditionalLoop struct {
	Cond Node
	Body Node
}

// FunctionDefinition is FUN name? (params) -> body. Name is nil for
// anonymous functions.
type FunctionDefinition struct {
	Name   *token.Token
	Params []token.Token
	Body   Node
}

// IsAnonymous reports whether the function has no name
func (n *FunctionDefinition) IsAnonymous() bool { return n.Name == nil }

// Call invokes Callee with Args
type Call struct {
	Callee Node
	Args   []Node
}

func (n *NumberLiteral) Start() token.Position   { return n.Tok.Start }
func (n *StringLiteral) Start() token.Position   { return n.Tok.Start }
func (n *VariableAccess) Start() token.Position  { return n.Name.Start }
func (n *VariableAssign) Start() token.Position  { return n.Name.Start }
func (n *BinaryOp) Start() token.Position        { return n.Left.Start() }
func (n *UnaryOp) Start() token.Position         { return n.Op.Start }
func (n *Conditional) Start() token.Position     { return n.Cases[0].Cond.Start() }
func (n *CountedLoop) Start() token.Position     { return n.Var.Start }
func (n *ConditionalLoop) Start() token.Position { return n.Cond.Start() }
func (n *Call) Start() token.Position            { return n.Callee.Start() }
func (n *FunctionDefinition) Start() token.Position {
	switch {
	case n.Name != nil:
		return n.Name.Start
	case len(n.Params) > 0:
		return n.Params[0].Start
	default:
		return n.Body.Start()
	}
}

func (n *NumberLiteral) End() token.Position      { return n.Tok.End }
func (n *StringLiteral) End() token.Position      { return n.Tok.End }
func (n *VariableAccess) End() token.Position     { return n.Name.End }
func (n *VariableAssign) End() token.Position     { return n.Value.End() }
func (n *BinaryOp) End() token.Position           { return n.Right.End() }
func (n *UnaryOp) End() token.Position            { return n.Operand.End() }
func (n *CountedLoop) End() token.Position        { return n.Body.End() }
func (n *ConditionalLoop) End() token.Position    { return n.Body.End() }
func (n *FunctionDefinition) End() token.Position { return n.Body.End() }
func (n *Conditional) End() token.Position {
	if n.Else != nil {
		return n.Else.End()
	}
	return n.Cases[len(n.Cases)-1].Body.End()
}
func (n *Call) End() token.Position {
	if len(n.Args) > 0 {
		return n.Args[len(n.Args)-1].End()
	}
	return n.Callee.End()
}

func (*NumberLiteral) node()      {}
func (*StringLiteral) node()      {}
func (*VariableAccess) node()     {}
func (*VariableAssign) node()     {}
func (*BinaryOp) node()           {}
func (*UnaryOp) node()            {}
func (*Conditional) node()        {}
func (*CountedLoop) node()        {}
func (*ConditionalLoop) node()    {}
func (*FunctionDefinition) node() {}
func (*Call) node()               {}

// TypeName returns the variant name of n
func TypeName(n Node) string {
	switch n.(type) {
	case *NumberLiteral:
		return "NumberLiteral"
	case *StringLiteral:
		return "StringLiteral"
	case *VariableAccess:
		return "VariableAccess"
	case *VariableAssign:
		return "VariableAssign"
	case *BinaryOp:
		return "BinaryOp"
	case *UnaryOp:
		return "UnaryOp"
	case *Conditional:
		return "Conditional"
	case *CountedLoop:
		return "CountedLoop"
	case *ConditionalLoop:
		return "ConditionalLoop"
	case *FunctionDefinition:
		return "FunctionDefinition"
	case *Call:
		return "Call"
	default:
		return "<nil>"
	}
}

// Children returns the direct child nodes of n in source order
func Children(n Node) []Node {
	switch n := n.(type) {
	case *VariableAssign:
		return []Node{n.Value}
	case *BinaryOp:
		return []Node{n.Left, n.Right}
	case *UnaryOp:
		return []Node{n.Operand}
	case *Conditional:
		out := make([]Node, 0, 2*len(n.Cases)+1)
		for _, c := range n.Cases {
			out = append(out, c.Cond, c.Body)
		}
		if n.Else != nil {
			out = append(out, n.Else)
		}
		return out
	case *CountedLoop:
		out := []Node{n.From, n.To}
		if n.Step != nil {
			out = append(out, n.Step)
		}
		return append(out, n.Body)
	case *ConditionalLoop:
		return []Node{n.Cond, n.Body}
	case *FunctionDefinition:
		return []Node{n.Body}
	case *Call:
		return append([]Node{n.Callee}, n.Args...)
	default:
		return nil
	}
}

// Walk visits n and its descendants depth first. Children of a node are
// skipped when fn returns false for it.
func Walk(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, child := range Children(n) {
		Walk(child, fn)
	}
}

// OpName returns the canonical spelling of an operator token: the symbol
// for operators and the Latin spelling for keywords
func OpName(tok token.Token) string {
	if tok.Kind == token.KEYWORD {
		return tok.Keyword.Latin()
	}
	return tok.Kind.Symbol()
}
