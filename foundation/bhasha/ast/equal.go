// File: equal.go
// Title: Structural Tree Comparison
// Description: Compares trees by shape and payload. Positions are ignored and
//              keyword operators compare by canonical keyword, so a Latin and
//              a Devanagari spelling of the same program are equal.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-07
// Modified: 2026-10-07
//
// Change History:
// - 2026-10-07 v0.1.0: Initial implementation

package ast

import (
	"github.com/msto63/bhasha/foundation/bhasha/token"
)

// Equal reports whether a and b are structurally equal
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	switch x := a.(type) {
	case *NumberLiteral:
		y, ok := b.(*NumberLiteral)
		return ok && sameToken(x.Tok, y.Tok)
	case *StringLiteral:
		y, ok := b.(*StringLiteral)
		return ok && sameToken(x.Tok, y.Tok)
	case *VariableAccess:
		y, ok := b.(*VariableAccess)
		return ok && sameToken(x.Name, y.Name)
	case *VariableAssign:
		y, ok := b.(*VariableAssign)
		return ok && sameToken(x.Name, y.Name) && Equal(x.Value, y.Value)
	case *BinaryOp:
		y, ok := b.(*BinaryOp)
		return ok && sameToken(x.Op, y.Op) && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	case *UnaryOp:
		y, ok := b.(*UnaryOp)
		return ok && sameToken(x.Op, y.Op) && Equal(x.Operand, y.Operand)
	case *Conditional:
		y, ok := b.(*Conditional)
		if !ok || len(x.Cases) != len(y.Cases) {
			return false
		}
		for i := range x.Cases {
			if !Equal(x.Cases[i].Cond, y.Cases[i].Cond) || !Equal(x.Cases[i].Body, y.Cases[i].Body) {
				return false
			}
		}
		return Equal(x.Else, y.Else)
	case *CountedLoop:
		y, ok := b.(*CountedLoop)
		return ok && sameToken(x.Var, y.Var) &&
			Equal(x.From, y.From) && Equal(x.To, y.To) &&
			Equal(x.Step, y.Step) && Equal(x.Body, y.Body)
	case *ConditionalLoop:
		y, ok := b.(*ConditionalLoop)
		return ok && Equal(x.Cond, y.Cond) && Equal(x.Body, y.Body)
	case *FunctionDefinition:
		y, ok := b.(*FunctionDefinition)
		if !ok || (x.Name == nil) != (y.Name == nil) || len(x.Params) != len(y.Params) {
			return false
		}
		if x.Name != nil && !sameToken(*x.Name, *y.Name) {
			return false
		}
		for i := range x.Params {
			if !sameToken(x.Params[i], y.Params[i]) {
				return false
			}
		}
		return Equal(x.Body, y.Body)
	case *Call:
		y, ok := b.(*Call)
		if !ok || len(x.Args) != len(y.Args) || !Equal(x.Callee, y.Callee) {
			return false
		}
		for i := range x.Args {
			if !Equal(x.Args[i], y.Args[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func sameToken(a, b token.Token) bool {
	if a.Kind != b.Kind {
		return false
	}
	if a.Kind == token.KEYWORD {
		return a.Keyword == b.Keyword
	}
	return a.Value == b.Value
}
