// File: export.go
// Title: Generic Tree Export
// Description: Converts trees into nested maps for JSON and YAML output.
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

// ToMap converts n into nested maps and slices. Every node map has "type"
// and "span" ([start, end) rune offsets); the other keys depend on the
// variant.
func ToMap(n Node) map[string]interface{} {
	if n == nil {
		return nil
	}

	m := map[string]interface{}{
		"type": TypeName(n),
		"span": []int{n.Start().Index, n.End().Index},
	}

	switch n := n.(type) {
	case *NumberLiteral:
		if n.IsInt() {
			m["value"] = n.Int()
		} else {
			m["value"] = n.Float()
		}
	case *StringLiteral:
		m["value"] = n.Value()
	case *VariableAccess:
		m["name"] = n.Name.Text()
	case *VariableAssign:
		m["name"] = n.Name.Text()
		m["value"] = ToMap(n.Value)
	case *BinaryOp:
		m["op"] = OpName(n.Op)
		m["left"] = ToMap(n.Left)
		m["right"] = ToMap(n.Right)
	case *UnaryOp:
		m["op"] = OpName(n.Op)
		m["operand"] = ToMap(n.Operand)
	case *Conditional:
		cases := make([]interface{}, len(n.Cases))
		for i, c := range n.Cases {
			cases[i] = map[string]interface{}{
				"cond": ToMap(c.Cond),
				"body": ToMap(c.Body),
			}
		}
		m["cases"] = cases
		if n.Else != nil {
			m["else"] = ToMap(n.Else)
		}
	case *CountedLoop:
		m["var"] = n.Var.Text()
		m["from"] = ToMap(n.From)
		m["to"] = ToMap(n.To)
		if n.Step != nil {
			m["step"] = ToMap(n.Step)
		}
		m["body"] = ToMap(n.Body)
	case *ConditionalLoop:
		m["cond"] = ToMap(n.Cond)
		m["body"] = ToMap(n.Body)
	case *FunctionDefinition:
		if n.Name != nil {
			m["name"] = n.Name.Text()
		}
		m["params"] = names(n.Params)
		m["body"] = ToMap(n.Body)
	case *Call:
		m["callee"] = ToMap(n.Callee)
		args := make([]interface{}, len(n.Args))
		for i, arg := range n.Args {
			args[i] = ToMap(arg)
		}
		m["args"] = args
	}

	return m
}

func names(toks []token.Token) []string {
	out := make([]string, len(toks))
	for i, t := range toks {
		out[i] = t.Text()
	}
	return out
}
