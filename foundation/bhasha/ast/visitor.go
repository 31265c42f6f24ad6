// File: visitor.go
// Title: Bhasha AST Visitor Pattern Implementation
// Description: Implements the visitor pattern for the closed node set and the
//              visitors the toolchain ships: the s-expression printer, the
//              indented tree printer and the name collector.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-06
// Modified: 2026-10-07
//
// Change History:
// - 2026-10-06 v0.1.0: Initial visitor pattern implementation
// - 2026-10-07 v0.1.1: Tree printer and collector

package ast

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Visitor has one method per node variant
type Visitor interface {
	VisitNumber(n *NumberLiteral) interface{}
	VisitString(n *StringLiteral) interface{}
	VisitVariableAccess(n *VariableAccess) interface{}
	VisitVariableAssign(n *VariableAssign) interface{}
	VisitBinaryOp(n *BinaryOp) interface{}
	VisitUnaryOp(n *UnaryOp) interface{}
	VisitConditional(n *Conditional) interface{}
	VisitCountedLoop(n *CountedLoop) interface{}
	VisitConditionalLoop(n *ConditionalLoop) interface{}
	VisitFunctionDefinition(n *FunctionDefinition) interface{}
	VisitCall(n *Call) interface{}
}

func (n *NumberLiteral) Accept(v Visitor) interface{}      { return v.VisitNumber(n) }
func (n *StringLiteral) Accept(v Visitor) interface{}      { return v.VisitString(n) }
func (n *VariableAccess) Accept(v Visitor) interface{}     { return v.VisitVariableAccess(n) }
func (n *VariableAssign) Accept(v Visitor) interface{}     { return v.VisitVariableAssign(n) }
func (n *BinaryOp) Accept(v Visitor) interface{}           { return v.VisitBinaryOp(n) }
func (n *UnaryOp) Accept(v Visitor) interface{}            { return v.VisitUnaryOp(n) }
func (n *Conditional) Accept(v Visitor) interface{}        { return v.VisitConditional(n) }
func (n *CountedLoop) Accept(v Visitor) interface{}        { return v.VisitCountedLoop(n) }
func (n *ConditionalLoop) Accept(v Visitor) interface{}    { return v.VisitConditionalLoop(n) }
func (n *FunctionDefinition) Accept(v Visitor) interface{} { return v.VisitFunctionDefinition(n) }
func (n *Call) Accept(v Visitor) interface{}               { return v.VisitCall(n) }

// BaseVisitor returns nil for every node and does not descend. Embed it in
// concrete visitors to override only the needed methods; use Walk for
// traversal.
type BaseVisitor struct{}

func (BaseVisitor) VisitNumber(*NumberLiteral) interface{}                  { return nil }
func (BaseVisitor) VisitString(*StringLiteral) interface{}                  { return nil }
func (BaseVisitor) VisitVariableAccess(*VariableAccess) interface{}         { return nil }
func (BaseVisitor) VisitVariableAssign(*VariableAssign) interface{}         { return nil }
func (BaseVisitor) VisitBinaryOp(*BinaryOp) interface{}                     { return nil }
func (BaseVisitor) VisitUnaryOp(*UnaryOp) interface{}                       { return nil }
func (BaseVisitor) VisitConditional(*Conditional) interface{}               { return nil }
func (BaseVisitor) VisitCountedLoop(*CountedLoop) interface{}               { return nil }
func (BaseVisitor) VisitConditionalLoop(*ConditionalLoop) interface{}       { return nil }
func (BaseVisitor) VisitFunctionDefinition(*FunctionDefinition) interface{} { return nil }
func (BaseVisitor) VisitCall(*Call) interface{}                             { return nil }

// StringVisitor renders nodes as s-expressions. Keywords print in their
// Latin spelling, so trees that differ only in keyword script print alike.
type StringVisitor struct{}

func (sv StringVisitor) str(n Node) string {
	if n == nil {
		return "<nil>"
	}
	return n.Accept(sv).(string)
}

func (sv StringVisitor) list(parts ...string) string {
	return "(" + strings.Join(parts, " ") + ")"
}

func (sv StringVisitor) VisitNumber(n *NumberLiteral) interface{} {
	if n.IsInt() {
		return strconv.FormatInt(n.Int(), 10)
	}
	s := strconv.FormatFloat(n.Float(), 'f', -1, 64)
	if !strings.ContainsAny(s, ".eEIN") {
		s += ".0"
	}
	return s
}

func (sv StringVisitor) VisitString(n *StringLiteral) interface{} {
	return strconv.Quote(n.Value())
}

func (sv StringVisitor) VisitVariableAccess(n *VariableAccess) interface{} {
	return n.Name.Text()
}

func (sv StringVisitor) VisitVariableAssign(n *VariableAssign) interface{} {
	return sv.list("var", n.Name.Text(), sv.str(n.Value))
}

func (sv StringVisitor) VisitBinaryOp(n *BinaryOp) interface{} {
	return sv.list(OpName(n.Op), sv.str(n.Left), sv.str(n.Right))
}

func (sv StringVisitor) VisitUnaryOp(n *UnaryOp) interface{} {
	return sv.list(OpName(n.Op), sv.str(n.Operand))
}

func (sv StringVisitor) VisitConditional(n *Conditional) interface{} {
	parts := []string{"IF"}
	for _, c := range n.Cases {
		parts = append(parts, sv.list(sv.str(c.Cond), sv.str(c.Body)))
	}
	if n.Else != nil {
		parts = append(parts, sv.list("ELSE", sv.str(n.Else)))
	}
	return sv.list(parts...)
}

func (sv StringVisitor) VisitCountedLoop(n *CountedLoop) interface{} {
	parts := []string{"FOR", n.Var.Text(), sv.str(n.From), sv.str(n.To)}
	if n.Step != nil {
		parts = append(parts, sv.list("STEP", sv.str(n.Step)))
	}
	return sv.list(append(parts, sv.str(n.Body))...)
}

func (sv StringVisitor) VisitConditionalLoop(n *ConditionalLoop) interface{} {
	return sv.list("WHILE", sv.str(n.Cond), sv.str(n.Body))
}

func (sv StringVisitor) VisitFunctionDefinition(n *FunctionDefinition) interface{} {
	parts := []string{"FUN"}
	if n.Name != nil {
		parts = append(parts, n.Name.Text())
	}
	params := make([]string, len(n.Params))
	for i, p := range n.Params {
		params[i] = p.Text()
	}
	return sv.list(append(parts, sv.list(params...), sv.str(n.Body))...)
}

func (sv StringVisitor) VisitCall(n *Call) interface{} {
	parts := []string{"call", sv.str(n.Callee)}
	for _, arg := range n.Args {
		parts = append(parts, sv.str(arg))
	}
	return sv.list(parts...)
}

// Sprint renders n as an s-expression, e.g. (+ 1 (* 2 3))
func Sprint(n Node) string {
	return StringVisitor{}.str(n)
}

// TreeString renders n as an indented tree, one node per line
func TreeString(n Node) string {
	var b strings.Builder
	writeTree(&b, n, 0)
	return b.String()
}

func writeTree(b *strings.Builder, n Node, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(TypeName(n))
	if label := treeLabel(n); label != "" {
		b.WriteString(" ")
		b.WriteString(label)
	}
	b.WriteString(fmt.Sprintf(" [%d:%d]\n", n.Start().Line+1, n.Start().Column+1))

	for _, child := range Children(n) {
		writeTree(b, child, depth+1)
	}
}

func treeLabel(n Node) string {
	switch n := n.(type) {
	case *NumberLiteral, *StringLiteral:
		return Sprint(n)
	case *VariableAccess:
		return n.Name.Text()
	case *VariableAssign:
		return n.Name.Text()
	case *BinaryOp:
		return OpName(n.Op)
	case *UnaryOp:
		return OpName(n.Op)
	case *Conditional:
		if n.Else != nil {
			return fmt.Sprintf("cases=%d else", len(n.Cases))
		}
		return fmt.Sprintf("cases=%d", len(n.Cases))
	case *CountedLoop:
		if n.Step != nil {
			return n.Var.Text() + " step"
		}
		return n.Var.Text()
	case *FunctionDefinition:
		params := make([]string, len(n.Params))
		for i, p := range n.Params {
			params[i] = p.Text()
		}
		name := "<anonymous>"
		if n.Name != nil {
			name = n.Name.Text()
		}
		return name + "(" + strings.Join(params, ", ") + ")"
	case *Call:
		return fmt.Sprintf("args=%d", len(n.Args))
	default:
		return ""
	}
}

// CollectorVisitor gathers the names a tree declares and uses
type CollectorVisitor struct {
	BaseVisitor
	Assigned  []string
	Read      []string
	Functions []string
	Params    []string
}

func (cv *CollectorVisitor) VisitVariableAccess(n *VariableAccess) interface{} {
	cv.Read = appendUnique(cv.Read, n.Name.Text())
	return nil
}

func (cv *CollectorVisitor) VisitVariableAssign(n *VariableAssign) interface{} {
	cv.Assigned = appendUnique(cv.Assigned, n.Name.Text())
	return nil
}

func (cv *CollectorVisitor) VisitCountedLoop(n *CountedLoop) interface{} {
	cv.Assigned = appendUnique(cv.Assigned, n.Var.Text())
	return nil
}

func (cv *CollectorVisitor) VisitFunctionDefinition(n *FunctionDefinition) interface{} {
	if n.Name != nil {
		cv.Functions = appendUnique(cv.Functions, n.Name.Text())
	}
	for _, p := range n.Params {
		cv.Params = appendUnique(cv.Params, p.Text())
	}
	return nil
}

// CollectNames walks n and returns the collected names, each list sorted
func CollectNames(n Node) *CollectorVisitor {
	cv := &CollectorVisitor{}
	Walk(n, func(child Node) bool {
		child.Accept(cv)
		return true
	})
	sort.Strings(cv.Assigned)
	sort.Strings(cv.Read)
	sort.Strings(cv.Functions)
	sort.Strings(cv.Params)
	return cv
}

func appendUnique(list []string, s string) []string {
	for _, existing := range list {
		if existing == s {
			return list
		}
	}
	return append(list, s)
}
