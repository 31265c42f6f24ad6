// File: result.go
// Title: Parse Result
// Description: The value every grammar production returns: a node or an
//              error, plus the number of tokens the production consumed. The
//              count decides which error survives when an alternative fails.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-06
// Modified: 2026-10-06
//
// Change History:
// - 2026-10-06 v0.1.0: Initial implementation

package parser

import (
	"github.com/msto63/bhasha/foundation/bhasha/ast"
	"github.com/msto63/bhasha/foundation/bhasha/diag"
)

// Result is the outcome of a production
type Result struct {
	Node         ast.Node
	Err          *diag.Error
	AdvanceCount int
}

// RegisterAdvancement records one consumed token
func (r *Result) RegisterAdvancement() {
	r.AdvanceCount++
}

// Register folds a sub-result into r and returns its node
func (r *Result) Register(inner *Result) ast.Node {
	r.AdvanceCount += inner.AdvanceCount
	if inner.Err != nil {
		r.Err = inner.Err
	}
	return inner.Node
}

// Success records node
func (r *Result) Success(node ast.Node) *Result {
	r.Node = node
	return r
}

// Failure records err unless an error from a production that already
// consumed tokens is present: the deepest partial parse wins.
func (r *Result) Failure(err *diag.Error) *Result {
	if r.Err == nil || r.AdvanceCount == 0 {
		r.Err = err
	}
	r.Node = nil
	return r
}

// OK reports whether the production succeeded
func (r *Result) OK() bool {
	return r.Err == nil
}
