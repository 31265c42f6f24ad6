// Package slicex implements the generic slice helpers of the bhasha toolchain.
//
// Package: slicex
// Title: Slice Utilities
// Description: Map, filter and de-duplication helpers used by the commands
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-04
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive slice operations
// - 2026-10-04 v0.2.0: Reduced to the helpers the toolchain uses
//
// All functions return new slices and leave their input untouched. A nil
// input gives a nil result.
//
//	records := slicex.Map(tokens, newTokenRecord)
//	failed := slicex.Count(results, func(r checkResult) bool { return !r.OK })
package slicex
