// Package error provides structured error handling for the Bhasha toolchain.
//
// Package: error
// Title: Bhasha Error Handling
// Description: This package implements structured errors with codes,
// severities, details and cause wrapping. Language diagnostics
// convert into these errors for logging; failures of the tool
// itself (configuration, files, history storage, watching) are
// created here directly.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-03
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-03 v0.2.0: Language codes and exit codes
//
// Usage:
//
//	import bherror "github.com/msto63/bhasha/foundation/core/error"
//
//	err := bherror.Wrap(ioErr, "cannot read source").
//		WithCode(bherror.CodeIO).
//		WithDetail("path", path)
//
//	if bherror.HasCode(err, bherror.CodeIO) {
//		os.Exit(bherror.GetCode(err).ExitCode())
//	}
package error
