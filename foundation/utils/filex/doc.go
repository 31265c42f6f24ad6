// Package filex implements the file system helpers of the bhasha toolchain.
//
// Package: filex
// Title: Source File Discovery
// Description: Resolves command-line paths into an ordered list of sources
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-04
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with general file utilities
// - 2026-10-04 v0.2.0: Reduced to existence checks and source discovery
//
// # Source Discovery
//
// SourceFiles expands command-line arguments:
//
//	files, err := filex.SourceFiles([]string{"main.bh", "examples/"}, ".bh")
//
// Files named explicitly are always returned, whatever their extension.
// Directories are walked recursively and contribute the files that carry the
// extension. Hidden directories (".git", ".cache") are skipped. The result is
// sorted and free of duplicates.
package filex
