// Package stringx provides string helpers shared by the Bhasha packages.
//
// Package: stringx
// Title: Extended String Operations
// Description: Blank checks, defaults and display-width aware padding and
// truncation. All widths are terminal cells as computed by
// go-runewidth, not bytes or runes.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-03
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core string utilities
// - 2025-01-26 v0.2.0: Enhanced documentation
// - 2026-10-03 v0.3.0: Reduced to display-width helpers
package stringx
