// Package mapx implements the generic map helpers of the bhasha toolchain.
//
// Package: mapx
// Title: Map Utilities
// Description: Deterministic iteration over maps for printed output
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-04
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive map utilities
// - 2026-10-04 v0.2.0: Reduced to the helpers the toolchain uses
package mapx
