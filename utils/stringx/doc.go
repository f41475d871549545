// File: doc.go
// Title: String Utilities Package Documentation
// Description: Documents the stringx helper package.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-12
// Modified: 2025-08-12
//
// Change History:
// - 2025-08-12 v0.1.0: Initial implementation

// Package stringx provides the string helpers shared across the coalog
// library: blank checks, defaults, Unicode-safe truncation and padding,
// and line splitting. It deliberately stays small; anything a single
// package needs lives in that package.
package stringx
