// File: doc.go
// Title: Package Documentation for toml
// Description: Documents the configuration scanner and parser package.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-14
// Modified: 2025-08-14
//
// Change History:
// - 2025-08-14 v0.1.0: Initial implementation

// Package toml scans and parses TOML-style configuration text into a typed
// document tree. It is the foundation of the coalog configuration layer and
// is written for diagnostics first: instead of stopping at the first flaw it
// reports every problem it can find, each with a stable symbolic code and an
// exact line and column, and still returns the part of the document it could
// make sense of.
//
// Features:
//   - Hand-written scanner with precise 1-based line/column positions
//   - Basic, literal, and multi-line string flavors with escape decoding
//   - Integers in four radixes, floats, booleans, dates, times, datetimes
//   - Tables, arrays of tables, inline tables, and mixed-kind arrays
//   - Best-effort parsing with per-statement resynchronization
//   - Language-neutral diagnostics rendered through external catalogs
//
// Usage:
//
//	doc, diags := toml.Parse(input)
//	for _, d := range diags {
//	    fmt.Println(d.String())
//	}
//	if !toml.HasErrors(diags) {
//	    host, _ := doc.Get("server", "host")
//	}
//
// Diagnostics carry no prose. Each has a code such as
// E-Cfg-Toml-InvalidChar plus ordered string arguments holding the offending
// text; the i18n package turns them into human-readable messages per locale.
package toml
