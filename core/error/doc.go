// Package error provides structured error handling for the coalog library.
//
// Package: error
// Title: coalog Error Handling Framework
// Description: This package implements a structured error handling system with
//              stable error codes, severity levels and ordered message
//              arguments. Codes and arguments are language-independent; the
//              i18n package renders them into localized text through message
//              catalogs.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-12
// Modified: 2025-08-12
//
// Change History:
// - 2025-08-12 v0.1.0: Initial implementation with codes and severities
//
// Features:
// - Contextual error wrapping compatible with errors.Is/As
// - Stable E-*/W-* error codes shared with the configuration parser
// - Severity levels derived from the code family
// - Ordered message arguments for catalog-based rendering
//
// Usage:
//   import "github.com/msto63/coalog/core/error"
//
//   // Create a new error with code and arguments
//   err := error.New("configuration file not readable").
//     WithCode(error.CodeConfigRead).
//     WithArgs("/etc/coalog.toml")
//
//   // Wrap an existing error with context
//   wrapped := error.Wrap(err, "initialization failed").
//     WithOperation("config.Load")
//
//   // Check error codes
//   if error.HasCode(err, error.CodeConfigRead) {
//     // fall back to default configuration
//   }
package error
