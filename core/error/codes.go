// File: codes.go
// Title: Error Code Definitions
// Description: Defines the stable, language-independent error codes used across
//              the coalog library. Codes follow the E-<Area>-<Condition> and
//              W-<Area>-<Condition> scheme so that severity and area can be
//              derived from the code itself and message catalogs can map every
//              code to a localized template.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-12
// Modified: 2025-08-12
//
// Change History:
// - 2025-08-12 v0.1.0: Initial implementation with runtime error codes

package error

import "strings"

// Code represents a structured, stable error code
type Code string

// Runtime error codes for the coalog library. The configuration parser
// defines its own E-Cfg-Toml-* diagnostic codes of this type in package
// config/toml; the codes below cover everything outside the parser.
const (
	// Generic codes
	CodeUnknown  Code = "E-Unknown"
	CodeInternal Code = "E-Internal"

	// Configuration loading
	CodeConfigRead   Code = "E-Cfg-FileNotRead"
	CodeConfigParse  Code = "E-Cfg-Toml-ParseFailed"
	CodeConfigIssues Code = "E-Cfg-FoundIssues"

	// Output resources
	CodeResourceOpen   Code = "E-Res-OpenFailed"
	CodeResourceWrite  Code = "E-Res-WriteFailed"
	CodeResourceClosed Code = "E-Res-Closed"

	// File rollover
	CodeRolloverFailed Code = "E-Rovr-Failed"

	// Message catalogs
	CodeCatalogRead   Code = "E-Msg-CatalogNotRead"
	CodeCatalogLocale Code = "E-Msg-UnknownLocale"
	CodeCatalogEntry  Code = "E-Msg-UnknownCode"

	// Validation
	CodeValidationFailed Code = "E-Val-Failed"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsWarning reports whether the code belongs to the warning family
func (c Code) IsWarning() bool {
	return strings.HasPrefix(string(c), "W-")
}

// Area returns the subsystem area encoded in the code, e.g. "Cfg" for
// "E-Cfg-Toml-ParseFailed", or "" for a malformed code
func (c Code) Area() string {
	parts := strings.SplitN(string(c), "-", 3)
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}
