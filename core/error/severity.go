// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors and diagnostics. The
//              configuration parser only distinguishes warnings from errors;
//              the runtime additionally knows critical conditions that make
//              the logging system unusable.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-12
// Modified: 2025-08-12
//
// Change History:
// - 2025-08-12 v0.1.0: Initial implementation with severity levels

package error

// Severity represents the severity level of an error or diagnostic
type Severity int

const (
	// SeverityWarning indicates a condition that does not invalidate the
	// operation; processing continues with a fallback or default
	SeverityWarning Severity = iota

	// SeverityError indicates a condition fatal to the operation in
	// progress but not to the system as a whole
	SeverityError

	// SeverityCritical indicates a condition that makes the logging
	// system unusable, e.g. no output resource can be opened
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Marker returns the single-character marker used when rendering
// diagnostics, "W" for warnings and "E" otherwise
func (s Severity) Marker() string {
	if s == SeverityWarning {
		return "W"
	}
	return "E"
}

// IsFatal reports whether this severity invalidates the operation
func (s Severity) IsFatal() bool {
	return s >= SeverityError
}

// GetSeverityFromCode derives the severity level from an error code
func GetSeverityFromCode(code Code) Severity {
	if code.IsWarning() {
		return SeverityWarning
	}
	switch code {
	case CodeResourceOpen, CodeInternal:
		return SeverityCritical
	default:
		return SeverityError
	}
}
