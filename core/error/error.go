// File: error.go
// Title: Core Error Implementation
// Description: Implements the structured Error type used throughout coalog.
//              An Error carries a stable code, a severity, an ordered list of
//              message arguments for catalog-based rendering, and an optional
//              wrapped cause, while remaining compatible with Go's standard
//              error interface.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-12
// Modified: 2025-08-12
//
// Change History:
// - 2025-08-12 v0.1.0: Initial implementation with structured errors

package error

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// MaxChainDepth limits the depth of error wrapping
const MaxChainDepth = 15

// Error represents a structured error with code, severity and message arguments
type Error struct {
	message   string
	cause     error
	code      Code
	severity  Severity
	timestamp time.Time
	operation string

	// Ordered arguments substituted positionally into the localized
	// message template for the code
	args []string

	details map[string]interface{}
}

// New creates a new Error with the given message
func New(message string) *Error {
	return &Error{
		message:   message,
		code:      CodeUnknown,
		severity:  SeverityError,
		timestamp: time.Now(),
		details:   make(map[string]interface{}),
	}
}

// Newf creates a new Error with a formatted message
func Newf(format string, a ...interface{}) *Error {
	return New(fmt.Sprintf(format, a...))
}

// Wrap wraps an existing error with additional context
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	if depth := chainDepth(err); depth >= MaxChainDepth {
		root := RootCause(err)
		return &Error{
			message:   fmt.Sprintf("%s (chain truncated at depth %d): %s", message, MaxChainDepth, root.Error()),
			code:      CodeUnknown,
			severity:  SeverityError,
			timestamp: time.Now(),
			details:   map[string]interface{}{"truncated": true},
		}
	}

	// Preserve code, severity and args of a wrapped coalog error
	if cerr, ok := err.(*Error); ok {
		wrapped := &Error{
			message:   message,
			cause:     cerr,
			code:      cerr.code,
			severity:  cerr.severity,
			timestamp: time.Now(),
			args:      append([]string(nil), cerr.args...),
			details:   make(map[string]interface{}),
		}
		for k, v := range cerr.details {
			wrapped.details[k] = v
		}
		return wrapped
	}

	return &Error{
		message:   message,
		cause:     err,
		code:      CodeUnknown,
		severity:  SeverityError,
		timestamp: time.Now(),
		details:   make(map[string]interface{}),
	}
}

// chainDepth calculates the depth of an error chain
func chainDepth(err error) int {
	depth := 0
	current := err
	for current != nil && depth < MaxChainDepth*2 {
		depth++
		if cerr, ok := current.(*Error); ok {
			current = cerr.cause
		} else {
			break
		}
	}
	return depth
}

// RootCause returns the deepest error in a chain
func RootCause(err error) error {
	current := err
	last := err
	for current != nil {
		last = current
		if cerr, ok := current.(*Error); ok {
			current = cerr.cause
		} else {
			break
		}
	}
	return last
}

// Error implements the standard error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s", e.message, e.cause.Error())
	}
	return e.message
}

// Unwrap returns the underlying cause for error unwrapping
func (e *Error) Unwrap() error {
	return e.cause
}

// WithCode sets the error code and derives the severity from it unless a
// severity was set explicitly before
func (e *Error) WithCode(code Code) *Error {
	e.code = code
	e.severity = GetSeverityFromCode(code)
	return e
}

// WithSeverity sets the error severity
func (e *Error) WithSeverity(severity Severity) *Error {
	e.severity = severity
	return e
}

// WithOperation sets the operation that caused the error
func (e *Error) WithOperation(operation string) *Error {
	e.operation = operation
	return e
}

// WithArgs sets the ordered message arguments for catalog rendering
func (e *Error) WithArgs(args ...string) *Error {
	e.args = args
	return e
}

// WithDetail adds a key-value detail to the error
func (e *Error) WithDetail(key string, value interface{}) *Error {
	e.details[key] = value
	return e
}

// Code returns the error code
func (e *Error) Code() Code {
	return e.code
}

// Severity returns the error severity
func (e *Error) Severity() Severity {
	return e.severity
}

// Timestamp returns when the error occurred
func (e *Error) Timestamp() time.Time {
	return e.timestamp
}

// Operation returns the operation that caused the error
func (e *Error) Operation() string {
	return e.operation
}

// Args returns the ordered message arguments
func (e *Error) Args() []string {
	return append([]string(nil), e.args...)
}

// Details returns a copy of the error details
func (e *Error) Details() map[string]interface{} {
	result := make(map[string]interface{}, len(e.details))
	for k, v := range e.details {
		result[k] = v
	}
	return result
}

// String returns a detailed string representation of the error
func (e *Error) String() string {
	parts := []string{
		fmt.Sprintf("Error: %s", e.message),
		fmt.Sprintf("Code: %s", e.code),
		fmt.Sprintf("Severity: %s", e.severity),
	}
	if e.operation != "" {
		parts = append(parts, fmt.Sprintf("Operation: %s", e.operation))
	}
	if len(e.args) > 0 {
		parts = append(parts, fmt.Sprintf("Args: [%s]", strings.Join(e.args, ", ")))
	}
	if e.cause != nil {
		parts = append(parts, fmt.Sprintf("Cause: %s", e.cause.Error()))
	}
	return strings.Join(parts, "\n")
}

// MarshalJSON implements json.Marshaler for structured logging
func (e *Error) MarshalJSON() ([]byte, error) {
	data := map[string]interface{}{
		"message":   e.message,
		"code":      e.code,
		"severity":  e.severity.String(),
		"timestamp": e.timestamp.Format(time.RFC3339),
	}
	if e.operation != "" {
		data["operation"] = e.operation
	}
	if len(e.args) > 0 {
		data["args"] = e.args
	}
	if len(e.details) > 0 {
		data["details"] = e.details
	}
	if e.cause != nil {
		data["cause"] = e.cause.Error()
	}
	return json.Marshal(data)
}

// HasCode checks if an error has a specific code
func HasCode(err error, code Code) bool {
	if cerr, ok := err.(*Error); ok {
		return cerr.code == code
	}
	return false
}

// GetCode returns the error code from an error, or CodeUnknown for a
// plain Go error
func GetCode(err error) Code {
	if cerr, ok := err.(*Error); ok {
		return cerr.code
	}
	return CodeUnknown
}

// GetSeverity returns the severity from an error, or SeverityError for a
// plain Go error
func GetSeverity(err error) Severity {
	if cerr, ok := err.(*Error); ok {
		return cerr.severity
	}
	return SeverityError
}
