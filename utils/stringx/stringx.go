// File: stringx.go
// Title: String Utility Functions
// Description: Implements the small set of string helpers used across the
//              coalog library: blank checks, padding, truncation and line
//              splitting. All functions are Unicode-safe and allocate only
//              when the input actually changes.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-12
// Modified: 2025-08-12
//
// Change History:
// - 2025-08-12 v0.1.0: Initial implementation

package stringx

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsEmpty checks if a string has zero length
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsBlank checks if a string is empty or contains only whitespace
func IsBlank(s string) bool {
	if len(s) == 0 {
		return true
	}
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsNotBlank checks if a string contains at least one non-whitespace rune
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// DefaultIfBlank returns the fallback when s is blank
func DefaultIfBlank(s, fallback string) string {
	if IsBlank(s) {
		return fallback
	}
	return s
}

// FirstNonBlank returns the first argument that is not blank
func FirstNonBlank(values ...string) string {
	for _, s := range values {
		if IsNotBlank(s) {
			return s
		}
	}
	return ""
}

// Truncate shortens a string to at most maxLen runes, appending the
// ellipsis when something was cut. The ellipsis counts toward the limit.
func Truncate(s string, maxLen int, ellipsis string) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	ellipsisLen := utf8.RuneCountInString(ellipsis)
	if ellipsisLen >= maxLen {
		return string([]rune(ellipsis)[:maxLen])
	}
	return string([]rune(s)[:maxLen-ellipsisLen]) + ellipsis
}

// PadLeft pads a string on the left to the given rune width
func PadLeft(s string, width int, pad rune) string {
	count := width - utf8.RuneCountInString(s)
	if count <= 0 {
		return s
	}
	return strings.Repeat(string(pad), count) + s
}

// PadRight pads a string on the right to the given rune width
func PadRight(s string, width int, pad rune) string {
	count := width - utf8.RuneCountInString(s)
	if count <= 0 {
		return s
	}
	return s + strings.Repeat(string(pad), count)
}

// ContainsIgnoreCase checks for a substring without case sensitivity
func ContainsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// SplitLines splits a string into lines, handling both LF and CRLF
func SplitLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.Split(s, "\n")
}
