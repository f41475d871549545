// File: key.go
// Title: Key Representation
// Description: Defines the dotted key produced by the parser: an ordered
//              sequence of simple key segments together with the position of
//              the first segment.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-13
// Modified: 2025-08-13
//
// Change History:
// - 2025-08-13 v0.1.0: Initial implementation

package toml

import "strings"

// Key is a dotted key path; a single segment is the common case
type Key struct {
	Segments []string
	Pos      Position
}

// Prefix returns all segments except the last
func (k Key) Prefix() []string {
	if len(k.Segments) < 2 {
		return nil
	}
	return k.Segments[:len(k.Segments)-1]
}

// Last returns the final segment, the one being bound
func (k Key) Last() string {
	if len(k.Segments) == 0 {
		return ""
	}
	return k.Segments[len(k.Segments)-1]
}

// String renders the key in dotted form, quoting non-bare segments
func (k Key) String() string {
	parts := make([]string, len(k.Segments))
	for i, seg := range k.Segments {
		if isBareKey(seg) {
			parts[i] = seg
		} else {
			parts[i] = "\"" + seg + "\""
		}
	}
	return strings.Join(parts, ".")
}

// isBareKey reports whether a segment needs no quoting
func isBareKey(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !isBareKeyRune(r) {
			return false
		}
	}
	return true
}

// isBareKeyRune reports whether r may appear in a bare key
func isBareKeyRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == '-' || r == '_':
		return true
	default:
		return false
	}
}

// quoted wraps a text in single quotes for use as a diagnostic argument
func quoted(s string) string {
	return "'" + s + "'"
}
