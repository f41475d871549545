// File: format.go
// Title: Entry Formatters
// Description: Renders log entries to bytes. The pattern formatter resolves
//              $-prefixed variables in a user-defined format string; the
//              JSON formatter emits one JSON object per entry.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-18
// Modified: 2025-08-18
//
// Change History:
// - 2025-08-18 v0.1.0: Initial implementation

package log

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Formatter renders an entry into its wire representation. The returned
// bytes do not include a trailing newline; sinks append one.
type Formatter interface {
	Format(e *Entry) ([]byte, error)
}

// DefaultPattern is the pattern used when a format specifies none.
const DefaultPattern = "$TimeStamp [$Level] $Message"

// DefaultTimeFormat is the timestamp layout used when a format
// specifies none.
const DefaultTimeFormat = "2006-01-02 15:04:05.000"

// FormatVariables lists every variable a pattern may reference.
var FormatVariables = []string{
	"$TimeStamp",
	"$Date",
	"$Time",
	"$Level",
	"$LevelChar",
	"$Message",
	"$Logger",
	"$Id",
	"$Fields",
}

// IsFormatVariable reports whether name (including the leading '$') is
// a recognized pattern variable.
func IsFormatVariable(name string) bool {
	for _, v := range FormatVariables {
		if v == name {
			return true
		}
	}
	return false
}

// PatternFormatter renders entries through a format string. Variables
// are introduced by '$' and replaced with values from the entry;
// everything else is copied verbatim.
type PatternFormatter struct {
	Pattern    string
	TimeFormat string
}

// NewPatternFormatter creates a formatter for the given pattern. Empty
// pattern or time format fall back to the defaults.
func NewPatternFormatter(pattern, timeFormat string) *PatternFormatter {
	if pattern == "" {
		pattern = DefaultPattern
	}
	if timeFormat == "" {
		timeFormat = DefaultTimeFormat
	}
	return &PatternFormatter{Pattern: pattern, TimeFormat: timeFormat}
}

// Format renders the entry according to the pattern.
func (f *PatternFormatter) Format(e *Entry) ([]byte, error) {
	pattern := f.Pattern
	if pattern == "" {
		pattern = DefaultPattern
	}
	var b strings.Builder
	for i := 0; i < len(pattern); {
		if pattern[i] != '$' {
			b.WriteByte(pattern[i])
			i++
			continue
		}
		name, length := matchVariable(pattern[i:])
		if length == 0 {
			b.WriteByte('$')
			i++
			continue
		}
		b.WriteString(f.resolve(name, e))
		i += length
	}
	return []byte(b.String()), nil
}

// matchVariable finds the longest recognized variable at the start of
// s. It returns the variable name and its length, or 0 when s does not
// begin with a known variable.
func matchVariable(s string) (string, int) {
	best := ""
	for _, v := range FormatVariables {
		if strings.HasPrefix(s, v) && len(v) > len(best) {
			best = v
		}
	}
	return best, len(best)
}

func (f *PatternFormatter) resolve(name string, e *Entry) string {
	layout := f.TimeFormat
	if layout == "" {
		layout = DefaultTimeFormat
	}
	switch name {
	case "$TimeStamp":
		return e.Timestamp.Format(layout)
	case "$Date":
		return e.Timestamp.Format("2006-01-02")
	case "$Time":
		return e.Timestamp.Format("15:04:05")
	case "$Level":
		return e.Level.String()
	case "$LevelChar":
		return string(e.Level.TriggerChar())
	case "$Message":
		return e.Message
	case "$Logger":
		return e.Logger
	case "$Id":
		return e.ID
	case "$Fields":
		return renderFields(e.Fields)
	}
	return name
}

// renderFields renders a field set as space-separated key=value pairs
// in key order.
func renderFields(fields Fields) string {
	if len(fields) == 0 {
		return ""
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s=%v", k, fields[k])
	}
	return b.String()
}

// JSONFormatter renders entries as single-line JSON objects.
type JSONFormatter struct {
	// TimeFormat overrides the timestamp layout. Empty means RFC 3339
	// with nanoseconds.
	TimeFormat string
}

// Format renders the entry as a JSON object.
func (f *JSONFormatter) Format(e *Entry) ([]byte, error) {
	layout := f.TimeFormat
	if layout == "" {
		layout = time.RFC3339Nano
	}
	record := map[string]interface{}{
		"id":        e.ID,
		"timestamp": e.Timestamp.Format(layout),
		"level":     e.Level.String(),
		"message":   e.Message,
	}
	if e.Logger != "" {
		record["logger"] = e.Logger
	}
	if e.Caller != "" {
		record["caller"] = e.Caller
	}
	if len(e.Fields) > 0 {
		record["fields"] = e.Fields
	}
	if e.Err != nil {
		record["error"] = e.Err.Error()
	}
	return json.Marshal(record)
}
