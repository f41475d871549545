// File: value.go
// Title: Value Model
// Description: Defines the tagged value variant produced by the configuration
//              parser. A Value is one of string, integer, float, boolean,
//              date, time, datetime, array or inline table. Values form a
//              tree; cycles are not possible.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-13
// Modified: 2025-08-13
//
// Change History:
// - 2025-08-13 v0.1.0: Initial implementation

package toml

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ValueKind identifies the variant stored in a Value
type ValueKind int

const (
	KindString ValueKind = iota
	KindInteger
	KindFloat
	KindBoolean
	KindDate
	KindTime
	KindDateTime
	KindArray
	KindTable
)

// String returns a readable name for the value kind
func (k ValueKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindBoolean:
		return "boolean"
	case KindDate:
		return "date"
	case KindTime:
		return "time"
	case KindDateTime:
		return "datetime"
	case KindArray:
		return "array"
	case KindTable:
		return "table"
	default:
		return "unknown"
	}
}

// Value is one decoded configuration value
type Value struct {
	kind    ValueKind
	str     string
	num     int64
	flt     float64
	boolean bool
	tm      time.Time
	offset  bool // datetime carries an explicit timezone offset
	items   []*Value
	table   *Table
}

// StringValue creates a string value
func StringValue(s string) *Value {
	return &Value{kind: KindString, str: s}
}

// IntegerValue creates an integer value
func IntegerValue(n int64) *Value {
	return &Value{kind: KindInteger, num: n}
}

// FloatValue creates a float value
func FloatValue(f float64) *Value {
	return &Value{kind: KindFloat, flt: f}
}

// BooleanValue creates a boolean value
func BooleanValue(b bool) *Value {
	return &Value{kind: KindBoolean, boolean: b}
}

// DateValue creates a calendar date value
func DateValue(t time.Time) *Value {
	return &Value{kind: KindDate, tm: t}
}

// TimeValue creates a time-of-day value
func TimeValue(t time.Time) *Value {
	return &Value{kind: KindTime, tm: t}
}

// DateTimeValue creates a datetime value; offset reports whether the
// source carried an explicit timezone
func DateTimeValue(t time.Time, offset bool) *Value {
	return &Value{kind: KindDateTime, tm: t, offset: offset}
}

// ArrayValue creates an array value from the given items
func ArrayValue(items []*Value) *Value {
	return &Value{kind: KindArray, items: items}
}

// TableValue creates an inline table value
func TableValue(t *Table) *Value {
	return &Value{kind: KindTable, table: t}
}

// Kind returns the variant stored in the value
func (v *Value) Kind() ValueKind {
	return v.kind
}

// AsString returns the string payload
func (v *Value) AsString() (string, bool) {
	return v.str, v.kind == KindString
}

// AsInteger returns the integer payload
func (v *Value) AsInteger() (int64, bool) {
	return v.num, v.kind == KindInteger
}

// AsFloat returns the float payload; integers convert implicitly
func (v *Value) AsFloat() (float64, bool) {
	switch v.kind {
	case KindFloat:
		return v.flt, true
	case KindInteger:
		return float64(v.num), true
	default:
		return 0, false
	}
}

// AsBoolean returns the boolean payload
func (v *Value) AsBoolean() (bool, bool) {
	return v.boolean, v.kind == KindBoolean
}

// AsTime returns the temporal payload for date, time and datetime values
func (v *Value) AsTime() (time.Time, bool) {
	switch v.kind {
	case KindDate, KindTime, KindDateTime:
		return v.tm, true
	default:
		return time.Time{}, false
	}
}

// HasOffset reports whether a datetime value carried an explicit timezone
func (v *Value) HasOffset() bool {
	return v.kind == KindDateTime && v.offset
}

// Items returns the elements of an array value
func (v *Value) Items() []*Value {
	if v.kind != KindArray {
		return nil
	}
	return v.items
}

// Table returns the table of an inline table value
func (v *Value) Table() *Table {
	if v.kind != KindTable {
		return nil
	}
	return v.table
}

// Untyped converts the value into plain Go types, mirroring the shape
// produced by generic decoders. Used by consumers that walk the tree
// without caring about configuration semantics.
func (v *Value) Untyped() interface{} {
	switch v.kind {
	case KindString:
		return v.str
	case KindInteger:
		return v.num
	case KindFloat:
		return v.flt
	case KindBoolean:
		return v.boolean
	case KindDate, KindTime, KindDateTime:
		return v.tm
	case KindArray:
		out := make([]interface{}, len(v.items))
		for i, item := range v.items {
			out[i] = item.Untyped()
		}
		return out
	case KindTable:
		return v.table.Untyped()
	default:
		return nil
	}
}

// String renders the value for debugging output
func (v *Value) String() string {
	switch v.kind {
	case KindString:
		return strconv.Quote(v.str)
	case KindInteger:
		return strconv.FormatInt(v.num, 10)
	case KindFloat:
		return strconv.FormatFloat(v.flt, 'g', -1, 64)
	case KindBoolean:
		return strconv.FormatBool(v.boolean)
	case KindDate:
		return v.tm.Format("2006-01-02")
	case KindTime:
		return v.tm.Format("15:04:05.999999999")
	case KindDateTime:
		if v.offset {
			return v.tm.Format(time.RFC3339Nano)
		}
		return v.tm.Format("2006-01-02T15:04:05.999999999")
	case KindArray:
		parts := make([]string, len(v.items))
		for i, item := range v.items {
			parts[i] = item.String()
		}
		return fmt.Sprintf("[%s]", strings.Join(parts, ", "))
	case KindTable:
		return v.table.String()
	default:
		return "<invalid>"
	}
}
