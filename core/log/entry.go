// File: entry.go
// Title: Log Entry and Structured Fields
// Description: Defines the record produced by a logger call together with
//              the structured field helpers attached to it.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-18
// Modified: 2025-08-18
//
// Change History:
// - 2025-08-18 v0.1.0: Initial implementation

package log

import (
	"time"

	"github.com/google/uuid"
)

// Entry is a single log record. Every entry carries a unique ID so
// records can be correlated across sinks and downstream systems.
type Entry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Level     Level     `json:"level"`
	Logger    string    `json:"logger,omitempty"`
	Message   string    `json:"message"`
	Fields    Fields    `json:"fields,omitempty"`
	Err       error     `json:"-"`
	Caller    string    `json:"caller,omitempty"`
}

// Fields holds structured key-value context attached to an entry.
type Fields map[string]interface{}

// newEntry assembles a record for the given level and message.
func newEntry(level Level, logger, message string, fields Fields) *Entry {
	return &Entry{
		ID:        uuid.NewString(),
		Timestamp: time.Now(),
		Level:     level,
		Logger:    logger,
		Message:   message,
		Fields:    fields,
	}
}

// Field creates a single-entry field set.
func Field(key string, value interface{}) Fields {
	return Fields{key: value}
}

// Err wraps an error into a field set under the key "error".
func Err(err error) Fields {
	if err == nil {
		return Fields{}
	}
	return Fields{"error": err.Error()}
}

// Duration stores a duration under the given key, rendered as a string.
func Duration(key string, d time.Duration) Fields {
	return Fields{key: d.String()}
}

// Int stores an integer field.
func Int(key string, value int) Fields {
	return Fields{key: value}
}

// Str stores a string field.
func Str(key, value string) Fields {
	return Fields{key: value}
}

// Merge combines several field sets into one. Later sets win on key
// collisions. Merge never returns nil.
func Merge(sets ...Fields) Fields {
	merged := make(Fields)
	for _, set := range sets {
		for k, v := range set {
			merged[k] = v
		}
	}
	return merged
}

// Clone returns an independent copy of the field set.
func (f Fields) Clone() Fields {
	if f == nil {
		return nil
	}
	cloned := make(Fields, len(f))
	for k, v := range f {
		cloned[k] = v
	}
	return cloned
}

// With returns a copy of f extended by the given key and value.
func (f Fields) With(key string, value interface{}) Fields {
	cloned := f.Clone()
	if cloned == nil {
		cloned = make(Fields, 1)
	}
	cloned[key] = value
	return cloned
}
