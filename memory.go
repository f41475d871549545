// File: memory.go
// Title: Memory Buffer Sink
// Description: A bounded in-memory sink keeping the most recent records
//              of a memory resource.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-19
// Modified: 2025-08-19
//
// Change History:
// - 2025-08-19 v0.1.0: Initial implementation

package coalog

import (
	"strings"
	"sync"
)

// MemorySink is an io.Writer that keeps the most recent records in a
// ring. When the capacity is reached the oldest record is dropped.
type MemorySink struct {
	mu       sync.Mutex
	records  []string
	capacity int
}

// NewMemorySink creates a sink holding up to capacity records. A
// non-positive capacity defaults to 128.
func NewMemorySink(capacity int) *MemorySink {
	if capacity <= 0 {
		capacity = 128
	}
	return &MemorySink{capacity: capacity}
}

// Write stores one record. The trailing newline the logger appends is
// stripped.
func (s *MemorySink) Write(p []byte) (int, error) {
	record := strings.TrimRight(string(p), "\n")
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.records) == s.capacity {
		s.records = s.records[1:]
	}
	s.records = append(s.records, record)
	return len(p), nil
}

// Records returns a copy of the buffered records, oldest first.
func (s *MemorySink) Records() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.records...)
}

// Len returns the number of buffered records.
func (s *MemorySink) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// Clear drops all buffered records.
func (s *MemorySink) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = nil
}
