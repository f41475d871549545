// File: timer.go
// Title: Operation Timing
// Description: Measures the duration of an operation and reports it as a
//              function trace record when stopped.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-18
// Modified: 2025-08-18
//
// Change History:
// - 2025-08-18 v0.1.0: Initial implementation

package log

import "time"

// Timer measures how long an operation takes. Create one with
// StartTimer and call Stop (or StopWithError) when the operation ends.
type Timer struct {
	logger    *Logger
	operation string
	start     time.Time
	stopped   bool
}

// StartTimer begins timing the named operation.
func (l *Logger) StartTimer(operation string) *Timer {
	return &Timer{logger: l, operation: operation, start: time.Now()}
}

// Elapsed returns the time since the timer started.
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}

// Stop ends the timer and emits a function trace record with the
// elapsed duration. Subsequent calls are no-ops.
func (t *Timer) Stop(fields ...Fields) time.Duration {
	elapsed := t.Elapsed()
	if t.stopped {
		return elapsed
	}
	t.stopped = true
	all := append([]Fields{
		Str("operation", t.operation),
		Duration("elapsed", elapsed),
	}, fields...)
	t.logger.Function("operation completed", all...)
	return elapsed
}

// StopWithError ends the timer. A nil error behaves like Stop; a
// non-nil error emits an error record instead.
func (t *Timer) StopWithError(err error, fields ...Fields) time.Duration {
	if err == nil {
		return t.Stop(fields...)
	}
	elapsed := t.Elapsed()
	if t.stopped {
		return elapsed
	}
	t.stopped = true
	all := append([]Fields{
		Str("operation", t.operation),
		Duration("elapsed", elapsed),
		Err(err),
	}, fields...)
	t.logger.Error("operation failed", all...)
	return elapsed
}

// Cancel ends the timer without emitting a record.
func (t *Timer) Cancel() {
	t.stopped = true
}
