// File: logger_test.go
// Title: Tests for the Logger Core
// Description: Verifies trigger filtering, field merging, cloning, async
//              draining, and timers.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-18
// Modified: 2025-08-18
//
// Change History:
// - 2025-08-18 v0.1.0: Initial implementation

package log

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"
)

// syncBuffer guards a bytes.Buffer for use as a concurrent sink.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func newTestLogger(triggers string) (*Logger, *syncBuffer) {
	buf := &syncBuffer{}
	set := AllTriggers()
	if triggers != "" {
		set, _ = ParseTriggers(triggers)
	}
	logger := NewWithConfig(Config{
		Name:      "test",
		Triggers:  set,
		Formatter: NewPatternFormatter("$LevelChar $Message", ""),
		Output:    buf,
	})
	return logger, buf
}

func TestTriggerFiltering(t *testing.T) {
	logger, buf := newTestLogger("EW")
	logger.Error("boom")
	logger.Warning("careful")
	logger.Info("ignored")
	logger.Debug("ignored")
	logger.Function("ignored")

	got := buf.String()
	want := "E boom\nW careful\n"
	if got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestAllLevelsEmit(t *testing.T) {
	logger, buf := newTestLogger("")
	logger.Debug("d")
	logger.Function("f")
	logger.Module("m")
	logger.Object("o")
	logger.Info("i")
	logger.Warning("w")
	logger.Error("e")

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	want := []string{"D d", "F f", "M m", "O o", "I i", "W w", "E e"}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d: %q", len(lines), len(want), lines)
	}
	for i, line := range lines {
		if line != want[i] {
			t.Errorf("line %d = %q, want %q", i, line, want[i])
		}
	}
}

func TestFieldsMergedIntoEntry(t *testing.T) {
	buf := &syncBuffer{}
	logger := NewWithConfig(Config{
		Formatter: NewPatternFormatter("$Message|$Fields", ""),
		Output:    buf,
	})
	logger.Info("lookup", Field("key", "server.host"), Int("attempt", 2))
	got := strings.TrimRight(buf.String(), "\n")
	if got != "lookup|attempt=2 key=server.host" {
		t.Errorf("output = %q", got)
	}
}

func TestWithFieldsClones(t *testing.T) {
	buf := &syncBuffer{}
	base := NewWithConfig(Config{
		Formatter: NewPatternFormatter("$Fields", ""),
		Output:    buf,
	})
	scoped := base.WithField("request", "r-1")
	scoped.Info("x")
	base.Info("y")

	// The scoped clone renders its field; the base logger stays bare.
	if got := buf.String(); got != "request=r-1\n\n" {
		t.Errorf("output = %q, want %q", got, "request=r-1\n\n")
	}
}

func TestWithName(t *testing.T) {
	buf := &syncBuffer{}
	base := NewWithConfig(Config{
		Name:      "base",
		Formatter: NewPatternFormatter("$Logger", ""),
		Output:    buf,
	})
	base.WithName("child").Info("x")
	base.Info("y")
	got := buf.String()
	if got != "child\nbase\n" {
		t.Errorf("output = %q", got)
	}
}

func TestErrorWithErr(t *testing.T) {
	buf := &syncBuffer{}
	logger := NewWithConfig(Config{
		Formatter: NewPatternFormatter("$LevelChar $Message $Fields", ""),
		Output:    buf,
	})
	logger.ErrorWithErr("read failed", errors.New("permission denied"))
	got := strings.TrimRight(buf.String(), "\n")
	if got != "E read failed error=permission denied" {
		t.Errorf("output = %q", got)
	}
}

func TestEnabled(t *testing.T) {
	logger, _ := newTestLogger("E")
	if !logger.Enabled(LevelError) {
		t.Error("error should be enabled")
	}
	if logger.Enabled(LevelInfo) {
		t.Error("info should be disabled")
	}
}

func TestSetTriggers(t *testing.T) {
	logger, buf := newTestLogger("E")
	logger.Info("before")
	set, _ := ParseTriggers("I")
	logger.SetTriggers(set)
	logger.Info("after")
	logger.Error("dropped")
	if got := buf.String(); got != "I after\n" {
		t.Errorf("output = %q", got)
	}
}

func TestEntriesGetUniqueIDs(t *testing.T) {
	buf := &syncBuffer{}
	logger := NewWithConfig(Config{
		Formatter: NewPatternFormatter("$Id", ""),
		Output:    buf,
	})
	logger.Info("a")
	logger.Info("b")
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines", len(lines))
	}
	if lines[0] == "" || lines[1] == "" {
		t.Fatal("entries should carry IDs")
	}
	if lines[0] == lines[1] {
		t.Errorf("IDs should differ, both %q", lines[0])
	}
}

func TestAsyncLoggerDrainsOnClose(t *testing.T) {
	buf := &syncBuffer{}
	logger := NewWithConfig(Config{
		Formatter:  NewPatternFormatter("$Message", ""),
		Output:     buf,
		Async:      true,
		BufferSize: 8,
	})
	for i := 0; i < 20; i++ {
		logger.Info("record")
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 20 {
		t.Errorf("got %d records after drain, want 20", len(lines))
	}
}

func TestClosedLoggerDropsRecords(t *testing.T) {
	logger, buf := newTestLogger("")
	if err := logger.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("second Close() error = %v", err)
	}
	logger.Error("late")
	if got := buf.String(); got != "" {
		t.Errorf("closed logger wrote %q", got)
	}
}

func TestConcurrentLogging(t *testing.T) {
	logger, buf := newTestLogger("")
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				logger.Info("msg")
			}
		}()
	}
	wg.Wait()
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 200 {
		t.Errorf("got %d lines, want 200", len(lines))
	}
}

func TestTimerStop(t *testing.T) {
	buf := &syncBuffer{}
	logger := NewWithConfig(Config{
		Formatter: NewPatternFormatter("$LevelChar $Message $Fields", ""),
		Output:    buf,
	})
	timer := logger.StartTimer("load")
	timer.Stop()
	timer.Stop()

	got := buf.String()
	if !strings.HasPrefix(got, "F operation completed ") {
		t.Errorf("output = %q", got)
	}
	if !strings.Contains(got, "operation=load") {
		t.Errorf("missing operation field: %q", got)
	}
	if strings.Count(got, "\n") != 1 {
		t.Errorf("second Stop should be a no-op: %q", got)
	}
}

func TestTimerStopWithError(t *testing.T) {
	buf := &syncBuffer{}
	logger := NewWithConfig(Config{
		Formatter: NewPatternFormatter("$LevelChar $Message $Fields", ""),
		Output:    buf,
	})
	logger.StartTimer("save").StopWithError(errors.New("disk full"))
	got := buf.String()
	if !strings.HasPrefix(got, "E operation failed ") {
		t.Errorf("output = %q", got)
	}
	if !strings.Contains(got, "error=disk full") {
		t.Errorf("missing error field: %q", got)
	}
}

func TestTimerCancel(t *testing.T) {
	logger, buf := newTestLogger("")
	timer := logger.StartTimer("noop")
	timer.Cancel()
	timer.Stop()
	if got := buf.String(); got != "" {
		t.Errorf("canceled timer wrote %q", got)
	}
}

func TestDefaultLogger(t *testing.T) {
	old := Default()
	defer SetDefault(old)

	buf := &syncBuffer{}
	SetDefault(NewWithConfig(Config{
		Formatter: NewPatternFormatter("$LevelChar $Message", ""),
		Output:    buf,
	}))
	Info("hello")
	Error("bad")
	if got := buf.String(); got != "I hello\nE bad\n" {
		t.Errorf("output = %q", got)
	}
}
