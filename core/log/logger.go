// File: logger.go
// Title: Logger Core
// Description: The logger that builds entries, filters them through the
//              configured trigger set, formats them, and writes them to the
//              configured sink, synchronously or through an async buffer.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-18
// Modified: 2025-08-18
//
// Change History:
// - 2025-08-18 v0.1.0: Initial implementation

package log

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Config describes how a logger filters, formats, and writes entries.
type Config struct {
	// Name is attached to every entry as the logger name.
	Name string
	// Triggers selects which levels are recorded. An empty set is
	// replaced by AllTriggers.
	Triggers TriggerSet
	// Formatter renders entries. Nil means the default pattern
	// formatter.
	Formatter Formatter
	// Output receives formatted entries. Nil means stdout.
	Output io.Writer
	// Async switches writes to a buffered background worker.
	Async bool
	// BufferSize is the async channel capacity. Zero means 256.
	BufferSize int
}

// Logger builds and emits log entries. All methods are safe for
// concurrent use. With* methods return clones and never mutate the
// receiver.
type Logger struct {
	mu        sync.Mutex
	name      string
	triggers  TriggerSet
	formatter Formatter
	out       io.Writer
	fields    Fields

	async  chan *Entry
	wg     *sync.WaitGroup
	closed bool
}

// New creates a logger with default settings: all triggers enabled,
// pattern formatting, synchronous writes to stdout.
func New(name string) *Logger {
	return NewWithConfig(Config{Name: name})
}

// NewWithConfig creates a logger from an explicit configuration.
func NewWithConfig(cfg Config) *Logger {
	l := &Logger{
		name:      cfg.Name,
		triggers:  cfg.Triggers,
		formatter: cfg.Formatter,
		out:       cfg.Output,
	}
	if l.triggers.IsEmpty() {
		l.triggers = AllTriggers()
	}
	if l.formatter == nil {
		l.formatter = NewPatternFormatter("", "")
	}
	if l.out == nil {
		l.out = os.Stdout
	}
	if cfg.Async {
		size := cfg.BufferSize
		if size <= 0 {
			size = 256
		}
		l.async = make(chan *Entry, size)
		l.wg = &sync.WaitGroup{}
		l.wg.Add(1)
		go l.worker()
	}
	return l
}

// WithFields returns a clone whose entries carry the given fields in
// addition to the receiver's fields.
func (l *Logger) WithFields(fields Fields) *Logger {
	clone := l.clone()
	clone.fields = Merge(l.fields, fields)
	return clone
}

// WithField returns a clone with one additional field.
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return l.WithFields(Field(key, value))
}

// WithName returns a clone using the given logger name.
func (l *Logger) WithName(name string) *Logger {
	clone := l.clone()
	clone.name = name
	return clone
}

// clone copies the logger's configuration. The clone shares the
// receiver's output, async channel, and worker.
func (l *Logger) clone() *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	return &Logger{
		name:      l.name,
		triggers:  l.triggers,
		formatter: l.formatter,
		out:       l.out,
		fields:    l.fields.Clone(),
		async:     l.async,
		wg:        l.wg,
	}
}

// SetTriggers replaces the active trigger set.
func (l *Logger) SetTriggers(set TriggerSet) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if set.IsEmpty() {
		set = AllTriggers()
	}
	l.triggers = set
}

// SetFormatter replaces the formatter.
func (l *Logger) SetFormatter(f Formatter) {
	if f == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.formatter = f
}

// SetOutput redirects formatted entries to w.
func (l *Logger) SetOutput(w io.Writer) {
	if w == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.out = w
}

// Enabled reports whether the given level would currently be recorded.
func (l *Logger) Enabled(level Level) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.triggers.Contains(level)
}

// Debug emits a debug record.
func (l *Logger) Debug(message string, fields ...Fields) {
	l.log(LevelDebug, message, fields)
}

// Info emits an informational record.
func (l *Logger) Info(message string, fields ...Fields) {
	l.log(LevelInfo, message, fields)
}

// Warning emits a warning record.
func (l *Logger) Warning(message string, fields ...Fields) {
	l.log(LevelWarning, message, fields)
}

// Error emits an error record.
func (l *Logger) Error(message string, fields ...Fields) {
	l.log(LevelError, message, fields)
}

// ErrorWithErr emits an error record carrying the given error as a
// field.
func (l *Logger) ErrorWithErr(message string, err error, fields ...Fields) {
	l.log(LevelError, message, append(fields, Err(err)))
}

// Function emits a function trace record.
func (l *Logger) Function(message string, fields ...Fields) {
	l.log(LevelFunction, message, fields)
}

// Module emits a module trace record.
func (l *Logger) Module(message string, fields ...Fields) {
	l.log(LevelModule, message, fields)
}

// Object emits an object trace record.
func (l *Logger) Object(message string, fields ...Fields) {
	l.log(LevelObject, message, fields)
}

// Log emits a record at an explicit level.
func (l *Logger) Log(level Level, message string, fields ...Fields) {
	l.log(level, message, fields)
}

func (l *Logger) log(level Level, message string, fields []Fields) {
	l.mu.Lock()
	if l.closed || !l.triggers.Contains(level) {
		l.mu.Unlock()
		return
	}
	name := l.name
	base := l.fields
	l.mu.Unlock()

	merged := base
	if len(fields) > 0 {
		merged = Merge(append([]Fields{base}, fields...)...)
	}
	entry := newEntry(level, name, message, merged)

	// The send must happen under the mutex: Close only closes the
	// channel after marking the logger closed under the same lock.
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	async := l.async
	if async != nil {
		select {
		case async <- entry:
			l.mu.Unlock()
			return
		default:
			// Buffer full. Write synchronously rather than drop.
		}
	}
	l.mu.Unlock()
	l.write(entry)
}

func (l *Logger) write(entry *Entry) {
	l.mu.Lock()
	formatter := l.formatter
	out := l.out
	l.mu.Unlock()

	line, err := formatter.Format(entry)
	if err != nil {
		fmt.Fprintf(os.Stderr, "log: format failed: %v\n", err)
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	out.Write(append(line, '\n'))
}

func (l *Logger) worker() {
	defer l.wg.Done()
	for entry := range l.async {
		l.write(entry)
	}
}

// Close drains the async buffer and stops the worker. A closed logger
// silently drops further records. Close is idempotent.
func (l *Logger) Close() error {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return nil
	}
	l.closed = true
	async := l.async
	wg := l.wg
	l.mu.Unlock()

	if async != nil {
		close(async)
		wg.Wait()
	}
	return nil
}

// The package-level default logger mirrors the Logger API for code
// that does not manage its own instance.
var (
	defaultMu     sync.RWMutex
	defaultLogger = New("")
)

// Default returns the package-level logger.
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault replaces the package-level logger.
func SetDefault(l *Logger) {
	if l == nil {
		return
	}
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Debug emits a debug record through the default logger.
func Debug(message string, fields ...Fields) { Default().Debug(message, fields...) }

// Info emits an informational record through the default logger.
func Info(message string, fields ...Fields) { Default().Info(message, fields...) }

// Warning emits a warning record through the default logger.
func Warning(message string, fields ...Fields) { Default().Warning(message, fields...) }

// Error emits an error record through the default logger.
func Error(message string, fields ...Fields) { Default().Error(message, fields...) }
