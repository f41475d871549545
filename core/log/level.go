// File: level.go
// Title: Record Levels and Trigger Characters
// Description: Defines the record levels emitted by coalog loggers and the
//              single-character triggers that activate or suppress them.
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
	"strings"
)

// Level identifies the kind of record a logger emits. Besides the
// conventional severity levels it includes the tracing levels for
// function, module, and object lifecycle records.
type Level int

const (
	// LevelDebug carries developer diagnostics.
	LevelDebug Level = iota
	// LevelFunction traces entry to and exit from functions.
	LevelFunction
	// LevelModule traces module initialization and shutdown.
	LevelModule
	// LevelObject traces object construction and teardown.
	LevelObject
	// LevelInfo reports regular operational events.
	LevelInfo
	// LevelWarning reports recoverable anomalies.
	LevelWarning
	// LevelError reports failures.
	LevelError
)

// levelNames maps each level to its canonical lowercase name.
var levelNames = map[Level]string{
	LevelDebug:    "debug",
	LevelFunction: "function",
	LevelModule:   "module",
	LevelObject:   "object",
	LevelInfo:     "info",
	LevelWarning:  "warning",
	LevelError:    "error",
}

// levelTriggers maps each level to its trigger character.
var levelTriggers = map[Level]byte{
	LevelDebug:    'D',
	LevelFunction: 'F',
	LevelModule:   'M',
	LevelObject:   'O',
	LevelInfo:     'I',
	LevelWarning:  'W',
	LevelError:    'E',
}

// String returns the canonical name of the level.
func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("level(%d)", int(l))
}

// TriggerChar returns the single character that selects this level in a
// trigger set. Unknown levels map to '?'.
func (l Level) TriggerChar() byte {
	if ch, ok := levelTriggers[l]; ok {
		return ch
	}
	return '?'
}

// IsValid reports whether l is one of the defined levels.
func (l Level) IsValid() bool {
	_, ok := levelNames[l]
	return ok
}

// AllLevels returns every defined level in ascending priority order.
func AllLevels() []Level {
	return []Level{
		LevelDebug, LevelFunction, LevelModule, LevelObject,
		LevelInfo, LevelWarning, LevelError,
	}
}

// ParseLevel resolves a level from its name. Matching is
// case-insensitive and accepts the single trigger character as a
// shorthand.
func ParseLevel(s string) (Level, error) {
	trimmed := strings.TrimSpace(s)
	if len(trimmed) == 1 {
		if l, ok := ParseTrigger(trimmed[0]); ok {
			return l, nil
		}
	}
	lowered := strings.ToLower(trimmed)
	for l, name := range levelNames {
		if name == lowered {
			return l, nil
		}
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// ParseTrigger resolves a level from its trigger character. Lowercase
// characters are accepted.
func ParseTrigger(ch byte) (Level, bool) {
	if ch >= 'a' && ch <= 'z' {
		ch -= 'a' - 'A'
	}
	for l, trigger := range levelTriggers {
		if trigger == ch {
			return l, true
		}
	}
	return LevelInfo, false
}

// TriggerSet is the set of levels a sink records, expressed through
// trigger characters. The zero value selects nothing; use
// AllTriggers or ParseTriggers to construct a useful set.
type TriggerSet struct {
	enabled map[Level]bool
}

// NewTriggerSet returns a set containing exactly the given levels.
func NewTriggerSet(levels ...Level) TriggerSet {
	set := TriggerSet{enabled: make(map[Level]bool, len(levels))}
	for _, l := range levels {
		if l.IsValid() {
			set.enabled[l] = true
		}
	}
	return set
}

// AllTriggers returns a set that records every level.
func AllTriggers() TriggerSet {
	set := TriggerSet{enabled: make(map[Level]bool, len(levelTriggers))}
	for l := range levelTriggers {
		set.enabled[l] = true
	}
	return set
}

// ParseTriggers builds a trigger set from a string of trigger
// characters such as "EWI". Unknown characters are returned so callers
// can report them; the set still contains every recognized trigger.
func ParseTriggers(s string) (TriggerSet, []byte) {
	set := TriggerSet{enabled: make(map[Level]bool, len(s))}
	var unknown []byte
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch == ' ' || ch == ',' {
			continue
		}
		if l, ok := ParseTrigger(ch); ok {
			set.enabled[l] = true
			continue
		}
		unknown = append(unknown, ch)
	}
	return set, unknown
}

// Contains reports whether the set records the given level.
func (t TriggerSet) Contains(l Level) bool {
	return t.enabled[l]
}

// IsEmpty reports whether the set records no level at all.
func (t TriggerSet) IsEmpty() bool {
	return len(t.enabled) == 0
}

// String renders the set as trigger characters in priority order.
func (t TriggerSet) String() string {
	var b strings.Builder
	for _, l := range AllLevels() {
		if t.enabled[l] {
			b.WriteByte(l.TriggerChar())
		}
	}
	return b.String()
}
