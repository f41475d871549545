// File: level_test.go
// Title: Tests for Record Levels and Trigger Sets
// Description: Verifies level names, trigger characters, parsing, and
//              trigger set membership.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-18
// Modified: 2025-08-18
//
// Change History:
// - 2025-08-18 v0.1.0: Initial implementation

package log

import "testing"

func TestLevelTriggerChars(t *testing.T) {
	tests := []struct {
		level Level
		name  string
		char  byte
	}{
		{LevelError, "error", 'E'},
		{LevelWarning, "warning", 'W'},
		{LevelInfo, "info", 'I'},
		{LevelDebug, "debug", 'D'},
		{LevelFunction, "function", 'F'},
		{LevelModule, "module", 'M'},
		{LevelObject, "object", 'O'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.level.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
			if got := tt.level.TriggerChar(); got != tt.char {
				t.Errorf("TriggerChar() = %q, want %q", got, tt.char)
			}
			if !tt.level.IsValid() {
				t.Error("IsValid() = false")
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"error", LevelError, false},
		{"WARNING", LevelWarning, false},
		{" info ", LevelInfo, false},
		{"E", LevelError, false},
		{"f", LevelFunction, false},
		{"verbose", LevelInfo, true},
		{"", LevelInfo, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseTriggers(t *testing.T) {
	set, unknown := ParseTriggers("EWI")
	if len(unknown) != 0 {
		t.Fatalf("unexpected unknown triggers %q", unknown)
	}
	for _, l := range []Level{LevelError, LevelWarning, LevelInfo} {
		if !set.Contains(l) {
			t.Errorf("set should contain %v", l)
		}
	}
	for _, l := range []Level{LevelDebug, LevelFunction, LevelModule, LevelObject} {
		if set.Contains(l) {
			t.Errorf("set should not contain %v", l)
		}
	}
}

func TestParseTriggersLowercaseAndSeparators(t *testing.T) {
	set, unknown := ParseTriggers("e, w i")
	if len(unknown) != 0 {
		t.Fatalf("unexpected unknown triggers %q", unknown)
	}
	if !set.Contains(LevelError) || !set.Contains(LevelWarning) || !set.Contains(LevelInfo) {
		t.Errorf("set = %q, want EWI", set.String())
	}
}

func TestParseTriggersReportsUnknown(t *testing.T) {
	set, unknown := ParseTriggers("EXQ")
	if string(unknown) != "XQ" {
		t.Errorf("unknown = %q, want XQ", unknown)
	}
	if !set.Contains(LevelError) {
		t.Error("recognized trigger E should still be in the set")
	}
}

func TestTriggerSetString(t *testing.T) {
	set, _ := ParseTriggers("IWE")
	if got := set.String(); got != "IWE" {
		t.Errorf("String() = %q, want IWE", got)
	}
}

func TestAllTriggers(t *testing.T) {
	set := AllTriggers()
	for _, l := range AllLevels() {
		if !set.Contains(l) {
			t.Errorf("AllTriggers should contain %v", l)
		}
	}
	if got := set.String(); got != "DFMOIWE" {
		t.Errorf("String() = %q, want DFMOIWE", got)
	}
}

func TestEmptyTriggerSet(t *testing.T) {
	var set TriggerSet
	if !set.IsEmpty() {
		t.Error("zero value should be empty")
	}
	if set.Contains(LevelError) {
		t.Error("empty set should contain nothing")
	}
}
