// File: runtime_test.go
// Title: Tests for the Logging Runtime Assembly
// Description: Verifies resource opening, level restriction, mode
//              switching, memory buffering, and shutdown.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-19
// Modified: 2025-08-19
//
// Change History:
// - 2025-08-19 v0.1.0: Initial implementation

package coalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/msto63/coalog/config"
	coalogerror "github.com/msto63/coalog/core/error"
	"github.com/msto63/coalog/core/log"
)

func testModel(t *testing.T, content string) *config.Model {
	t.Helper()
	model, diags := config.Parse(content)
	if len(diags) != 0 {
		t.Fatalf("fixture has diagnostics: %v", diags)
	}
	return model
}

func TestOpenDefaults(t *testing.T) {
	rt, err := Open(config.Defaults())
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer rt.Close()

	logger, err := rt.Logger("console")
	if err != nil {
		t.Fatalf("Logger() error = %v", err)
	}
	if logger == nil {
		t.Fatal("console logger missing")
	}
}

func TestFileResourceWritesRecords(t *testing.T) {
	dir := t.TempDir()
	model := testModel(t, `[system]
output-path = "`+dir+`"

[formats.plain]
pattern = "$LevelChar $Message"

[[resources]]
name = "main"
type = "file"
target = "app.log"
format = "plain"
level = "debug"
`)
	rt, err := Open(model)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	logger, err := rt.Logger("main")
	if err != nil {
		t.Fatal(err)
	}
	logger.Info("started")
	logger.Error("broken")
	if err := rt.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(dir, "app.log"))
	if err != nil {
		t.Fatal(err)
	}
	got := string(raw)
	if got != "I started\nE broken\n" {
		t.Errorf("file content = %q", got)
	}
}

func TestFileResourceFallsBackToFallbackPath(t *testing.T) {
	fallback := t.TempDir()
	model := testModel(t, `[system]
output-path = "/proc/no-such-place"
fallback-path = "`+fallback+`"

[[resources]]
name = "main"
type = "file"
target = "app.log"
`)
	rt, err := Open(model)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer rt.Close()

	if !fileExists(filepath.Join(fallback, "app.log")) {
		t.Error("log file should have been created under the fallback path")
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func TestOpenFailsWithoutUsableLocation(t *testing.T) {
	model := testModel(t, `[system]
output-path = "/proc/no-such-place"
fallback-path = "/proc/also-no"

[[resources]]
name = "main"
type = "file"
target = "app.log"
`)
	_, err := Open(model)
	if err == nil {
		t.Fatal("expected an error")
	}
	if !coalogerror.HasCode(err, coalogerror.CodeResourceOpen) {
		t.Errorf("error code = %s", coalogerror.GetCode(err))
	}
}

func TestResourceLevelRestrictsTriggers(t *testing.T) {
	model := testModel(t, `[[resources]]
name = "mem"
type = "memory"
level = "warning"
`)
	rt, err := Open(model)
	if err != nil {
		t.Fatal(err)
	}
	defer rt.Close()

	logger, _ := rt.Logger("mem")
	logger.Debug("dropped")
	logger.Info("dropped")
	logger.Warning("kept")
	logger.Error("kept")

	sink := rt.Buffer("mem")
	if sink == nil {
		t.Fatal("memory sink missing")
	}
	if sink.Len() != 2 {
		t.Errorf("buffered %d records, want 2: %v", sink.Len(), sink.Records())
	}
}

func TestMemorySinkRing(t *testing.T) {
	sink := NewMemorySink(2)
	sink.Write([]byte("one\n"))
	sink.Write([]byte("two\n"))
	sink.Write([]byte("three\n"))

	records := sink.Records()
	if len(records) != 2 || records[0] != "two" || records[1] != "three" {
		t.Errorf("records = %v", records)
	}
	sink.Clear()
	if sink.Len() != 0 {
		t.Error("Clear() left records behind")
	}
}

func TestModeSwitching(t *testing.T) {
	model := testModel(t, `[formats.quiet]
pattern = "$Message"
triggers = "EW"

[[resources]]
name = "mem"
type = "memory"
format = "quiet"
level = "debug"

[[modes]]
name = "diagnose"
triggers = "DEW"
resources = ["mem"]
`)
	rt, err := Open(model)
	if err != nil {
		t.Fatal(err)
	}
	defer rt.Close()

	logger, _ := rt.Logger("mem")
	logger.Debug("dropped before mode")

	if err := rt.ActivateMode("diagnose"); err != nil {
		t.Fatalf("ActivateMode() error = %v", err)
	}
	logger.Debug("kept in mode")

	if err := rt.DeactivateMode("diagnose"); err != nil {
		t.Fatalf("DeactivateMode() error = %v", err)
	}
	logger.Debug("dropped after mode")
	logger.Error("always kept")

	records := rt.Buffer("mem").Records()
	joined := strings.Join(records, "|")
	if joined != "kept in mode|always kept" {
		t.Errorf("records = %v", records)
	}
}

func TestActivateUnknownMode(t *testing.T) {
	rt, err := Open(config.Defaults())
	if err != nil {
		t.Fatal(err)
	}
	defer rt.Close()
	if err := rt.ActivateMode("absent"); err == nil {
		t.Error("expected an error")
	}
}

func TestClosedRuntimeRejectsLookups(t *testing.T) {
	rt, err := Open(config.Defaults())
	if err != nil {
		t.Fatal(err)
	}
	if err := rt.Close(); err != nil {
		t.Fatal(err)
	}
	if err := rt.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
	if _, err := rt.Logger("console"); !coalogerror.HasCode(err, coalogerror.CodeResourceClosed) {
		t.Errorf("error code = %s, want %s", coalogerror.GetCode(err), coalogerror.CodeResourceClosed)
	}
}

func TestUnknownResourceLookup(t *testing.T) {
	rt, err := Open(config.Defaults())
	if err != nil {
		t.Fatal(err)
	}
	defer rt.Close()
	if _, err := rt.Logger("absent"); err == nil {
		t.Error("expected an error")
	}
}

func TestFormatPatternAppliedToFileRecords(t *testing.T) {
	dir := t.TempDir()
	model := testModel(t, `[system]
output-path = "`+dir+`"

[formats.tagged]
pattern = "[$Level] $Message $Fields"

[[resources]]
name = "main"
type = "file"
target = "app.log"
format = "tagged"
`)
	rt, err := Open(model)
	if err != nil {
		t.Fatal(err)
	}
	logger, _ := rt.Logger("main")
	logger.Info("lookup", log.Field("key", "server.host"))
	rt.Close()

	raw, _ := os.ReadFile(filepath.Join(dir, "app.log"))
	if got := string(raw); got != "[info] lookup key=server.host\n" {
		t.Errorf("file content = %q", got)
	}
}
