// File: i18n_test.go
// Title: Message Catalog Tests
// Description: Tests catalog lookup, positional argument substitution,
//              locale switching, catalog file overrides and the diagnostic
//              renderer.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-15
// Modified: 2025-08-15
//
// Change History:
// - 2025-08-15 v0.1.0: Initial implementation

package i18n

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/msto63/coalog/config"
	"github.com/msto63/coalog/config/toml"
	coalogerror "github.com/msto63/coalog/core/error"
)

func TestMessageSubstitution(t *testing.T) {
	m := Default()
	tests := []struct {
		name string
		code coalogerror.Code
		args []string
		want string
	}{
		{"one argument", "E-Cfg-Toml-InvalidChar", []string{"'$'"}, "invalid character '$'"},
		{"no arguments", "E-Cfg-Toml-ValueExpected", nil, "value expected"},
		{"two arguments", "W-Cfg-WrongValueType", []string{"'port'", "integer"}, "configuration key 'port' has the wrong type, expected integer"},
		{"surplus argument dropped", "E-Cfg-Toml-ValueExpected", []string{"'x'"}, "value expected"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Message(tt.code, tt.args...); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMessageUnknownCodeFallsBackToCode(t *testing.T) {
	m := Default()
	if got := m.Message("E-Nope-Missing", "'x'"); got != "E-Nope-Missing 'x'" {
		t.Errorf("got %q", got)
	}
	if got := m.Message("E-Nope-Missing"); got != "E-Nope-Missing" {
		t.Errorf("got %q", got)
	}
}

func TestSetLocale(t *testing.T) {
	m := Default()
	if err := m.SetLocale("de"); err != nil {
		t.Fatalf("SetLocale(de): %v", err)
	}
	if got := m.Message("E-Cfg-Toml-InvalidChar", "'$'"); got != "ungueltiges Zeichen '$'" {
		t.Errorf("german message = %q", got)
	}

	err := m.SetLocale("fr")
	if err == nil {
		t.Fatal("SetLocale(fr) must fail without a catalog")
	}
	if !coalogerror.HasCode(err, coalogerror.CodeCatalogLocale) {
		t.Errorf("error code = %v, want %v", coalogerror.GetCode(err), coalogerror.CodeCatalogLocale)
	}
	if m.Locale() != "de" {
		t.Errorf("locale changed to %q after failed switch", m.Locale())
	}
}

func TestLocaleNormalization(t *testing.T) {
	m := Default()
	if err := m.SetLocale("DE"); err != nil {
		t.Fatalf("SetLocale(DE): %v", err)
	}
	if m.Locale() != "de" {
		t.Errorf("locale = %q, want de", m.Locale())
	}
	if got := NormalizeLocale("DE_de"); got != "de-de" {
		t.Errorf("NormalizeLocale = %q, want de-de", got)
	}
}

func TestFallbackToDefaultLocale(t *testing.T) {
	dir := t.TempDir()
	// a sparse German catalog overriding a single entry
	path := filepath.Join(dir, "de-at.toml")
	content := "\"E-Cfg-Toml-InvalidChar\" = \"komisches Zeichen %s\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := New(Options{DefaultLocale: "en", LocalesDir: dir, Fallback: true})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := m.SetLocale("de-at"); err != nil {
		t.Fatalf("SetLocale(de-at): %v", err)
	}

	// overridden entry comes from the file
	if got := m.Message("E-Cfg-Toml-InvalidChar", "'x'"); got != "komisches Zeichen 'x'" {
		t.Errorf("override = %q", got)
	}
	// everything else falls back to the default locale
	if got := m.Message("E-Cfg-Toml-ValueExpected"); got != "value expected" {
		t.Errorf("fallback = %q", got)
	}
}

func TestLoadYAMLCatalog(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "en.yaml")
	content := "\"E-Cfg-Toml-InvalidChar\": \"weird character %s\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := New(Options{DefaultLocale: "en", LocalesDir: dir})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m.Message("E-Cfg-Toml-InvalidChar", "'x'"); got != "weird character 'x'" {
		t.Errorf("override = %q", got)
	}
	// untouched entries keep the built-in text
	if got := m.Message("E-Cfg-Toml-ValueExpected"); got != "value expected" {
		t.Errorf("builtin = %q", got)
	}
}

func TestNewRejectsMissingLocalesDir(t *testing.T) {
	_, err := New(Options{DefaultLocale: "en", LocalesDir: "/does/not/exist"})
	if err == nil {
		t.Fatal("expected an error for a missing locales directory")
	}
	if !coalogerror.HasCode(err, coalogerror.CodeCatalogRead) {
		t.Errorf("error code = %v, want %v", coalogerror.GetCode(err), coalogerror.CodeCatalogRead)
	}
}

func TestEveryParserCodeHasBothLocales(t *testing.T) {
	for key := range catalogEN {
		if _, ok := catalogDE[key]; !ok {
			t.Errorf("code %s missing from the German catalog", key)
		}
	}
	for key := range catalogDE {
		if _, ok := catalogEN[key]; !ok {
			t.Errorf("code %s missing from the English catalog", key)
		}
	}
}

// The built-in catalogs must keep up with the code constants, not just
// with each other: a misspelled key passes the symmetry check above but
// leaves the code without a template.
func TestCatalogsCoverAllDiagnosticCodes(t *testing.T) {
	codes := toml.AllCodes()
	codes = append(codes, config.WarningCodes()...)

	m := Default()
	for _, code := range codes {
		if _, ok := catalogEN[string(code)]; !ok {
			t.Errorf("code %s has no English template", code)
		}
		if _, ok := catalogDE[string(code)]; !ok {
			t.Errorf("code %s has no German template", code)
		}
		if !m.HasCode(code) {
			t.Errorf("HasCode(%s) = false", code)
		}
	}
}

func TestCatalogTemplatesReachRenderer(t *testing.T) {
	m := Default()
	r := NewDiagnosticRenderer(m)
	tests := []struct {
		code coalogerror.Code
		args []string
		want string
	}{
		{
			code: toml.CodeLineTermInSingleLine,
			want: "error E-Cfg-Toml-LineTermInSingleLineString 1:1 escaped line break inside a single-line string",
		},
		{
			code: toml.CodeNoLineBreakAfterKeyValue,
			args: []string{"'b'"},
			want: "error E-Cfg-Toml-NoLineBreakAfterKeyValuePair 1:1 line break expected after key-value pair, found 'b'",
		},
	}
	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			d := toml.Diagnostic{
				Severity: coalogerror.SeverityError,
				Code:     tt.code,
				Pos:      toml.Position{Line: 1, Column: 1},
				Args:     tt.args,
			}
			if got := r.Render(d); got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDiagnosticRenderer(t *testing.T) {
	m := Default()
	r := NewDiagnosticRenderer(m)

	d := toml.Diagnostic{
		Severity: coalogerror.SeverityError,
		Code:     "E-Cfg-Toml-InvalidChar",
		Pos:      toml.Position{Line: 3, Column: 7},
		Args:     []string{"'$'"},
	}
	want := "error E-Cfg-Toml-InvalidChar 3:7 invalid character '$'"
	if got := r.Render(d); got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	if err := m.SetLocale("de"); err != nil {
		t.Fatal(err)
	}
	want = "Fehler E-Cfg-Toml-InvalidChar 3:7 ungueltiges Zeichen '$'"
	if got := r.Render(d); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRendererEndToEnd(t *testing.T) {
	m := Default()
	r := NewDiagnosticRenderer(m)
	_, diags := toml.Parse("a = 3.\n")
	if len(diags) != 1 {
		t.Fatalf("diagnostics = %v, want one", diags)
	}
	want := "error E-Cfg-Toml-EmptyFloatFract 1:7 fraction of a float must contain at least one digit"
	if got := r.Render(diags[0]); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDetectLocale(t *testing.T) {
	m := Default()
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"empty header", "", "en"},
		{"exact match", "de", "de"},
		{"region falls back to base", "de-DE", "de"},
		{"quality ordering", "fr;q=0.9,de;q=0.8,en;q=0.7", "de"},
		{"wildcard ignored", "*", "en"},
		{"no match", "fr,es", "en"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.DetectLocale(tt.header); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
