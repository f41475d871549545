// File: parser_test.go
// Title: Parser Tests
// Description: Tests statement parsing, document assembly, duplicate and
//              kind-conflict diagnostics and the per-statement
//              resynchronization after errors. Valid documents are cross
//              checked against an independent decoder.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-15
// Modified: 2025-08-15
//
// Change History:
// - 2025-08-15 v0.1.0: Initial implementation

package toml

import (
	"encoding/json"
	"reflect"
	"testing"

	burntsushi "github.com/BurntSushi/toml"
	coalogerror "github.com/msto63/coalog/core/error"
)

// parseClean parses input and fails the test on any diagnostic
func parseClean(t *testing.T, input string) *Document {
	t.Helper()
	doc, diags := Parse(input)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	return doc
}

func TestParseBasicDocument(t *testing.T) {
	doc := parseClean(t, `
title = "coalog"
port = 8080
ratio = 0.75
active = true

[server]
host = "localhost"
timeout = 30

[server.limits]
max-connections = 100
`)
	want := map[string]interface{}{
		"title":  "coalog",
		"port":   int64(8080),
		"ratio":  0.75,
		"active": true,
		"server": map[string]interface{}{
			"host":    "localhost",
			"timeout": int64(30),
			"limits": map[string]interface{}{
				"max-connections": int64(100),
			},
		},
	}
	if got := doc.Root().Untyped(); !reflect.DeepEqual(got, want) {
		t.Errorf("document = %#v, want %#v", got, want)
	}
}

func TestParseDottedKeys(t *testing.T) {
	doc := parseClean(t, "server.net.port = 443\nserver.net.tls = true\nserver.name = \"edge\"\n")
	if v, ok := doc.Get("server", "net", "port"); !ok {
		t.Fatal("server.net.port not found")
	} else if n, _ := v.AsInteger(); n != 443 {
		t.Errorf("port = %d, want 443", n)
	}
	if v, ok := doc.Get("server", "name"); !ok {
		t.Fatal("server.name not found")
	} else if s, _ := v.AsString(); s != "edge" {
		t.Errorf("name = %q, want edge", s)
	}
}

func TestParseQuotedKeys(t *testing.T) {
	doc := parseClean(t, "\"spaced key\" = 1\n'dotted.key' = 2\n\"\" = 3\n")
	root := doc.Root()
	for _, key := range []string{"spaced key", "dotted.key", ""} {
		if !root.Has(key) {
			t.Errorf("key %q missing", key)
		}
	}
}

func TestParseArrays(t *testing.T) {
	doc := parseClean(t, `
ports = [8001, 8002, 8003]
mixed = ["a", 1, true]
nested = [[1, 2], [3]]
trailing = [1, 2,]
multiline = [
    "first",
    "second",
]
empty = []
`)
	v, ok := doc.Get("ports")
	if !ok || len(v.Items()) != 3 {
		t.Fatalf("ports = %v", v)
	}
	if n, _ := v.Items()[2].AsInteger(); n != 8003 {
		t.Errorf("ports[2] = %d, want 8003", n)
	}
	if v, _ := doc.Get("nested"); len(v.Items()) != 2 || len(v.Items()[0].Items()) != 2 {
		t.Errorf("nested = %v", v)
	}
	if v, _ := doc.Get("trailing"); len(v.Items()) != 2 {
		t.Errorf("trailing = %v", v)
	}
	if v, _ := doc.Get("multiline"); len(v.Items()) != 2 {
		t.Errorf("multiline = %v", v)
	}
	if v, _ := doc.Get("empty"); len(v.Items()) != 0 {
		t.Errorf("empty = %v", v)
	}
}

func TestParseInlineTables(t *testing.T) {
	doc := parseClean(t, "point = {x = 1, y = 2}\nname = {first = \"a\", address.city = \"b\"}\nnothing = {}\n")
	tbl, ok := doc.Root().Table("point")
	if !ok {
		t.Fatal("point is not a table")
	}
	if v, _ := tbl.Value("x"); v == nil {
		t.Error("point.x missing")
	}
	name, _ := doc.Root().Table("name")
	if addr, ok := name.Table("address"); !ok {
		t.Error("dotted key inside inline table not resolved")
	} else if v, _ := addr.Value("city"); v == nil {
		t.Error("name.address.city missing")
	}
	if nothing, ok := doc.Root().Table("nothing"); !ok || nothing.Len() != 0 {
		t.Errorf("nothing = %v", nothing)
	}
}

func TestParseArrayOfTables(t *testing.T) {
	doc := parseClean(t, `
[[targets]]
name = "file"

[[targets]]
name = "console"
color = true
`)
	tables, ok := doc.Root().Tables("targets")
	if !ok || len(tables) != 2 {
		t.Fatalf("targets = %v, want two tables", tables)
	}
	if v, _ := tables[1].Value("name"); v == nil {
		t.Fatal("second target has no name")
	} else if s, _ := v.AsString(); s != "console" {
		t.Errorf("second name = %q, want console", s)
	}
}

func TestParseSubtableOfArrayElement(t *testing.T) {
	doc := parseClean(t, `
[[fruit]]
name = "apple"

[fruit.physical]
color = "red"

[[fruit]]
name = "banana"
`)
	tables, _ := doc.Root().Tables("fruit")
	if len(tables) != 2 {
		t.Fatalf("fruit has %d elements, want 2", len(tables))
	}
	phys, ok := tables[0].Table("physical")
	if !ok {
		t.Fatal("fruit.physical must attach to the first element")
	}
	if v, _ := phys.Value("color"); v == nil {
		t.Error("fruit.physical.color missing")
	}
	if tables[1].Has("physical") {
		t.Error("second element must not carry the first element's subtable")
	}
}

func TestParseKeyOrderPreserved(t *testing.T) {
	doc := parseClean(t, "zebra = 1\nalpha = 2\nmiddle = 3\n")
	want := []string{"zebra", "alpha", "middle"}
	if got := doc.Root().Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("keys = %v, want %v", got, want)
	}
}

func TestParseComments(t *testing.T) {
	doc := parseClean(t, `
# full line comment
key = "value" # trailing comment
[section] # after header
inner = 1
`)
	if v, ok := doc.Get("key"); !ok {
		t.Fatal("key missing")
	} else if s, _ := v.AsString(); s != "value" {
		t.Errorf("key = %q", s)
	}
	if _, ok := doc.Get("section", "inner"); !ok {
		t.Error("section.inner missing")
	}
}

// TestParseAgainstReferenceDecoder parses a fixture with this package and
// with an independent decoder and compares the resulting trees through a
// canonical JSON rendering.
func TestParseAgainstReferenceDecoder(t *testing.T) {
	const fixture = `
title = "comparison"
count = 42
scale = 1.5
enabled = false
tags = ["a", "b", "c"]
matrix = [[1, 2], [3, 4]]

[owner]
name = "msto"
"quoted key" = "works"

[owner.deep]
level = 3

[database]
ports = [5432, 5433]
settings = {pool = 10, debug = true}
`
	doc, diags := Parse(fixture)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}

	var reference map[string]interface{}
	if err := burntsushi.Unmarshal([]byte(fixture), &reference); err != nil {
		t.Fatalf("reference decoder rejected fixture: %v", err)
	}

	got, err := json.Marshal(doc.Root().Untyped())
	if err != nil {
		t.Fatalf("marshal own tree: %v", err)
	}
	want, err := json.Marshal(reference)
	if err != nil {
		t.Fatalf("marshal reference tree: %v", err)
	}
	if string(got) != string(want) {
		t.Errorf("trees differ:\n got: %s\nwant: %s", got, want)
	}
}

func TestParseStatementErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  coalogerror.Code
		pos   Position
	}{
		{"equal without key", "= 1\n", CodeKeyOrTableExpected, Position{1, 1}},
		{"key without equal", "key\n", CodeEqualExpected, Position{1, 4}},
		{"key without value", "key =\n", CodeValueExpected, Position{1, 6}},
		{"two dots in key", "a..b = 1\n", CodeTwoDotsWithinKey, Position{1, 3}},
		{"trailing dot in key", "a. = 1\n", CodeTrailingDotInKey, Position{1, 4}},
		{"unseparated key parts", "a b = 1\n", CodeUnseparatedKeyParts, Position{1, 3}},
		{"value starting with dot", "a = .5\n", CodeInvalidValueStart, Position{1, 5}},
		{"junk after value", "a = 1 b = 2\n", CodeNoLineBreakAfterKeyValue, Position{1, 7}},
		{"junk after header", "[a] b = 1\n", CodeNoLineBreakAfterHeader, Position{1, 5}},
		{"empty header", "[]\n", CodeKeyExpected, Position{1, 2}},
		{"unclosed header", "[a\n", CodeClosingBracketExpected, Position{1, 3}},
		{"single bracket closing array header", "[[a]\n", CodeClosingBracketExpected, Position{1, 4}},
		{"blank between array header brackets", "[ [a]]\n", CodeWhitespaceBetweenBrackets, Position{1, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, diags := Parse(tt.input)
			if len(diags) != 1 {
				t.Fatalf("diagnostics = %v, want exactly one", diags)
			}
			if diags[0].Code != tt.code {
				t.Errorf("code = %v, want %v", diags[0].Code, tt.code)
			}
			if diags[0].Pos != tt.pos {
				t.Errorf("pos = %s, want %s", diags[0].Pos, tt.pos)
			}
		})
	}
}

func TestParseArrayErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  coalogerror.Code
	}{
		{"leading comma", "a = [,1]\n", CodeLeadingSeparator},
		{"double comma", "a = [1,,2]\n", CodeDuplicateSeparatorToken},
		{"missing comma", "a = [1 2]\n", CodeUnseparatedArrayItems},
		{"unterminated", "a = [1, 2", CodeUnterminatedArray},
		{"stray token", "a = [1, =]\n", CodeInvalidArrayToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, diags := Parse(tt.input)
			if len(diags) != 1 || diags[0].Code != tt.code {
				t.Errorf("codes = %v, want %v", codesOf(diags), tt.code)
			}
		})
	}
}

func TestParseInlineTableErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  coalogerror.Code
	}{
		{"leading comma", "a = {,x = 1}\n", CodeLeadingSeparator},
		{"double comma", "a = {x = 1,, y = 2}\n", CodeDuplicateSeparatorToken},
		{"trailing comma", "a = {x = 1,}\n", CodeTrailingSeparator},
		{"missing comma", "a = {x = 1 y = 2}\n", CodeCommaExpected},
		{"line break inside", "a = {x = 1\n}\n", CodeUnterminatedInlineTable},
		{"unterminated at end of input", "a = {x = 1", CodeUnterminatedInlineTable},
		{"duplicate key", "a = {x = 1, x = 2}\n", CodeKeyAlreadyInUse},
		{"stray token", "a = {x = 1 = 2}\n", CodeCommaOrRBraceExpected},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, diags := Parse(tt.input)
			if len(diags) != 1 || diags[0].Code != tt.code {
				t.Errorf("codes = %v, want %v", codesOf(diags), tt.code)
			}
		})
	}
}

func TestParseBindingConflicts(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  coalogerror.Code
		arg   string
	}{
		{"duplicate value key", "a = 1\na = 2\n", CodeKeyAlreadyInUse, "'a'"},
		{"value key reused as table header", "a = 1\n[a]\n", CodeKeyUsedForSimpleValue, "'a'"},
		{"value key reused as array header", "a = 1\n[[a]]\n", CodeKeyUsedForSimpleValue, "'a'"},
		{"table redefined", "[a]\n[a]\n", CodeTableExists, "'a'"},
		{"dotted table redefined", "[a.b]\n[a.b]\n", CodeTableExists, "'a.b'"},
		{"table key assigned a value", "a.b = 1\na = 2\n", CodeKeyUsedForTable, "'a'"},
		{"table key assigned", "[a]\nx = 1\n[b]\n[a.x]\n", CodeKeyUsedForSimpleValue, "'a.x'"},
		{"table reused as array header", "[a]\n[[a]]\n", CodeKeyUsedForTable, "'a'"},
		{"array of tables reused as table header", "[[a]]\n[a]\n", CodeKeyUsedForArrayOfTables, "'a'"},
		{"value array extended by header", "a = [1]\n[[a]]\n", CodeKeyUsedForValueArray, "'a'"},
		{"value array opened as table", "a = [1]\n[a]\n", CodeKeyUsedForValueArray, "'a'"},
		{"value under value", "a = 1\na.b = 2\n", CodeNotATable, "'a'"},
		{"header through value", "a = 1\n[a.b]\n", CodeNotATable, "'a'"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, diags := Parse(tt.input)
			if len(diags) != 1 {
				t.Fatalf("diagnostics = %v, want exactly one", diags)
			}
			if diags[0].Code != tt.code {
				t.Errorf("code = %v, want %v", diags[0].Code, tt.code)
			}
			if len(diags[0].Args) != 1 || diags[0].Args[0] != tt.arg {
				t.Errorf("args = %v, want [%s]", diags[0].Args, tt.arg)
			}
		})
	}
}

func TestParseImplicitTableBecomesExplicit(t *testing.T) {
	// [a.b] creates a as an implicit table; a later [a] defines it
	_, diags := Parse("[a.b]\n[a]\nx = 1\n")
	if len(diags) != 0 {
		t.Errorf("unexpected diagnostics: %v", diags)
	}
	// but only once
	_, diags = Parse("[a.b]\n[a]\n[a]\n")
	if len(diags) != 1 || diags[0].Code != CodeTableExists {
		t.Errorf("codes = %v, want %v", codesOf(diags), CodeTableExists)
	}
}

func TestParseInlineTablesAreFrozen(t *testing.T) {
	t.Run("dotted key extension", func(t *testing.T) {
		_, diags := Parse("a = {x = 1}\na.y = 2\n")
		if len(diags) != 1 || diags[0].Code != CodeNotATable {
			t.Errorf("codes = %v, want %v", codesOf(diags), CodeNotATable)
		}
	})
	t.Run("header extension", func(t *testing.T) {
		_, diags := Parse("a = {x = 1}\n[a.y]\n")
		if len(diags) != 1 || diags[0].Code != CodeNotATable {
			t.Errorf("codes = %v, want %v", codesOf(diags), CodeNotATable)
		}
	})
	t.Run("header redefinition", func(t *testing.T) {
		_, diags := Parse("a = {x = 1}\n[a]\n")
		if len(diags) != 1 || diags[0].Code != CodeKeyUsedForSimpleValue {
			t.Errorf("codes = %v, want %v", codesOf(diags), CodeKeyUsedForSimpleValue)
		}
	})
}

func TestParseCollectsMultipleErrors(t *testing.T) {
	doc, diags := Parse(`port = 80x
host = "ok"
= 5
a..b = 1
level = 3
`)
	wantCodes := []coalogerror.Code{
		CodeInvalidNumDateTimeChar,
		CodeKeyOrTableExpected,
		CodeTwoDotsWithinKey,
	}
	if got := codesOf(diags); !reflect.DeepEqual(got, wantCodes) {
		t.Fatalf("codes = %v, want %v", got, wantCodes)
	}
	// statements after a failure still parse
	if _, ok := doc.Get("host"); !ok {
		t.Error("host lost after resynchronization")
	}
	if _, ok := doc.Get("level"); !ok {
		t.Error("level lost after resynchronization")
	}
	if doc.Root().Has("port") {
		t.Error("failed binding must not appear in the document")
	}
}

func TestParseFailedHeaderDetachesFollowingPairs(t *testing.T) {
	doc, diags := Parse(`[a]
x = 1
[a]
y = 2
[b]
z = 3
`)
	if len(diags) != 1 || diags[0].Code != CodeTableExists {
		t.Fatalf("codes = %v, want %v", codesOf(diags), CodeTableExists)
	}
	// y belongs to the rejected header and must not leak into [a]
	if _, ok := doc.Get("a", "y"); ok {
		t.Error("binding under a failed header leaked into the document")
	}
	if _, ok := doc.Get("a", "x"); !ok {
		t.Error("a.x missing")
	}
	if _, ok := doc.Get("b", "z"); !ok {
		t.Error("parsing did not recover for the next header")
	}
}

func TestParseDiagnosticsStayInSourceOrder(t *testing.T) {
	_, diags := Parse("bad key = 1\na = 1\na = 2\n")
	if len(diags) < 2 {
		t.Fatalf("diagnostics = %v, want at least two", diags)
	}
	last := Position{}
	for _, d := range diags {
		if d.Pos.Line < last.Line {
			t.Errorf("diagnostic order violated: %s after %s", d.Pos, last)
		}
		last = d.Pos
	}
}

func TestParseAlwaysReturnsDocument(t *testing.T) {
	doc, diags := Parse("!!!\n===\n")
	if doc == nil {
		t.Fatal("document must never be nil")
	}
	if !HasErrors(diags) {
		t.Error("expected error diagnostics")
	}
	if doc.Root().Len() != 0 {
		t.Errorf("document = %v, want empty root", doc.Root())
	}
}

func TestParseEmptyInputs(t *testing.T) {
	for _, input := range []string{"", "\n\n\n", "# only a comment\n", "   \t  "} {
		doc, diags := Parse(input)
		if len(diags) != 0 {
			t.Errorf("%q: unexpected diagnostics: %v", input, diags)
		}
		if doc.Root().Len() != 0 {
			t.Errorf("%q: root = %v, want empty", input, doc.Root())
		}
	}
}

func TestParseCRLFDocument(t *testing.T) {
	doc := parseClean(t, "a = 1\r\n[t]\r\nb = 2\r\n")
	if _, ok := doc.Get("t", "b"); !ok {
		t.Error("t.b missing in CRLF document")
	}
}
