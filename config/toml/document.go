// File: document.go
// Title: Document and Table Model
// Description: Implements the document tree assembled by the parser. Tables
//              are ordered mappings whose entries carry a binding kind and an
//              explicit flag; all duplicate-key and kind-conflict rules are
//              centralized here so the parser only forwards the resulting
//              diagnostic codes.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-14
// Modified: 2025-08-14
//
// Change History:
// - 2025-08-14 v0.1.0: Initial implementation with binding-kind conflicts

package toml

import (
	"fmt"
	"strings"

	coalogerror "github.com/msto63/coalog/core/error"
)

// bindingKind tags how a table entry was bound
type bindingKind int

const (
	// bindValue is a simple value, including inline tables and all other
	// values written on the right side of '='
	bindValue bindingKind = iota

	// bindValueArray is an array written in value syntax, kept separate
	// from bindValue for collision diagnostics
	bindValueArray

	// bindTable is a table created by a header or a dotted-key prefix
	bindTable

	// bindArrayOfTables is a sequence of tables built from repeated
	// [[path]] headers
	bindArrayOfTables
)

// entry is one binding within a table
type entry struct {
	kind     bindingKind
	explicit bool
	value    *Value   // bindValue, bindValueArray
	table    *Table   // bindTable
	tables   []*Table // bindArrayOfTables
	line     int
}

// Table is an ordered mapping from simple key segment to a bound node
type Table struct {
	order   []string
	entries map[string]*entry
}

// NewTable creates an empty table
func NewTable() *Table {
	return &Table{entries: make(map[string]*entry)}
}

// insert adds a new entry; the key must not exist yet
func (t *Table) insert(key string, e *entry) {
	t.order = append(t.order, key)
	t.entries[key] = e
}

// Len returns the number of entries
func (t *Table) Len() int {
	return len(t.entries)
}

// Keys returns the keys in insertion order
func (t *Table) Keys() []string {
	return append([]string(nil), t.order...)
}

// Has reports whether the table binds the given key
func (t *Table) Has(key string) bool {
	_, ok := t.entries[key]
	return ok
}

// Line returns the source line on which key was first bound, or 0 when
// the table has no such entry.
func (t *Table) Line(key string) int {
	e, ok := t.entries[key]
	if !ok {
		return 0
	}
	return e.line
}

// Value returns a value view of the entry bound to key. Tables appear as
// table values, arrays of tables as arrays of table values.
func (t *Table) Value(key string) (*Value, bool) {
	e, ok := t.entries[key]
	if !ok {
		return nil, false
	}
	switch e.kind {
	case bindValue, bindValueArray:
		return e.value, true
	case bindTable:
		return TableValue(e.table), true
	case bindArrayOfTables:
		items := make([]*Value, len(e.tables))
		for i, tbl := range e.tables {
			items[i] = TableValue(tbl)
		}
		return ArrayValue(items), true
	default:
		return nil, false
	}
}

// Table returns the child table bound to key, looking through both header
// tables and inline table values
func (t *Table) Table(key string) (*Table, bool) {
	e, ok := t.entries[key]
	if !ok {
		return nil, false
	}
	switch {
	case e.kind == bindTable:
		return e.table, true
	case e.kind == bindValue && e.value.Kind() == KindTable:
		return e.value.Table(), true
	default:
		return nil, false
	}
}

// Tables returns the element list of an array of tables bound to key
func (t *Table) Tables(key string) ([]*Table, bool) {
	e, ok := t.entries[key]
	if !ok || e.kind != bindArrayOfTables {
		return nil, false
	}
	return append([]*Table(nil), e.tables...), true
}

// Untyped converts the table into plain nested Go maps and slices
func (t *Table) Untyped() map[string]interface{} {
	out := make(map[string]interface{}, len(t.order))
	for _, key := range t.order {
		e := t.entries[key]
		switch e.kind {
		case bindValue, bindValueArray:
			out[key] = e.value.Untyped()
		case bindTable:
			out[key] = e.table.Untyped()
		case bindArrayOfTables:
			items := make([]interface{}, len(e.tables))
			for i, tbl := range e.tables {
				items[i] = tbl.Untyped()
			}
			out[key] = items
		}
	}
	return out
}

// String renders the table for debugging output
func (t *Table) String() string {
	parts := make([]string, 0, len(t.order))
	for _, key := range t.order {
		if v, ok := t.Value(key); ok {
			parts = append(parts, fmt.Sprintf("%s = %s", key, v))
		}
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// navigate resolves prefix segments, creating implicit tables as needed.
// Arrays of tables are entered at their last element. A segment bound to
// anything other than a table stops navigation.
func (t *Table) navigate(prefix []string, line int) (*Table, coalogerror.Code, string) {
	cur := t
	for i, seg := range prefix {
		e, ok := cur.entries[seg]
		if !ok {
			child := NewTable()
			cur.insert(seg, &entry{kind: bindTable, table: child, line: line})
			cur = child
			continue
		}
		switch e.kind {
		case bindTable:
			cur = e.table
		case bindArrayOfTables:
			cur = e.tables[len(e.tables)-1]
		default:
			return nil, CodeNotATable, strings.Join(prefix[:i+1], ".")
		}
	}
	return cur, "", ""
}

// setValue binds the final key segment to a value, applying the collision
// rules for value bindings
func (t *Table) setValue(key Key, v *Value, line int) (coalogerror.Code, string) {
	target, code, arg := t.navigate(key.Prefix(), line)
	if code != "" {
		return code, arg
	}

	last := key.Last()
	if e, ok := target.entries[last]; ok {
		switch e.kind {
		case bindTable:
			return CodeKeyUsedForTable, key.String()
		case bindArrayOfTables:
			return CodeKeyUsedForArrayOfTables, key.String()
		case bindValueArray:
			return CodeKeyUsedForValueArray, key.String()
		default:
			return CodeKeyAlreadyInUse, key.String()
		}
	}

	kind := bindValue
	if v.Kind() == KindArray {
		kind = bindValueArray
	}
	target.insert(last, &entry{kind: kind, explicit: true, value: v, line: line})
	return "", ""
}

// Document is the root table plus the statement-level selection state
type Document struct {
	root *Table

	// current receives key-value pairs; headers move it
	current *Table
}

// NewDocument creates an empty document with the root table selected
func NewDocument() *Document {
	root := NewTable()
	return &Document{root: root, current: root}
}

// Root returns the root table
func (d *Document) Root() *Table {
	return d.root
}

// Get resolves a path of key segments from the root
func (d *Document) Get(path ...string) (*Value, bool) {
	cur := d.root
	for i, seg := range path {
		if i == len(path)-1 {
			return cur.Value(seg)
		}
		next, ok := cur.Table(seg)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return nil, false
}

// setValue binds a key-value pair relative to the selected table
func (d *Document) setValue(key Key, v *Value, line int) (coalogerror.Code, string) {
	return d.current.setValue(key, v, line)
}

// openTable handles a [path] header: intermediate segments become implicit
// tables, the final segment becomes an explicit table exactly once
func (d *Document) openTable(key Key, line int) (coalogerror.Code, string) {
	target, code, arg := d.root.navigate(key.Prefix(), line)
	if code != "" {
		d.detach()
		return code, arg
	}

	last := key.Last()
	if e, ok := target.entries[last]; ok {
		switch e.kind {
		case bindTable:
			if e.explicit {
				d.detach()
				return CodeTableExists, key.String()
			}
			e.explicit = true
			d.current = e.table
			return "", ""
		case bindArrayOfTables:
			d.detach()
			return CodeKeyUsedForArrayOfTables, key.String()
		case bindValueArray:
			d.detach()
			return CodeKeyUsedForValueArray, key.String()
		default:
			d.detach()
			return CodeKeyUsedForSimpleValue, key.String()
		}
	}

	child := NewTable()
	target.insert(last, &entry{kind: bindTable, explicit: true, table: child, line: line})
	d.current = child
	return "", ""
}

// appendArrayTable handles a [[path]] header: each occurrence appends a
// fresh table to the array of tables at the path
func (d *Document) appendArrayTable(key Key, line int) (coalogerror.Code, string) {
	target, code, arg := d.root.navigate(key.Prefix(), line)
	if code != "" {
		d.detach()
		return code, arg
	}

	last := key.Last()
	if e, ok := target.entries[last]; ok {
		switch e.kind {
		case bindArrayOfTables:
			elem := NewTable()
			e.tables = append(e.tables, elem)
			d.current = elem
			return "", ""
		case bindTable:
			d.detach()
			return CodeKeyUsedForTable, key.String()
		case bindValueArray:
			d.detach()
			return CodeKeyUsedForValueArray, key.String()
		default:
			d.detach()
			return CodeKeyUsedForSimpleValue, key.String()
		}
	}

	elem := NewTable()
	target.insert(last, &entry{kind: bindArrayOfTables, explicit: true, tables: []*Table{elem}, line: line})
	d.current = elem
	return "", ""
}

// detach points the selection at a throwaway table after a failed header,
// so following key-value pairs neither land in the wrong table nor cause
// cascading conflicts
func (d *Document) detach() {
	d.current = NewTable()
}
