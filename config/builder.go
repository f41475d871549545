// File: builder.go
// Title: Configuration Model Builder
// Description: Interprets a parsed configuration document into the typed
//              model. Semantic problems never fail the build; they become
//              W-Cfg-* warnings and the affected setting keeps its default.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-19
// Modified: 2025-08-19
//
// Change History:
// - 2025-08-19 v0.1.0: Initial implementation

package config

import (
	"fmt"

	"github.com/msto63/coalog/config/toml"
	coalogerror "github.com/msto63/coalog/core/error"
	"github.com/msto63/coalog/core/log"
)

// builder walks a document and fills a model, collecting warnings.
type builder struct {
	model *Model
	warns []toml.Diagnostic
}

// Build interprets the document into a model. The returned diagnostics
// are warnings only; the model is always usable.
func Build(doc *toml.Document) (*Model, []toml.Diagnostic) {
	b := &builder{model: Defaults()}
	root := doc.Root()
	for _, section := range root.Keys() {
		line := root.Line(section)
		switch section {
		case "system":
			b.systemSection(root, line)
		case "formats":
			b.formatsSection(root, line)
		case "policies":
			b.policiesSection(root, line)
		case "resources":
			b.resourcesSection(root, line)
		case "modes":
			b.modesSection(root, line)
		default:
			b.warn(line, CodeUnknownSection, quote(section))
		}
	}
	return b.model, b.warns
}

func (b *builder) warn(line int, code coalogerror.Code, args ...string) {
	b.warns = append(b.warns, toml.Diagnostic{
		Severity: coalogerror.SeverityWarning,
		Code:     code,
		Pos:      toml.Position{Line: line, Column: 1},
		Args:     args,
	})
}

func quote(s string) string {
	return "'" + s + "'"
}

// sectionTable fetches a section as a table, warning when the key is
// bound to something else.
func (b *builder) sectionTable(root *toml.Table, section string, line int) (*toml.Table, bool) {
	tbl, ok := root.Table(section)
	if !ok {
		b.warn(line, CodeWrongValueType, quote(section), "table")
		return nil, false
	}
	return tbl, true
}

// stringKey reads a string value, warning on a type mismatch. The
// second result reports whether a usable value was found.
func (b *builder) stringKey(tbl *toml.Table, path, key string) (string, bool) {
	v, ok := tbl.Value(key)
	if !ok {
		return "", false
	}
	s, ok := v.AsString()
	if !ok {
		b.warn(tbl.Line(key), CodeWrongValueType, quote(path+"."+key), "string")
		return "", false
	}
	return s, true
}

// intKey reads an integer value, warning on a type mismatch.
func (b *builder) intKey(tbl *toml.Table, path, key string) (int64, bool) {
	v, ok := tbl.Value(key)
	if !ok {
		return 0, false
	}
	n, ok := v.AsInteger()
	if !ok {
		b.warn(tbl.Line(key), CodeWrongValueType, quote(path+"."+key), "integer")
		return 0, false
	}
	return n, true
}

func (b *builder) systemSection(root *toml.Table, line int) {
	tbl, ok := b.sectionTable(root, "system", line)
	if !ok {
		return
	}
	sys := &b.model.System
	for _, key := range tbl.Keys() {
		switch key {
		case "app-id":
			if s, ok := b.stringKey(tbl, "system", key); ok {
				sys.AppID = s
			}
		case "app-name":
			if s, ok := b.stringKey(tbl, "system", key); ok {
				sys.AppName = s
			}
		case "version":
			if s, ok := b.stringKey(tbl, "system", key); ok {
				sys.Version = s
			}
		case "output-path":
			if s, ok := b.stringKey(tbl, "system", key); ok {
				sys.OutputPath = s
			}
		case "fallback-path":
			if s, ok := b.stringKey(tbl, "system", key); ok {
				sys.FallbackPath = s
			}
		default:
			b.warn(tbl.Line(key), CodeUnknownKey, quote("system."+key))
		}
	}
}

func (b *builder) formatsSection(root *toml.Table, line int) {
	tbl, ok := b.sectionTable(root, "formats", line)
	if !ok {
		return
	}
	for _, name := range tbl.Keys() {
		sub, ok := tbl.Table(name)
		if !ok {
			b.warn(tbl.Line(name), CodeWrongValueType, quote("formats."+name), "table")
			continue
		}
		b.model.Formats[name] = b.format(name, sub)
	}
}

func (b *builder) format(name string, tbl *toml.Table) *Format {
	path := "formats." + name
	format := &Format{
		Name:       name,
		Pattern:    log.DefaultPattern,
		TimeFormat: log.DefaultTimeFormat,
		Triggers:   log.AllTriggers(),
	}
	for _, key := range tbl.Keys() {
		switch key {
		case "pattern":
			if s, ok := b.stringKey(tbl, path, key); ok {
				b.checkPattern(s, tbl.Line(key))
				format.Pattern = s
			}
		case "time-format":
			if s, ok := b.stringKey(tbl, path, key); ok {
				format.TimeFormat = s
			}
		case "triggers":
			if s, ok := b.stringKey(tbl, path, key); ok {
				format.Triggers = b.triggers(s, tbl.Line(key))
			}
		default:
			b.warn(tbl.Line(key), CodeUnknownKey, quote(path+"."+key))
		}
	}
	return format
}

// checkPattern warns about $-variables the formatter does not know.
// The pattern is still used; the formatter copies unknown variables
// verbatim.
func (b *builder) checkPattern(pattern string, line int) {
	for i := 0; i < len(pattern); i++ {
		if pattern[i] != '$' {
			continue
		}
		j := i + 1
		for j < len(pattern) && isLetter(pattern[j]) {
			j++
		}
		if j == i+1 {
			continue
		}
		if name := pattern[i:j]; !log.IsFormatVariable(name) {
			b.warn(line, CodeInvalidFormatVar, quote(name))
		}
		i = j - 1
	}
}

func isLetter(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z'
}

// triggers parses a trigger string, warning once per unknown character.
// An empty result falls back to all triggers.
func (b *builder) triggers(s string, line int) log.TriggerSet {
	set, unknown := log.ParseTriggers(s)
	for _, ch := range unknown {
		b.warn(line, CodeInvalidTriggerChar, quote(string(ch)))
	}
	if set.IsEmpty() {
		return log.AllTriggers()
	}
	return set
}

func (b *builder) policiesSection(root *toml.Table, line int) {
	tbl, ok := b.sectionTable(root, "policies", line)
	if !ok {
		return
	}
	for _, name := range tbl.Keys() {
		sub, ok := tbl.Table(name)
		if !ok {
			b.warn(tbl.Line(name), CodeWrongValueType, quote("policies."+name), "table")
			continue
		}
		b.model.Policies[name] = b.policy(name, sub)
	}
}

func (b *builder) policy(name string, tbl *toml.Table) *Policy {
	path := "policies." + name
	policy := &Policy{
		Name:       name,
		BufferSize: 128,
		Rollover:   Rollover{Unit: RolloverNone},
	}
	for _, key := range tbl.Keys() {
		switch key {
		case "buffer-size":
			if n, ok := b.intKey(tbl, path, key); ok {
				if n < 1 || n > 1<<20 {
					b.warn(tbl.Line(key), CodeValueOutOfRange,
						quote(path+".buffer-size"), fmt.Sprintf("%d", policy.BufferSize))
					continue
				}
				policy.BufferSize = int(n)
			}
		case "rollover":
			sub, ok := tbl.Table(key)
			if !ok {
				b.warn(tbl.Line(key), CodeWrongValueType, quote(path+".rollover"), "table")
				continue
			}
			policy.Rollover = b.rollover(path+".rollover", sub)
		default:
			b.warn(tbl.Line(key), CodeUnknownKey, quote(path+"."+key))
		}
	}
	return policy
}

func (b *builder) rollover(path string, tbl *toml.Table) Rollover {
	roll := Rollover{Unit: RolloverNone, Every: 1}
	for _, key := range tbl.Keys() {
		switch key {
		case "unit":
			s, ok := b.stringKey(tbl, path, key)
			if !ok {
				continue
			}
			unit := RolloverUnit(s)
			if !knownRolloverUnits[unit] {
				b.warn(tbl.Line(key), CodeUnknownRolloverUnit, quote(s))
				continue
			}
			roll.Unit = unit
		case "every":
			if n, ok := b.intKey(tbl, path, key); ok {
				if n < 1 {
					b.warn(tbl.Line(key), CodeValueOutOfRange,
						quote(path+".every"), fmt.Sprintf("%d", roll.Every))
					continue
				}
				roll.Every = int(n)
			}
		case "keep":
			if n, ok := b.intKey(tbl, path, key); ok {
				if n < 0 {
					b.warn(tbl.Line(key), CodeValueOutOfRange,
						quote(path+".keep"), fmt.Sprintf("%d", roll.Keep))
					continue
				}
				roll.Keep = int(n)
			}
		case "max-size-kb":
			if n, ok := b.intKey(tbl, path, key); ok {
				if n < 1 {
					b.warn(tbl.Line(key), CodeValueOutOfRange,
						quote(path+".max-size-kb"), fmt.Sprintf("%d", roll.MaxSizeKB))
					continue
				}
				roll.MaxSizeKB = n
			}
		default:
			b.warn(tbl.Line(key), CodeUnknownKey, quote(path+"."+key))
		}
	}
	return roll
}

func (b *builder) resourcesSection(root *toml.Table, line int) {
	tables, ok := root.Tables("resources")
	if !ok {
		b.warn(line, CodeWrongValueType, quote("resources"), "array of tables")
		return
	}
	// A configured resources section replaces the default console sink.
	b.model.Resources = nil
	seen := make(map[string]bool)
	for i, tbl := range tables {
		res := b.resource(i, tbl)
		if res == nil {
			continue
		}
		if seen[res.Name] {
			b.warn(line, CodeDuplicateResource, quote(res.Name))
			continue
		}
		seen[res.Name] = true
		b.model.Resources = append(b.model.Resources, res)
	}
}

func (b *builder) resource(index int, tbl *toml.Table) *Resource {
	path := "resources"
	res := &Resource{
		Name:   fmt.Sprintf("resource-%d", index+1),
		Type:   ResourceConsole,
		Format: DefaultFormatName,
		Policy: DefaultPolicyName,
		Level:  log.LevelInfo,
	}
	for _, key := range tbl.Keys() {
		switch key {
		case "name":
			if s, ok := b.stringKey(tbl, path, key); ok {
				res.Name = s
			}
		case "type":
			s, ok := b.stringKey(tbl, path, key)
			if !ok {
				continue
			}
			switch ResourceType(s) {
			case ResourceConsole, ResourceFile, ResourceMemory:
				res.Type = ResourceType(s)
			default:
				b.warn(tbl.Line(key), CodeWrongValueType,
					quote(path+".type"), "console, file or memory")
			}
		case "target":
			if s, ok := b.stringKey(tbl, path, key); ok {
				res.Target = s
			}
		case "format":
			if s, ok := b.stringKey(tbl, path, key); ok {
				res.Format = s
			}
		case "policy":
			if s, ok := b.stringKey(tbl, path, key); ok {
				res.Policy = s
			}
		case "level":
			s, ok := b.stringKey(tbl, path, key)
			if !ok {
				continue
			}
			level, err := log.ParseLevel(s)
			if err != nil {
				b.warn(tbl.Line(key), CodeInvalidLevel, quote(s), res.Level.String())
				continue
			}
			res.Level = level
		default:
			b.warn(tbl.Line(key), CodeUnknownKey, quote(path+"."+key))
		}
	}
	if res.Type == ResourceFile && res.Target == "" {
		line := tbl.Line("name")
		if line == 0 {
			if keys := tbl.Keys(); len(keys) > 0 {
				line = tbl.Line(keys[0])
			}
		}
		b.warn(line, CodeResourceWithoutTarget, quote(res.Name))
		return nil
	}
	return res
}

func (b *builder) modesSection(root *toml.Table, line int) {
	tables, ok := root.Tables("modes")
	if !ok {
		b.warn(line, CodeWrongValueType, quote("modes"), "array of tables")
		return
	}
	for i, tbl := range tables {
		b.model.Modes = append(b.model.Modes, b.mode(i, tbl))
	}
}

func (b *builder) mode(index int, tbl *toml.Table) *Mode {
	path := "modes"
	mode := &Mode{Name: fmt.Sprintf("mode-%d", index+1)}
	for _, key := range tbl.Keys() {
		switch key {
		case "name":
			if s, ok := b.stringKey(tbl, path, key); ok {
				mode.Name = s
			}
		case "triggers":
			if s, ok := b.stringKey(tbl, path, key); ok {
				mode.Triggers = b.triggers(s, tbl.Line(key))
			}
		case "resources":
			v, ok := tbl.Value(key)
			if !ok {
				continue
			}
			if v.Kind() != toml.KindArray {
				b.warn(tbl.Line(key), CodeWrongValueType, quote(path+".resources"), "array")
				continue
			}
			for _, item := range v.Items() {
				s, ok := item.AsString()
				if !ok {
					b.warn(tbl.Line(key), CodeWrongValueType, quote(path+".resources"), "string")
					continue
				}
				mode.Resources = append(mode.Resources, s)
			}
		default:
			b.warn(tbl.Line(key), CodeUnknownKey, quote(path+"."+key))
		}
	}
	if mode.Triggers.IsEmpty() {
		mode.Triggers = log.AllTriggers()
	}
	return mode
}
