// File: diagnostic.go
// Title: Diagnostic Model
// Description: Defines the diagnostic record emitted by scanner and parser:
//              severity, stable code, source position and the ordered string
//              arguments for message-template substitution. Rendering into
//              human text is a pluggable external concern.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-13
// Modified: 2025-08-13
//
// Change History:
// - 2025-08-13 v0.1.0: Initial implementation

package toml

import (
	"fmt"

	coalogerror "github.com/msto63/coalog/core/error"
)

// Diagnostic is one scanner or parser finding
type Diagnostic struct {
	Severity coalogerror.Severity
	Code     coalogerror.Code
	Pos      Position

	// Args are substituted positionally into the localized template
	// for the code, e.g. the offending character or key name
	Args []string
}

// String renders the diagnostic in a locale-independent debug form
func (d Diagnostic) String() string {
	if len(d.Args) == 0 {
		return fmt.Sprintf("%s %s at %s", d.Severity.Marker(), d.Code, d.Pos)
	}
	return fmt.Sprintf("%s %s at %s %v", d.Severity.Marker(), d.Code, d.Pos, d.Args)
}

// Renderer maps a diagnostic to localized human text. Implementations live
// outside this package; the i18n message catalogs provide one.
type Renderer interface {
	Render(d Diagnostic) string
}

// HasErrors reports whether any diagnostic has error severity or worse
func HasErrors(diags []Diagnostic) bool {
	for _, d := range diags {
		if d.Severity.IsFatal() {
			return true
		}
	}
	return false
}

// collector accumulates diagnostics during one parse run. Scanner and
// parser share a single collector so that diagnostics stay in source order.
type collector struct {
	diags []Diagnostic
}

// errorAt records an error-severity diagnostic
func (c *collector) errorAt(pos Position, code coalogerror.Code, args ...string) {
	c.diags = append(c.diags, Diagnostic{
		Severity: coalogerror.SeverityError,
		Code:     code,
		Pos:      pos,
		Args:     args,
	})
}
