// File: renderer.go
// Title: Diagnostic Renderer
// Description: Renders configuration parser diagnostics into localized
//              human-readable lines through the message catalogs.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-15
// Modified: 2025-08-15
//
// Change History:
// - 2025-08-15 v0.1.0: Initial implementation

package i18n

import (
	"fmt"

	"github.com/msto63/coalog/config/toml"
	coalogerror "github.com/msto63/coalog/core/error"
)

// catalog keys for the severity words
const (
	keySeverityError   = "severity.error"
	keySeverityWarning = "severity.warning"
)

// DiagnosticRenderer renders parser diagnostics via a catalog manager.
// It satisfies the toml.Renderer interface.
type DiagnosticRenderer struct {
	manager *Manager
}

// NewDiagnosticRenderer creates a renderer bound to the given manager
func NewDiagnosticRenderer(m *Manager) *DiagnosticRenderer {
	return &DiagnosticRenderer{manager: m}
}

// Render produces one line of the form "severity code line:column message"
func (r *DiagnosticRenderer) Render(d toml.Diagnostic) string {
	return fmt.Sprintf("%s %s %s %s",
		r.severityWord(d.Severity),
		d.Code,
		d.Pos,
		r.manager.Message(d.Code, d.Args...))
}

// severityWord resolves the localized severity word
func (r *DiagnosticRenderer) severityWord(s coalogerror.Severity) string {
	key := keySeverityError
	if s == coalogerror.SeverityWarning {
		key = keySeverityWarning
	}
	r.manager.mu.RLock()
	word, ok := r.manager.lookup(key)
	r.manager.mu.RUnlock()
	if !ok {
		return s.String()
	}
	return word
}

var _ toml.Renderer = (*DiagnosticRenderer)(nil)
