// File: doc.go
// Title: Package Documentation for config
// Description: Package overview and usage examples.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-19
// Modified: 2025-08-19
//
// Change History:
// - 2025-08-19 v0.1.0: Initial implementation

// Package config builds the coalog runtime model from a parsed
// configuration document.
//
// Features:
//   - Typed model: system identity, record formats, buffer and rollover
//     policies, output resources, and trigger-activated modes
//   - Best-effort interpretation: unknown sections, unknown keys, and
//     mistyped or out-of-range values produce W-Cfg-* warnings while
//     the affected setting keeps its default
//   - Load never leaves the caller without a model; even a broken file
//     yields the interpretable parts plus diagnostics
//   - Polling hot reload through Watcher with registered handlers
//
// Usage:
//
//	model, diags, err := config.Load("coalog.toml")
//	if err != nil {
//		// the model still holds defaults plus whatever parsed
//	}
//	for _, d := range diags {
//		fmt.Println(renderer.Render(d))
//	}
//
//	w := config.NewWatcher("coalog.toml", 0)
//	w.OnReload(func(m *config.Model, diags []toml.Diagnostic) {
//		// apply the new model
//	})
//	_ = w.Watch()
//	defer w.StopWatch()
package config
