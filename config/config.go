// File: config.go
// Title: Configuration Loading
// Description: Parses configuration text or files into the runtime model.
//              Parsing is best-effort: syntax diagnostics and semantic
//              warnings are collected, and a usable model is always
//              returned.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-19
// Modified: 2025-08-19
//
// Change History:
// - 2025-08-19 v0.1.0: Initial implementation

package config

import (
	"os"

	"github.com/msto63/coalog/config/toml"
	coalogerror "github.com/msto63/coalog/core/error"
)

// Parse builds a model from configuration text. The diagnostics hold
// syntax errors from the parser followed by semantic warnings from the
// builder; toml.HasErrors tells them apart.
func Parse(input string) (*Model, []toml.Diagnostic) {
	doc, diags := toml.Parse(input)
	model, warns := Build(doc)
	return model, append(diags, warns...)
}

// Load reads and parses a configuration file. The model is always
// usable: on a read failure it holds the defaults, and on syntax errors
// it holds everything that could still be interpreted. The returned
// error carries CodeConfigRead for I/O failures and CodeConfigIssues
// when the file contained syntax errors.
func Load(path string) (*Model, []toml.Diagnostic, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Defaults(), nil, coalogerror.Wrap(err, "reading configuration file").
			WithCode(coalogerror.CodeConfigRead).
			WithOperation("config.Load").
			WithArgs(path)
	}
	model, diags := Parse(string(raw))
	if info, err := os.Stat(path); err == nil {
		model.System.ChangeTime = info.ModTime()
	}
	if toml.HasErrors(diags) {
		return model, diags, coalogerror.New("configuration contains errors").
			WithCode(coalogerror.CodeConfigIssues).
			WithOperation("config.Load").
			WithArgs(path)
	}
	return model, diags, nil
}
