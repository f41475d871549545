// File: doc.go
// Title: Message Catalog Package Documentation
// Description: Documents the i18n package that renders stable diagnostic
//              and error codes into localized human-readable messages.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-15
// Modified: 2025-08-15
//
// Change History:
// - 2025-08-15 v0.1.0: Initial implementation

/*
Package i18n renders the stable codes emitted by the configuration parser
and the logging runtime into localized messages.

The library itself never produces prose. Every diagnostic and error carries
a symbolic code such as E-Cfg-Toml-InvalidChar plus ordered string
arguments; this package owns the mapping of code to message text. English
and German catalogs ship built in, so rendering works without any files on
disk. Catalog files in a locales directory override or extend single
entries per locale.

Key Features:
  - Built-in English and German catalogs covering every library code
  - Catalog files in TOML or YAML, auto-detected by extension
  - Positional %s substitution of diagnostic arguments
  - Fallback from the active locale to the default locale
  - Accept-Language style locale detection
  - Polling-based hot reload of edited catalog files
  - Thread-safe for concurrent rendering

Usage:

	manager, err := i18n.New(i18n.Options{
	    DefaultLocale: "en",
	    LocalesDir:    "./locales",
	    Fallback:      true,
	})
	if err != nil {
	    return err
	}
	_ = manager.SetLocale("de")

	renderer := i18n.NewDiagnosticRenderer(manager)
	doc, diags := toml.Parse(input)
	for _, d := range diags {
	    fmt.Println(renderer.Render(d))
	}

Catalog files are flat mappings from code to template. A German override
file locales/de.toml might contain:

	"E-Cfg-Toml-InvalidChar" = "ungueltiges Zeichen %s"
*/
package i18n
