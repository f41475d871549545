// File: doc.go
// Title: Package Documentation for coalog
// Description: Package overview and usage example.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-19
// Modified: 2025-08-19
//
// Change History:
// - 2025-08-19 v0.1.0: Initial implementation

// Package coalog ties the pieces of the library together: it loads a
// configuration file through the fault-tolerant TOML parser, interprets
// it into the runtime model, and opens the configured output resources
// as live loggers.
//
// Usage:
//
//	model, diags, err := config.Load("coalog.toml")
//	for _, d := range diags {
//		fmt.Println(renderer.Render(d))
//	}
//	if err != nil {
//		// the model still holds usable defaults
//	}
//
//	rt, err := coalog.Open(model)
//	if err != nil {
//		return err
//	}
//	defer rt.Close()
//
//	logger, _ := rt.Logger("main")
//	logger.Info("service started", log.Field("port", 8080))
package coalog
