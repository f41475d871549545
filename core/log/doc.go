// File: doc.go
// Title: Package Documentation for log
// Description: Package overview and usage examples.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-18
// Modified: 2025-08-18
//
// Change History:
// - 2025-08-18 v0.1.0: Initial implementation

// Package log provides the record-oriented logger used across coalog.
//
// Features:
//   - Seven record levels with single-character triggers: error (E),
//     warning (W), info (I), debug (D), function (F), module (M), and
//     object (O)
//   - Trigger sets that select exactly which levels a sink records
//   - Pattern formatting with $-variables ($TimeStamp, $Level,
//     $LevelChar, $Message, $Logger, $Id, $Fields, $Date, $Time) and a
//     JSON formatter for machine consumption
//   - Structured fields, immutable With* cloning, and unique record
//     IDs for correlation
//   - Optional asynchronous writing through a buffered worker
//
// Usage:
//
//	triggers, _ := log.ParseTriggers("EWI")
//	logger := log.NewWithConfig(log.Config{
//		Name:      "server",
//		Triggers:  triggers,
//		Formatter: log.NewPatternFormatter("$TimeStamp $LevelChar $Message", ""),
//	})
//	defer logger.Close()
//
//	logger.Info("listener started", log.Field("port", 8080))
//	logger.ErrorWithErr("request failed", err)
//
//	timer := logger.StartTimer("load-config")
//	// ... work ...
//	timer.Stop()
package log
