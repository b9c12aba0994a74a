// Package log provides structured, leveled logging for stringext.
//
// Package: log
// Title: stringext Structured Logging
// Description: A small structured logger modeled on the mDW foundation
//              logger: levels, persistent fields, JSON/text/logfmt output,
//              timers, and severity-aware logging of mDW errors. The text
//              packages never log; the chain package does, through a
//              *Logger the caller passes in.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-13
// Modified: 2026-10-18
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{
//		Level:  log.LevelDebug,
//		Format: log.FormatLogfmt,
//		Name:   "normalize",
//	})
//	logger.Debug("step applied", log.Field("op", "trim"), log.Int("out_len", 5))
package log
