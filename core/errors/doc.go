// Package errors provides standardized error constructors for stringext.
//
// Package: errors
// Title: Error Standards for stringext
// Description: Wraps the core error type in a fluent builder and a small set
//              of constructors (InvalidArgument, OutOfRange,
//              AllocationFailure, NotFound, ConfigError) plus per-module
//              helpers. Packages use these instead of fmt.Errorf so every
//              failure carries a code, the module and the operation.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-18
//
// Usage:
//
//	return Text{}, errors.TextxOutOfRange("substr", "start", start, 0, src.Len())
package errors
