// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across stringext. Every failure a
//              caller can observe maps to exactly one of these codes.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-12 v0.1.0: Initial code set
// - 2026-10-18 v0.2.0: Added CodeConfigError for recipe loading

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown  Code = "UNKNOWN"
	CodeInternal Code = "INTERNAL"

	// A search or lookup found nothing. Plain index searches use the
	// textx.NotFound sentinel instead; this code is for named lookups.
	CodeNotFound Code = "NOT_FOUND"

	// Caller supplied an argument outside the operation's contract:
	// empty delimiter, bad range, odd or non-hex codec input.
	CodeInvalidArgument Code = "INVALID_ARGUMENT"

	// The result would exceed the supported text size.
	CodeAllocationFailure Code = "ALLOCATION_FAILURE"

	// Configuration and recipes
	CodeConfigError Code = "CONFIG_ERROR"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidArgument,
		CodeAllocationFailure, CodeConfigError:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeNotFound:
		return "lookup"
	case CodeInvalidArgument:
		return "argument"
	case CodeAllocationFailure:
		return "resource"
	case CodeConfigError:
		return "configuration"
	default:
		return "generic"
	}
}
