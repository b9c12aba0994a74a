// Package error provides the structured error type used by stringext.
//
// Package: error
// Title: stringext Error Handling
// Description: Every failure in stringext is reported as an *Error carrying a
//              Code (NOT_FOUND, INVALID_ARGUMENT, ALLOCATION_FAILURE, ...),
//              a Severity derived from the code, the failing operation and a
//              details map. The type works with errors.Is, errors.As and
//              errors.Unwrap.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-18
//
// Usage:
//
//	import mdwerror "github.com/msto63/stringext/core/error"
//
//	err := mdwerror.New("delimiter must not be empty").
//		WithCode(mdwerror.CodeInvalidArgument).
//		WithOperation("textx.Split").
//		WithDetail("delimiter", "")
//
//	if mdwerror.HasCode(err, mdwerror.CodeInvalidArgument) {
//		// fix the call
//	}
package error
