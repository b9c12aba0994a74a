// File: utils.go
// Title: Shared Error Handling Utilities
// Description: Provides the error builder and the standard constructors used
//              by every stringext package, so that the same failure looks the
//              same no matter which package reports it.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-12 v0.1.0: Builder and argument/range constructors
// - 2026-10-18 v0.2.0: AllocationFailure, ConfigError, chain helpers

package errors

import (
	"fmt"

	mdwerror "github.com/msto63/stringext/core/error"
)

// Module identifiers for error categorization
const (
	ModuleTextx  = "textx"
	ModuleHexx   = "hexx"
	ModuleChain  = "chain"
	ModuleConfig = "config"
)

// ErrorBuilder provides a fluent interface for building standardized errors
type ErrorBuilder struct {
	module    string
	operation string
	message   string
	cause     error
	details   map[string]interface{}
	severity  *mdwerror.Severity
	code      mdwerror.Code
}

// NewErrorBuilder creates a new error builder for the specified module
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{
		module:  module,
		details: make(map[string]interface{}),
		code:    mdwerror.CodeUnknown,
	}
}

// Operation sets the operation name for the error
func (eb *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	eb.operation = operation
	return eb
}

// Message sets the error message
func (eb *ErrorBuilder) Message(message string) *ErrorBuilder {
	eb.message = message
	return eb
}

// Messagef sets the error message with formatting
func (eb *ErrorBuilder) Messagef(format string, args ...interface{}) *ErrorBuilder {
	eb.message = fmt.Sprintf(format, args...)
	return eb
}

// Cause sets the underlying cause of the error
func (eb *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	eb.cause = cause
	return eb
}

// Detail adds a detail key-value pair to the error
func (eb *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	eb.details[key] = value
	return eb
}

// Severity overrides the severity derived from the code
func (eb *ErrorBuilder) Severity(severity mdwerror.Severity) *ErrorBuilder {
	eb.severity = &severity
	return eb
}

// Code sets the error code
func (eb *ErrorBuilder) Code(code mdwerror.Code) *ErrorBuilder {
	eb.code = code
	return eb
}

// Build creates the final error
func (eb *ErrorBuilder) Build() *mdwerror.Error {
	if eb.message == "" {
		if eb.operation != "" {
			eb.message = fmt.Sprintf("%s.%s failed", eb.module, eb.operation)
		} else {
			eb.message = fmt.Sprintf("%s operation failed", eb.module)
		}
	}

	eb.details["module"] = eb.module

	var err *mdwerror.Error
	if eb.cause != nil {
		err = mdwerror.Wrap(eb.cause, eb.message)
	} else {
		err = mdwerror.New(eb.message)
	}

	err = err.WithCode(eb.code).WithDetails(eb.details)
	if eb.operation != "" {
		err = err.WithOperation(eb.module + "." + eb.operation)
	}
	if eb.severity != nil {
		err = err.WithSeverity(*eb.severity)
	}
	return err
}

// =============================================================================
// STANDARD ERROR CREATION FUNCTIONS
// =============================================================================

// InvalidArgument creates a standardized invalid argument error
func InvalidArgument(module, operation, argument string, value interface{}, expected string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("invalid argument %s for %s.%s: expected %s", argument, module, operation, expected).
		Code(mdwerror.CodeInvalidArgument).
		Detail("argument", argument).
		Detail("value", value).
		Detail("expected", expected).
		Build()
}

// OutOfRange creates an invalid argument error for an index or length that
// falls outside [min, max]
func OutOfRange(module, operation, argument string, value, min, max int) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s out of range in %s.%s: %d not in [%d, %d]", argument, module, operation, value, min, max).
		Code(mdwerror.CodeInvalidArgument).
		Detail("argument", argument).
		Detail("value", value).
		Detail("min", min).
		Detail("max", max).
		Build()
}

// AllocationFailure reports a result size that cannot be allocated
func AllocationFailure(module, operation string, requested int64, limit int) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s.%s: result of %d bytes exceeds limit of %d", module, operation, requested, limit).
		Code(mdwerror.CodeAllocationFailure).
		Detail("requested", requested).
		Detail("limit", limit).
		Build()
}

// NotFound creates a standardized not found error
func NotFound(module, operation string, identifier interface{}) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%v not found in %s.%s", identifier, module, operation).
		Code(mdwerror.CodeNotFound).
		Detail("identifier", identifier).
		Build()
}

// ConfigError creates a configuration error, optionally wrapping a cause
func ConfigError(operation, message string, cause error) *mdwerror.Error {
	return NewErrorBuilder(ModuleConfig).
		Operation(operation).
		Message(message).
		Cause(cause).
		Code(mdwerror.CodeConfigError).
		Build()
}

// Utility functions for error analysis

// ExtractDetails extracts all details from a mDW error
func ExtractDetails(err error) map[string]interface{} {
	if mdwErr, ok := err.(*mdwerror.Error); ok {
		return mdwErr.Details()
	}
	return nil
}

// ExtractModule extracts the module name from an error
func ExtractModule(err error) string {
	if module, ok := ExtractDetails(err)["module"].(string); ok {
		return module
	}
	return ""
}

// IsModuleOperation checks if error is from specific module and operation
func IsModuleOperation(err error, module, operation string) bool {
	mdwErr, ok := err.(*mdwerror.Error)
	if !ok {
		return false
	}
	return ExtractModule(err) == module && mdwErr.Operation() == module+"."+operation
}

// =============================================================================
// MODULE-SPECIFIC CONVENIENCE FUNCTIONS
// =============================================================================

// TextxInvalidArgument reports a rejected argument in package textx
func TextxInvalidArgument(operation, argument string, value interface{}, expected string) *mdwerror.Error {
	return InvalidArgument(ModuleTextx, operation, argument, value, expected)
}

// TextxOutOfRange reports an index or length outside the source text
func TextxOutOfRange(operation, argument string, value, min, max int) *mdwerror.Error {
	return OutOfRange(ModuleTextx, operation, argument, value, min, max)
}

// TextxTooLarge reports a textx result that would exceed the size limit
func TextxTooLarge(operation string, requested int64, limit int) *mdwerror.Error {
	return AllocationFailure(ModuleTextx, operation, requested, limit)
}

// HexxInvalidDigit reports a byte that is not a hex digit
func HexxInvalidDigit(position int, digit byte) *mdwerror.Error {
	return InvalidArgument(ModuleHexx, "decode", "input", fmt.Sprintf("%q", digit), "hex digit [0-9A-Fa-f]").
		WithDetail("position", position)
}

// HexxOddLength reports hex input whose length is not even
func HexxOddLength(length int) *mdwerror.Error {
	return InvalidArgument(ModuleHexx, "decode", "input", length, "even length")
}

// HexxTooLarge reports an encoded result that would exceed limit
func HexxTooLarge(requested int64, limit int) *mdwerror.Error {
	return AllocationFailure(ModuleHexx, "encode", requested, limit)
}

// ChainUnknownOp reports a recipe step naming an operation that does not exist
func ChainUnknownOp(op string, index int) *mdwerror.Error {
	return NotFound(ModuleChain, "build", op).WithDetail("step", index)
}

// ChainStepFailed wraps a step error with its position in the chain
func ChainStepFailed(runID string, index int, op string, cause error) *mdwerror.Error {
	return mdwerror.Wrap(cause, fmt.Sprintf("chain step %d (%s) failed", index, op)).
		WithDetail("step", index).
		WithDetail("op", op).
		WithRequestID(runID)
}
