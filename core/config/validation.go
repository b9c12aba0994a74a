// File: validation.go
// Title: Recipe Validation
// Description: Checks the shape of a decoded recipe: settings that must
//              parse, steps that must name an operation, and numeric or
//              fill arguments that cannot be valid for any operation.
//              Whether an op exists is decided by the chain package.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16

package config

import (
	"fmt"
	"strings"

	"github.com/msto63/stringext/core/errors"
	"github.com/msto63/stringext/core/log"
	"github.com/msto63/stringext/utils/textx"
)

// ValidationResult contains the results of recipe validation
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

func (vr *ValidationResult) addf(format string, args ...interface{}) {
	vr.Valid = false
	vr.Errors = append(vr.Errors, fmt.Sprintf(format, args...))
}

// Check validates the recipe and reports every problem found
func (r *Recipe) Check() *ValidationResult {
	result := &ValidationResult{Valid: true}

	if strings.TrimSpace(r.Name) == "" {
		result.addf("name must not be empty")
	}
	if _, err := log.ParseLevel(r.Log.Level); err != nil {
		result.addf("log.level: %v", err)
	}
	if _, err := log.ParseFormat(r.Log.Format); err != nil {
		result.addf("log.format: %v", err)
	}
	if _, err := textx.ParsePalindromePolicy(r.PalindromePolicy); err != nil {
		result.addf("palindrome_policy: invalid value %q", r.PalindromePolicy)
	}

	if len(r.Steps) == 0 {
		result.addf("recipe has no steps")
	}
	for i, step := range r.Steps {
		checkStep(result, i, step)
	}

	return result
}

func checkStep(result *ValidationResult, i int, step Step) {
	if strings.TrimSpace(step.Op) == "" {
		result.addf("steps[%d].op must not be empty", i)
	}
	if len(step.Fill) > 1 {
		result.addf("steps[%d].fill must be a single byte, got %q", i, step.Fill)
	}

	for _, arg := range []struct {
		name  string
		value int
	}{
		{"start", step.Start},
		{"count", step.Count},
		{"end", step.End},
		{"width", step.Width},
	} {
		if arg.value < 0 {
			result.addf("steps[%d].%s must not be negative, got %d", i, arg.name, arg.value)
		}
	}
}

// Validate returns a CONFIG_ERROR naming the first problem, with all
// problems in the "errors" detail
func (r *Recipe) Validate() error {
	result := r.Check()
	if result.Valid {
		return nil
	}
	return errors.ConfigError("validate", "invalid recipe: "+result.Errors[0], nil).
		WithDetail("recipe", r.Name).
		WithDetail("errors", result.Errors)
}
