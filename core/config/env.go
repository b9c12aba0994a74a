// File: env.go
// Title: Environment Overrides
// Description: Lets deployment environments change logging and palindrome
//              settings of a recipe without editing the file.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18

package config

import (
	"os"
	"strings"
)

// Environment variable suffixes read by ApplyEnv
const (
	EnvLogLevel         = "LOG_LEVEL"
	EnvLogFormat        = "LOG_FORMAT"
	EnvPalindromePolicy = "PALINDROME_POLICY"
)

// ApplyEnv overrides recipe settings from PREFIX_LOG_LEVEL,
// PREFIX_LOG_FORMAT and PREFIX_PALINDROME_POLICY when they are set.
// Values are checked by Validate, not here.
func (r *Recipe) ApplyEnv(prefix string) {
	if v, ok := lookupEnv(prefix, EnvLogLevel); ok {
		r.Log.Level = v
	}
	if v, ok := lookupEnv(prefix, EnvLogFormat); ok {
		r.Log.Format = v
	}
	if v, ok := lookupEnv(prefix, EnvPalindromePolicy); ok {
		r.PalindromePolicy = v
	}
}

func lookupEnv(prefix, key string) (string, bool) {
	name := key
	if prefix != "" {
		name = strings.ToUpper(prefix) + "_" + key
	}
	v, ok := os.LookupEnv(name)
	if !ok || strings.TrimSpace(v) == "" {
		return "", false
	}
	return strings.TrimSpace(v), true
}
