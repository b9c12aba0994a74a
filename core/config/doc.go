// Package config loads chain recipes for stringext.
//
// Package: config
// Title: Recipe Configuration
// Description: A recipe names a sequence of text operations and the logging
//              and palindrome settings used when the chain runs. Recipes
//              are TOML or YAML, decoded strictly, optionally overridden
//              from the environment, and validated before use.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-16
// Modified: 2026-10-18
//
// A TOML recipe:
//
//	name = "normalize"
//	palindrome_policy = "short-is-palindrome"
//
//	[log]
//	level = "debug"
//	format = "logfmt"
//
//	[[steps]]
//	op = "trim"
//
//	[[steps]]
//	op = "replace_all"
//	old = "  "
//	new = " "
//
//	[[steps]]
//	op = "center_justify"
//	width = 20
//	fill = "*"
//
// Environment overrides (prefix STRINGEXT by default):
//
//	STRINGEXT_LOG_LEVEL, STRINGEXT_LOG_FORMAT, STRINGEXT_PALINDROME_POLICY
package config
