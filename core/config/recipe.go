// File: recipe.go
// Title: Recipe Model
// Description: The Recipe describes a named chain of text operations plus
//              the logging and palindrome settings used when it runs.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-16
// Modified: 2026-10-18

package config

import (
	"io"

	"github.com/msto63/stringext/core/log"
	"github.com/msto63/stringext/utils/textx"
)

// Recipe is the decoded form of a recipe file
type Recipe struct {
	Name             string    `toml:"name" yaml:"name"`
	PalindromePolicy string    `toml:"palindrome_policy" yaml:"palindrome_policy"`
	Log              LogConfig `toml:"log" yaml:"log"`
	Steps            []Step    `toml:"steps" yaml:"steps"`
}

// LogConfig selects the level and format of the chain logger
type LogConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
}

// Step is one operation of a recipe. Which fields apply depends on Op.
type Step struct {
	Op        string `toml:"op" yaml:"op"`
	Old       string `toml:"old" yaml:"old"`
	New       string `toml:"new" yaml:"new"`
	Start     int    `toml:"start" yaml:"start"`
	Count     int    `toml:"count" yaml:"count"`
	End       int    `toml:"end" yaml:"end"`
	Width     int    `toml:"width" yaml:"width"`
	Fill      string `toml:"fill" yaml:"fill"`
	Text      string `toml:"text" yaml:"text"`
	Delimiter string `toml:"delimiter" yaml:"delimiter"`
	Joiner    string `toml:"joiner" yaml:"joiner"`
}

// NewRecipe returns a recipe holding the defaults
func NewRecipe() *Recipe {
	return &Recipe{
		Name:             "chain",
		PalindromePolicy: textx.DefaultPalindromePolicy.String(),
		Log: LogConfig{
			Level:  log.DefaultLevel().String(),
			Format: log.FormatJSON.String(),
		},
	}
}

// FillByte returns the fill byte of a justify step; a space if unset
func (s Step) FillByte() byte {
	if s.Fill == "" {
		return ' '
	}
	return s.Fill[0]
}

// LogLevel returns the parsed log level, or the default on a bad value
func (r *Recipe) LogLevel() log.Level {
	level, _ := log.ParseLevel(r.Log.Level)
	return level
}

// LogFormat returns the parsed log format, or JSON on a bad value
func (r *Recipe) LogFormat() log.Format {
	format, _ := log.ParseFormat(r.Log.Format)
	return format
}

// Policy returns the parsed palindrome policy
func (r *Recipe) Policy() textx.PalindromePolicy {
	policy, _ := textx.ParsePalindromePolicy(r.PalindromePolicy)
	return policy
}

// Logger builds the logger described by the log section, named after the
// recipe
func (r *Recipe) Logger(output io.Writer) *log.Logger {
	return log.NewWithConfig(log.Config{
		Level:  r.LogLevel(),
		Format: r.LogFormat(),
		Output: output,
		Name:   r.Name,
	})
}
