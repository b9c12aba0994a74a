// File: level.go
// Title: Log Level Definitions
// Description: Log levels for filtering logger output. Library code logs at
//              debug and below; callers choose how much of it to see.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-13
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation with standard log levels
// - 2026-10-19 v0.2.0: Names and aliases from one table

package log

import (
	"strings"
)

// Level represents the importance level of a log message
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError

	// LevelOff disables all output
	LevelOff
)

// levelNames holds name, three-letter tag and accepted spellings, indexed
// by Level
var levelNames = [...]struct {
	name    string
	tag     string
	aliases []string
}{
	LevelTrace: {"trace", "TRC", []string{"trc"}},
	LevelDebug: {"debug", "DBG", []string{"dbg"}},
	LevelInfo:  {"info", "INF", []string{"inf", "information"}},
	LevelWarn:  {"warn", "WRN", []string{"wrn", "warning"}},
	LevelError: {"error", "ERR", []string{"err"}},
	LevelOff:   {"off", "OFF", []string{"none"}},
}

func (l Level) valid() bool {
	return l >= LevelTrace && int(l) < len(levelNames)
}

// String returns the lowercase level name, as accepted by ParseLevel
func (l Level) String() string {
	if !l.valid() {
		return "unknown"
	}
	return levelNames[l].name
}

// ShortString returns the three-letter tag used by the text formatter
func (l Level) ShortString() string {
	if !l.valid() {
		return "???"
	}
	return levelNames[l].tag
}

// ShouldLog reports whether a message at l passes the minimum level
func (l Level) ShouldLog(minLevel Level) bool {
	return l >= minLevel && l < LevelOff
}

// ParseLevel parses a level name or one of its aliases, ignoring case
func ParseLevel(level string) (Level, error) {
	s := strings.ToLower(strings.TrimSpace(level))
	for l, n := range levelNames {
		if s == n.name {
			return Level(l), nil
		}
		for _, alias := range n.aliases {
			if s == alias {
				return Level(l), nil
			}
		}
	}
	return LevelInfo, &ParseError{Input: level, Type: "level"}
}

// ParseError reports a level or format name that cannot be parsed
type ParseError struct {
	Input string
	Type  string
}

func (e *ParseError) Error() string {
	return "invalid " + e.Type + ": " + e.Input
}

// DefaultLevel returns the level used when none is configured
func DefaultLevel() Level {
	return LevelInfo
}
