// File: trim_test.go
// Title: Tests for Whitespace Trimming
// Description: Only 0x20 is trimmed; other whitespace is content.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14

package textx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrim(t *testing.T) {
	tests := []struct {
		name  string
		input string
		left  string
		right string
		both  string
	}{
		{"both sides", "  ab c  ", "ab c  ", "  ab c", "ab c"},
		{"already trimmed", "abc", "abc", "abc", "abc"},
		{"empty", "", "", "", ""},
		{"only spaces", "   ", "", "", ""},
		{"tabs kept", "\tabc\n", "\tabc\n", "\tabc\n", "\tabc\n"},
		{"space inside tab", " \t x \t ", "\t x \t ", " \t x \t", "\t x \t"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.left, TrimLeft(New(tt.input)).String())
			assert.Equal(t, tt.right, TrimRight(New(tt.input)).String())
			assert.Equal(t, tt.both, Trim(New(tt.input)).String())
		})
	}
}

func TestTrimIdempotent(t *testing.T) {
	once := Trim(New("  x  "))
	assert.True(t, once.Equal(Trim(once)))
}
