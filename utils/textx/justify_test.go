// File: justify_test.go
// Title: Tests for Fixed-Width Justification
// Description: Width handling, fill placement and the odd-padding
//              tie-break of CenterJustify.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15

package textx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/stringext/core/error"
)

func TestJustify(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		width  int
		left   string
		right  string
		center string
	}{
		{"odd padding", "x", 4, "x***", "***x", "*x**"},
		{"even padding", "ab", 6, "ab****", "****ab", "**ab**"},
		{"one pad byte", "ab", 3, "ab*", "*ab", "ab*"},
		{"empty input", "", 3, "***", "***", "***"},
		{"width equals length", "abc", 3, "abc", "abc", "abc"},
		{"width below length", "abc", 1, "abc", "abc", "abc"},
		{"zero width", "abc", 0, "abc", "abc", "abc"},
		{"negative width", "abc", -4, "abc", "abc", "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			left, err := LeftJustify(New(tt.input), tt.width, '*')
			require.NoError(t, err)
			assert.Equal(t, tt.left, left.String())

			right, err := RightJustify(New(tt.input), tt.width, '*')
			require.NoError(t, err)
			assert.Equal(t, tt.right, right.String())

			center, err := CenterJustify(New(tt.input), tt.width, '*')
			require.NoError(t, err)
			assert.Equal(t, tt.center, center.String())
		})
	}
}

func TestLeftJustifyKeepsPrefix(t *testing.T) {
	s := New("hello")
	for width := s.Len(); width < s.Len()+5; width++ {
		got, err := LeftJustify(s, width, '.')
		require.NoError(t, err)
		assert.Equal(t, width, got.Len())
		assert.True(t, StartsWith(got, s))
	}
}

func TestJustifyTooWide(t *testing.T) {
	for name, fn := range map[string]func(Text, int, byte) (Text, error){
		"left":   LeftJustify,
		"right":  RightJustify,
		"center": CenterJustify,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := fn(New("x"), MaxLen+1, ' ')
			require.Error(t, err)
			assert.True(t, mdwerror.HasCode(err, mdwerror.CodeAllocationFailure))
		})
	}
}
