// File: segment_test.go
// Title: Tests for Substrings, Split and Join
// Description: Bounds checking for Substr/Substring and the token count
//              rule of Split.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14

package textx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/stringext/core/error"
)

func TestSubstr(t *testing.T) {
	tests := []struct {
		name     string
		str      string
		start    int
		count    int
		expected string
		wantErr  bool
	}{
		{"middle", "hello", 1, 3, "ell", false},
		{"whole", "hello", 0, 5, "hello", false},
		{"empty at end", "hello", 5, 0, "", false},
		{"empty source", "", 0, 0, "", false},
		{"negative start", "hello", -1, 2, "", true},
		{"start past end", "hello", 6, 0, "", true},
		{"negative count", "hello", 1, -1, "", true},
		{"count past end", "hello", 3, 3, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Substr(New(tt.str), tt.start, tt.count)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidArgument))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got.String())
		})
	}
}

func TestSubstrResultIsIndependent(t *testing.T) {
	src := New("hello")
	sub, err := Substr(src, 0, 2)
	require.NoError(t, err)

	b := sub.Bytes()
	b[0] = 'X'
	assert.Equal(t, "he", sub.String())
	assert.Equal(t, "hello", src.String())
}

func TestSubstring(t *testing.T) {
	got, err := Substring(New("hello"), 1, 4)
	require.NoError(t, err)
	assert.Equal(t, "ell", got.String())

	got, err = Substring(New("hello"), 2, 2)
	require.NoError(t, err)
	assert.True(t, got.IsEmpty())

	_, err = Substring(New("hello"), 3, 2)
	require.Error(t, err)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidArgument))

	_, err = Substring(New("hello"), 2, 9)
	require.Error(t, err)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidArgument))
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name      string
		haystack  string
		delimiter string
		expected  []string
	}{
		{"empty token kept", "a,b,,c", ",", []string{"a", "b", "", "c"}},
		{"trailing delimiter dropped", "a,b,", ",", []string{"a", "b"}},
		{"leading delimiter", ",a", ",", []string{"", "a"}},
		{"no delimiter", "abc", ",", []string{"abc"}},
		{"empty haystack", "", ",", []string{""}},
		{"only delimiter", ",", ",", []string{""}},
		{"multi-byte delimiter", "a::b::c", "::", []string{"a", "b", "c"}},
		{"self-overlapping delimiter", "aaab", "aa", []string{"", "ab"}},
		{"two trailing delimiters", "a,,", ",", []string{"a", ""}},
		{"overlapping delimiter ends haystack", "aaa", "aa", []string{""}},
		{"overlapping delimiter run", "aaaaa", "aa", []string{"", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Split(New(tt.haystack), New(tt.delimiter))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got.Strings())
		})
	}
}

func TestSplitTokenCount(t *testing.T) {
	inputs := [][2]string{
		{"a,b,c", ","}, {"a,b,c,", ","}, {",", ","}, {",,", ","}, {"abc", ","},
		{"", ","}, {",a,", ","}, {"aaa", "aa"}, {"aaaa", "aa"}, {"aaab", "aa"},
		{"abababa", "aba"}, {"xaba", "aba"},
	}
	for _, in := range inputs {
		s, delim := New(in[0]), New(in[1])
		tokens, err := Split(s, delim)
		require.NoError(t, err)

		k := Count(s, delim)
		if k > 0 && EndsWith(s, delim) {
			assert.Equal(t, k, tokens.Len(), "haystack %q delimiter %q", in[0], in[1])
		} else {
			assert.Equal(t, k+1, tokens.Len(), "haystack %q delimiter %q", in[0], in[1])
		}
	}
}

func TestSplitEmptyDelimiter(t *testing.T) {
	_, err := Split(New("abc"), New(""))
	require.Error(t, err)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidArgument))
}

func TestJoin(t *testing.T) {
	tests := []struct {
		name      string
		tokens    []string
		delimiter string
		expected  string
	}{
		{"none", nil, ",", ""},
		{"single", []string{"abc"}, ",", "abc"},
		{"several", []string{"a", "b", "", "c"}, ",", "a,b,,c"},
		{"empty delimiter", []string{"a", "b"}, "", "ab"},
		{"multi-byte delimiter", []string{"a", "b"}, ", ", "a, b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Join(TokensOf(tt.tokens...), New(tt.delimiter))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got.String())
		})
	}
}

func TestSplitJoinRoundTrip(t *testing.T) {
	inputs := []string{"a,b,,c", ",a", "abc", "", "a,,b", ",,x"}
	delim := New(",")
	for _, in := range inputs {
		tokens, err := Split(New(in), delim)
		require.NoError(t, err)
		joined, err := Join(tokens, delim)
		require.NoError(t, err)
		assert.Equal(t, in, joined.String())
	}
}
