// File: segment.go
// Title: Substrings, Split and Join
// Description: Range extraction with strict bounds checking, and the
//              split/join pair. Join(Split(s, d), d) reproduces s unless s
//              ends with d, whose trailing token Split drops.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-14
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation
// - 2026-10-19 v0.1.1: Trailing token rule follows EndsWith for overlapping delimiters

package textx

import (
	"github.com/msto63/stringext/core/errors"
)

// Substr returns count bytes of str beginning at start. A range that does
// not lie inside str is rejected with INVALID_ARGUMENT.
func Substr(str Text, start, count int) (Text, error) {
	if start < 0 || start > len(str.b) {
		return Text{}, errors.TextxOutOfRange("substr", "start", start, 0, len(str.b))
	}
	if count < 0 || count > len(str.b)-start {
		return Text{}, errors.TextxOutOfRange("substr", "count", count, 0, len(str.b)-start)
	}
	return Text{b: clone(str.b[start : start+count])}, nil
}

// Substring returns the bytes of str in [start, end)
func Substring(str Text, start, end int) (Text, error) {
	if end < start {
		return Text{}, errors.TextxInvalidArgument("substring", "end", end, "end >= start").
			WithDetail("start", start)
	}
	return Substr(str, start, end-start)
}

// Split cuts haystack at each non-overlapping occurrence of delimiter.
// With k occurrences there are k tokens when haystack ends with delimiter,
// otherwise k+1: Split("a,b,", ",") is [a b] and Split("a,b,,c", ",") is
// [a b "" c]. For a self-overlapping delimiter the bytes after the last
// counted occurrence are dropped too: Split("aaa", "aa") is [""].
// An empty delimiter is rejected.
func Split(haystack, delimiter Text) (Tokens, error) {
	if len(delimiter.b) == 0 {
		return nil, errors.TextxInvalidArgument("split", "delimiter", "", "non-empty delimiter")
	}

	k := Count(haystack, delimiter)
	tokens := make(Tokens, 0, k+1)

	pos := 0
	for i := 0; i < k; i++ {
		idx := indexFrom(haystack.b, delimiter.b, pos)
		tokens = append(tokens, Text{b: clone(haystack.b[pos:idx])})
		pos = idx + len(delimiter.b)
	}

	if k == 0 || !EndsWith(haystack, delimiter) {
		tokens = append(tokens, Text{b: clone(haystack.b[pos:])})
	}
	return tokens, nil
}

// Join concatenates tokens with delimiter between consecutive tokens.
// No tokens give the empty text; one token is returned unchanged.
func Join(tokens Tokens, delimiter Text) (Text, error) {
	switch len(tokens) {
	case 0:
		return Text{}, nil
	case 1:
		return tokens[0], nil
	}

	size := int64(len(tokens)-1) * int64(len(delimiter.b))
	for _, t := range tokens {
		size += int64(len(t.b))
	}
	if err := checkSize("join", size); err != nil {
		return Text{}, err
	}

	out := make([]byte, size)
	w := copy(out, tokens[0].b)
	for _, t := range tokens[1:] {
		w += copy(out[w:], delimiter.b)
		w += copy(out[w:], t.b)
	}
	return Text{b: out}, nil
}
