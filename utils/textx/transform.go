// File: transform.go
// Title: Replacement, Case Conversion and Reversal
// Description: Operations that produce a new Text derived from an existing
//              one. Each result is allocated once at its exact final size.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-14
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation
// - 2026-10-18 v0.2.0: Added Concat

package textx

// ReplaceFirst returns str with the first occurrence of old replaced by
// new. If old does not occur the input is returned unchanged.
func ReplaceFirst(str, old, new Text) (Text, error) {
	i := IndexOf(str, old)
	if i == NotFound {
		return str, nil
	}

	size := int64(len(str.b)) - int64(len(old.b)) + int64(len(new.b))
	if err := checkSize("replace_first", size); err != nil {
		return Text{}, err
	}

	out := make([]byte, size)
	w := copy(out, str.b[:i])
	w += copy(out[w:], new.b)
	copy(out[w:], str.b[i+len(old.b):])
	return Text{b: out}, nil
}

// ReplaceAll returns str with every non-overlapping occurrence of old
// replaced by new. Matches are taken from str only, left to right, so a
// replacement that reintroduces old is never rescanned:
// ReplaceAll("aaaa", "aa", "a") is "aa". An empty old inserts new before
// every byte and at the end.
func ReplaceAll(str, old, new Text) (Text, error) {
	n := Count(str, old)
	if n == 0 {
		return str, nil
	}

	size := int64(len(str.b)) + int64(n)*(int64(len(new.b))-int64(len(old.b)))
	if err := checkSize("replace_all", size); err != nil {
		return Text{}, err
	}

	out := make([]byte, size)
	step := advance(old.b)
	pos, next, w := 0, 0, 0
	for k := 0; k < n; k++ {
		i := indexFrom(str.b, old.b, next)
		w += copy(out[w:], str.b[pos:i])
		w += copy(out[w:], new.b)
		pos = i + len(old.b)
		next = i + step
	}
	copy(out[w:], str.b[pos:])
	return Text{b: out}, nil
}

// ToLowerCase maps ASCII A-Z to a-z; all other bytes pass through
func ToLowerCase(str Text) Text {
	out := make([]byte, len(str.b))
	for i, c := range str.b {
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		out[i] = c
	}
	return Text{b: out}
}

// ToUpperCase maps ASCII a-z to A-Z; all other bytes pass through
func ToUpperCase(str Text) Text {
	out := make([]byte, len(str.b))
	for i, c := range str.b {
		if 'a' <= c && c <= 'z' {
			c -= 'a' - 'A'
		}
		out[i] = c
	}
	return Text{b: out}
}

// Reverse returns the bytes of str in reverse order
func Reverse(str Text) Text {
	n := len(str.b)
	out := make([]byte, n)
	for i, c := range str.b {
		out[n-1-i] = c
	}
	return Text{b: out}
}

// Concat returns dst followed by src
func Concat(dst, src Text) (Text, error) {
	size := int64(len(dst.b)) + int64(len(src.b))
	if err := checkSize("concat", size); err != nil {
		return Text{}, err
	}

	out := make([]byte, size)
	w := copy(out, dst.b)
	copy(out[w:], src.b)
	return Text{b: out}, nil
}
