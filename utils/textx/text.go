// File: text.go
// Title: Text Value and Token Sequence
// Description: Defines Text, an immutable byte sequence with an explicit
//              length, and Tokens, the ordered result of Split. All textx
//              operations take Text values and return new ones; none of them
//              mutates its input or keeps a reference to caller memory.
// Author: msto63
// Version: v0.2.1
// Created: 2026-10-14
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation
// - 2026-10-18 v0.2.0: Size limit checks in int64 arithmetic
// - 2026-10-19 v0.2.1: Build for single-allocation construction

package textx

import (
	"bytes"

	"github.com/msto63/stringext/core/errors"
)

// NotFound is returned by the index searches when the needle does not occur.
const NotFound = -1

// MaxLen is the largest result, in bytes, any textx operation will produce.
// Larger results fail with an ALLOCATION_FAILURE error before allocating.
const MaxLen = 1 << 30

// Text is an immutable sequence of single-byte characters.
// The zero value is the empty text.
type Text struct {
	b []byte
}

// New returns a Text holding a copy of s
func New(s string) Text {
	if len(s) == 0 {
		return Text{}
	}
	b := make([]byte, len(s))
	copy(b, s)
	return Text{b: b}
}

// FromBytes returns a Text holding a copy of b
func FromBytes(b []byte) Text {
	if len(b) == 0 {
		return Text{}
	}
	return Text{b: clone(b)}
}

// Build allocates n bytes, lets fill write them and returns them as a
// Text without copying. fill must not keep buf after it returns.
func Build(n int, fill func(buf []byte)) (Text, error) {
	if err := checkSize("build", int64(n)); err != nil {
		return Text{}, err
	}
	if n == 0 {
		return Text{}, nil
	}
	b := make([]byte, n)
	fill(b)
	return Text{b: b}, nil
}

// Len returns the number of bytes in t
func (t Text) Len() int {
	return len(t.b)
}

// IsEmpty reports whether t has length 0
func (t Text) IsEmpty() bool {
	return len(t.b) == 0
}

// At returns the byte at index i. It panics if i is out of range,
// like indexing a slice.
func (t Text) At(i int) byte {
	return t.b[i]
}

// String returns the content as a Go string
func (t Text) String() string {
	return string(t.b)
}

// Bytes returns a copy of the content
func (t Text) Bytes() []byte {
	return clone(t.b)
}

// Equal reports whether t and other hold the same bytes
func (t Text) Equal(other Text) bool {
	return bytes.Equal(t.b, other.b)
}

// Tokens is an ordered sequence of independently allocated Text values
type Tokens []Text

// TokensOf builds Tokens from strings
func TokensOf(ss ...string) Tokens {
	tokens := make(Tokens, len(ss))
	for i, s := range ss {
		tokens[i] = New(s)
	}
	return tokens
}

// Len returns the number of tokens
func (ts Tokens) Len() int {
	return len(ts)
}

// Strings returns the tokens as Go strings
func (ts Tokens) Strings() []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.String()
	}
	return out
}

func clone(b []byte) []byte {
	c := make([]byte, len(b))
	copy(c, b)
	return c
}

// checkSize rejects result sizes above MaxLen. Callers compute n in int64
// so that overflow on 32-bit platforms cannot wrap into a valid size.
func checkSize(operation string, n int64) error {
	if n < 0 || n > MaxLen {
		return errors.TextxTooLarge(operation, n, MaxLen)
	}
	return nil
}
