// File: hex.go
// Title: Hex Codec
// Description: Converts byte buffers to uppercase ASCII hex text and back.
//              Decoding accepts either case and reports the position of the
//              first byte that is not a hex digit.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-16
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation
// - 2026-10-19 v0.1.1: Encode allocates once

package hexx

import (
	"github.com/msto63/stringext/core/errors"
	"github.com/msto63/stringext/utils/textx"
)

const digits = "0123456789ABCDEF"

// invalid marks bytes that are not hex digits in the decode table
const invalid = 0xFF

var decodeTable = func() [256]byte {
	var t [256]byte
	for i := range t {
		t[i] = invalid
	}
	for i := 0; i < 10; i++ {
		t['0'+i] = byte(i)
	}
	for i := 0; i < 6; i++ {
		t['A'+i] = byte(10 + i)
		t['a'+i] = byte(10 + i)
	}
	return t
}()

// EncodedLen returns the length of the hex encoding of n bytes
func EncodedLen(n int) int {
	return n * 2
}

// DecodedLen returns the length of the decoding of n hex digits
func DecodedLen(n int) int {
	return n / 2
}

// Encode returns the uppercase hex text for b, two digits per byte.
// Encoding fails only when the result would exceed textx.MaxLen.
func Encode(b []byte) (textx.Text, error) {
	if n := int64(len(b)) * 2; n > textx.MaxLen {
		return textx.Text{}, errors.HexxTooLarge(n, textx.MaxLen)
	}

	return textx.Build(EncodedLen(len(b)), func(out []byte) {
		for i, c := range b {
			out[2*i] = digits[c>>4]
			out[2*i+1] = digits[c&0x0F]
		}
	})
}

// Decode parses hex text into bytes. The text must have even length and
// contain only 0-9, A-F and a-f.
func Decode(t textx.Text) ([]byte, error) {
	return decode(t.Bytes())
}

// EncodeToString is Encode returning a Go string
func EncodeToString(b []byte) (string, error) {
	t, err := Encode(b)
	if err != nil {
		return "", err
	}
	return t.String(), nil
}

// DecodeString is Decode for a Go string
func DecodeString(s string) ([]byte, error) {
	return decode([]byte(s))
}

func decode(src []byte) ([]byte, error) {
	if len(src)%2 != 0 {
		return nil, errors.HexxOddLength(len(src))
	}

	out := make([]byte, DecodedLen(len(src)))
	for i := 0; i < len(out); i++ {
		hi := decodeTable[src[2*i]]
		if hi == invalid {
			return nil, errors.HexxInvalidDigit(2*i, src[2*i])
		}
		lo := decodeTable[src[2*i+1]]
		if lo == invalid {
			return nil, errors.HexxInvalidDigit(2*i+1, src[2*i+1])
		}
		out[i] = hi<<4 | lo
	}
	return out, nil
}
