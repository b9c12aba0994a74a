// Package textx provides byte-wise text manipulation over an immutable Text.
//
// Package: textx
// Title: Byte-Wise Text Utilities
// Description: Search, replacement, split/join, trimming, justification,
//              case conversion, reversal and the palindrome test over Text,
//              a byte sequence with an explicit length. Characters are single
//              bytes; there is no Unicode or locale handling.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-14
// Modified: 2026-10-18
//
// # Ownership
//
// A Text never changes after construction. Every operation that would
// modify text returns a new Text sized exactly to its content; only the
// justify functions produce a fixed width. No returned value shares memory
// with an argument the caller can still modify, so results may be kept and
// passed between goroutines freely.
//
// # Errors
//
// Index searches return NotFound (-1) rather than an error. Operations that
// can fail return an *error.Error from core/error:
//
//   - INVALID_ARGUMENT for a range outside the text or an empty delimiter
//   - ALLOCATION_FAILURE when a result would exceed MaxLen bytes
//
// # Usage
//
//	s := textx.New("  a,b,,c  ")
//	tokens, err := textx.Split(textx.Trim(s), textx.New(","))
//	if err != nil {
//		return err
//	}
//	joined, _ := textx.Join(tokens, textx.New(";")) // "a;b;;c"
//
//	padded, _ := textx.CenterJustify(textx.New("x"), 4, '*') // "*x**"
package textx
