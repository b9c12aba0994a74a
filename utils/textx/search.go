// File: search.go
// Title: Substring Search
// Description: Index, last index, occurrence count and prefix/suffix tests.
//              Needles are literal byte sequences. An empty needle matches
//              at every position, starting with 0.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14

package textx

import (
	"bytes"
)

// IndexOf returns the position of the first occurrence of needle in
// haystack, or NotFound. An empty needle is found at 0.
func IndexOf(haystack, needle Text) int {
	return indexFrom(haystack.b, needle.b, 0)
}

// LastIndexOf returns the position of the last occurrence of needle in
// haystack, or NotFound. Occurrences may overlap: LastIndexOf("aaa", "aa")
// is 1. An empty needle is found at haystack.Len().
func LastIndexOf(haystack, needle Text) int {
	last := NotFound
	for pos := 0; pos <= len(haystack.b); {
		i := indexFrom(haystack.b, needle.b, pos)
		if i == NotFound {
			break
		}
		last = i
		pos = i + 1
	}
	return last
}

// Count returns the number of non-overlapping occurrences of needle,
// scanning left to right. Count("aaa", "aa") is 1. An empty needle
// matches at each of the haystack.Len()+1 positions.
func Count(haystack, needle Text) int {
	count := 0
	step := advance(needle.b)
	for pos := 0; pos <= len(haystack.b); {
		i := indexFrom(haystack.b, needle.b, pos)
		if i == NotFound {
			break
		}
		count++
		pos = i + step
	}
	return count
}

// Contains reports whether needle occurs in haystack
func Contains(haystack, needle Text) bool {
	return IndexOf(haystack, needle) != NotFound
}

// StartsWith reports whether haystack begins with needle
func StartsWith(haystack, needle Text) bool {
	return len(needle.b) <= len(haystack.b) &&
		bytes.Equal(haystack.b[:len(needle.b)], needle.b)
}

// EndsWith reports whether haystack ends with needle
func EndsWith(haystack, needle Text) bool {
	return len(needle.b) <= len(haystack.b) &&
		bytes.Equal(haystack.b[len(haystack.b)-len(needle.b):], needle.b)
}

// indexFrom searches for needle in haystack starting at from
func indexFrom(haystack, needle []byte, from int) int {
	if from < 0 || from > len(haystack) {
		return NotFound
	}
	i := bytes.Index(haystack[from:], needle)
	if i < 0 {
		return NotFound
	}
	return from + i
}

// advance is how far a left-to-right scan moves past a match; at least
// one byte so an empty needle cannot stall the scan.
func advance(needle []byte) int {
	if len(needle) == 0 {
		return 1
	}
	return len(needle)
}
