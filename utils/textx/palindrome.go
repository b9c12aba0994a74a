// File: palindrome.go
// Title: Palindrome Predicate
// Description: Byte-wise palindrome test with an explicit policy for texts
//              shorter than two bytes.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15

package textx

import (
	"strings"

	"github.com/msto63/stringext/core/errors"
)

// PalindromePolicy decides the answer for texts of length 0 and 1
type PalindromePolicy int

const (
	// ShortIsPalindrome treats "" and single bytes as palindromes
	ShortIsPalindrome PalindromePolicy = iota

	// ShortIsNotPalindrome treats "" and single bytes as not palindromes
	ShortIsNotPalindrome
)

// DefaultPalindromePolicy is the policy used by IsPalindrome
const DefaultPalindromePolicy = ShortIsPalindrome

// String returns the configuration name of the policy
func (p PalindromePolicy) String() string {
	switch p {
	case ShortIsPalindrome:
		return "short-is-palindrome"
	case ShortIsNotPalindrome:
		return "short-is-not-palindrome"
	default:
		return "unknown"
	}
}

// ParsePalindromePolicy parses a policy name as produced by String.
// The empty string selects DefaultPalindromePolicy.
func ParsePalindromePolicy(s string) (PalindromePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return DefaultPalindromePolicy, nil
	case "short-is-palindrome":
		return ShortIsPalindrome, nil
	case "short-is-not-palindrome":
		return ShortIsNotPalindrome, nil
	default:
		return DefaultPalindromePolicy, errors.TextxInvalidArgument("parse_palindrome_policy", "policy", s,
			"short-is-palindrome or short-is-not-palindrome")
	}
}

// IsPalindrome reports whether str reads the same reversed, using
// DefaultPalindromePolicy for texts shorter than two bytes
func IsPalindrome(str Text) bool {
	return IsPalindromeWithPolicy(str, DefaultPalindromePolicy)
}

// IsPalindromeWithPolicy compares the outermost bytes and moves inward
func IsPalindromeWithPolicy(str Text, policy PalindromePolicy) bool {
	if len(str.b) < 2 {
		return policy == ShortIsPalindrome
	}
	for i, j := 0, len(str.b)-1; i < j; i, j = i+1, j-1 {
		if str.b[i] != str.b[j] {
			return false
		}
	}
	return true
}
