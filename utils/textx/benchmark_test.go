// File: benchmark_test.go
// Title: Benchmarks for textx
// Description: Benchmarks for the scanning and allocating operations.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15

package textx

import (
	"strings"
	"testing"
)

var benchText = New(strings.Repeat("the quick brown fox jumps over the lazy dog, ", 64))

func BenchmarkIndexOf(b *testing.B) {
	needle := New("lazy cat")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = IndexOf(benchText, needle)
	}
}

func BenchmarkCount(b *testing.B) {
	needle := New("the")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Count(benchText, needle)
	}
}

func BenchmarkReplaceAll(b *testing.B) {
	old, repl := New("fox"), New("wolf")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ReplaceAll(benchText, old, repl)
	}
}

func BenchmarkSplit(b *testing.B) {
	delim := New(", ")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Split(benchText, delim)
	}
}

func BenchmarkCenterJustify(b *testing.B) {
	s := New("title")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = CenterJustify(s, 80, '=')
	}
}

func BenchmarkToUpperCase(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = ToUpperCase(benchText)
	}
}
