// Package textutils provides text manipulation utilities used by the
// depositor matcher and the spreadsheet ingestor.
package textutils

import (
	"strings"
	"unicode"
)

// CleanName trims surrounding whitespace and collapses internal runs of
// whitespace in a depositor or member name.
func CleanName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}

// DigitsOnly strips every non-digit rune from s. Bank exports frequently
// format amounts with thousands separators or currency suffixes.
func DigitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Levenshtein computes the edit distance between a and b with unit-cost
// insertions, deletions and substitutions. Comparison is rune-based so
// multi-byte names (Hangul, CJK) count one edit per character.
func Levenshtein(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := 0; j <= len(rb); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min3(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
