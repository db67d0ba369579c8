package textutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", "김철수", "김철수"},
		{"surrounding whitespace", "  김철수 ", "김철수"},
		{"internal whitespace collapsed", "김  철수", "김 철수"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanName(tt.input))
		})
	}
}

func TestDigitsOnly(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"thousands separator", "50,000", "50000"},
		{"currency suffix", "50000원", "50000"},
		{"plain digits", "30000", "30000"},
		{"no digits", "abc", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DigitsOnly(tt.input))
		})
	}
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		name     string
		a, b     string
		expected int
	}{
		{"identical", "김철수", "김철수", 0},
		{"single substitution", "김철수", "이철수", 1},
		{"single deletion", "김철수", "김수", 1},
		{"two edits", "김철수", "박영수", 2},
		{"empty against name", "", "김철수", 3},
		{"both empty", "", "", 0},
		{"ascii", "kitten", "sitting", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Levenshtein(tt.a, tt.b))
			assert.Equal(t, tt.expected, Levenshtein(tt.b, tt.a), "distance must be symmetric")
		})
	}
}
