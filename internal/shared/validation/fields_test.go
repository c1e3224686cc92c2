package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlatNumberError(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"A-101", ""},
		{"Z-999", ""},
		{"", "Flat number is required"},
		{"   ", "Flat number is required"},
		{"a101", "Format: A-101 (Letter-Number)"},
		{"a-101", "Format: A-101 (Letter-Number)"},
		{"A101", "Format: A-101 (Letter-Number)"},
		{"AB-101", "Format: A-101 (Letter-Number)"},
		{"A-1010", "Format: A-101 (Letter-Number)"},
		{"A-10", "Format: A-101 (Letter-Number)"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, FlatNumberError(tt.input))
		})
	}
}

func TestNormalizeFlatNumber(t *testing.T) {
	assert.Equal(t, "A-101", NormalizeFlatNumber(" a-101 "))
	assert.Empty(t, FlatNumberError(NormalizeFlatNumber("b-202")))
}

func TestDescriptionError(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", "Description is required"},
		{"whitespace only", "    ", "Description is required"},
		{"too short", "Leaky", "Description must be at least 10 characters"},
		{"exactly min", strings.Repeat("x", 10), ""},
		{"trimmed before counting", "  short one!  ", ""},
		{"trim makes it short", "  short one  ", "Description must be at least 10 characters"},
		{"exactly max", strings.Repeat("x", 500), ""},
		{"too long", strings.Repeat("x", 501), "Description too long (max 500 characters)"},
		{"multibyte counted as runes", strings.Repeat("é", 10), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DescriptionError(tt.input))
		})
	}
}

func TestWorkerNameError(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", "Name is required"},
		{"one char", "J", "Name must be at least 2 characters"},
		{"two chars", "Jo", ""},
		{"fifty chars", strings.Repeat("n", 50), ""},
		{"fifty one chars", strings.Repeat("n", 51), "Name too long (max 50 characters)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WorkerNameError(tt.input))
		})
	}
}

func TestCommentTextError(t *testing.T) {
	assert.Equal(t, "Comment cannot be empty", CommentTextError("  "))
	assert.Empty(t, CommentTextError("On my way"))
	assert.Equal(t, "Comment too long (max 1000 characters)", CommentTextError(strings.Repeat("c", 1001)))
}
