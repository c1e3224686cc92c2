// Package validation holds the field rules applied before any issue or user is written.
// Each rule returns an empty string when the value is valid, otherwise a message fit for display.
package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	DescriptionMinLength = 10
	DescriptionMaxLength = 500
	NameMinLength        = 2
	NameMaxLength        = 50
	CommentMaxLength     = 1000
)

var flatNumberPattern = regexp.MustCompile(`^[A-Z]-\d{3}$`)

// NormalizeFlatNumber trims and upper-cases user input, so "a-101 " becomes "A-101".
func NormalizeFlatNumber(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// FlatNumberError validates a flat number of the form A-101.
func FlatNumberError(s string) string {
	if strings.TrimSpace(s) == "" {
		return "Flat number is required"
	}
	if !flatNumberPattern.MatchString(s) {
		return "Format: A-101 (Letter-Number)"
	}
	return ""
}

// DescriptionError validates an issue description.
func DescriptionError(s string) string {
	trimmed := strings.TrimSpace(s)
	n := utf8.RuneCountInString(trimmed)
	switch {
	case n == 0:
		return "Description is required"
	case n < DescriptionMinLength:
		return "Description must be at least 10 characters"
	case n > DescriptionMaxLength:
		return "Description too long (max 500 characters)"
	}
	return ""
}

// WorkerNameError validates the display name of a new user.
func WorkerNameError(s string) string {
	trimmed := strings.TrimSpace(s)
	n := utf8.RuneCountInString(trimmed)
	switch {
	case n == 0:
		return "Name is required"
	case n < NameMinLength:
		return "Name must be at least 2 characters"
	case n > NameMaxLength:
		return "Name too long (max 50 characters)"
	}
	return ""
}

// CommentTextError validates comment text.
func CommentTextError(s string) string {
	n := utf8.RuneCountInString(strings.TrimSpace(s))
	switch {
	case n == 0:
		return "Comment cannot be empty"
	case n > CommentMaxLength:
		return "Comment too long (max 1000 characters)"
	}
	return ""
}
