// Package id generates the prefixed identifiers used for every entity, e.g. "issue-<uuid>".
package id

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const (
	PrefixUser     = "user"
	PrefixIssue    = "issue"
	PrefixComment  = "comment"
	PrefixPhoto    = "photo"
	PrefixActivity = "activity"
)

const separator = "-"

// New returns a fresh random identifier for the given entity prefix.
func New(prefix string) string {
	return prefix + separator + uuid.NewString()
}

// HasPrefix reports whether id was generated for the given entity prefix.
func HasPrefix(id, prefix string) bool {
	return strings.HasPrefix(id, prefix+separator)
}

// Validate checks that id carries prefix followed by a well-formed UUID.
func Validate(id, prefix string) error {
	if !HasPrefix(id, prefix) {
		return fmt.Errorf("invalid %s id: %q", prefix, id)
	}
	if _, err := uuid.Parse(strings.TrimPrefix(id, prefix+separator)); err != nil {
		return fmt.Errorf("invalid %s id: %q", prefix, id)
	}
	return nil
}
