package usecases

import (
	"fmt"
	"time"

	"fixit/internal/shared/biztime"
	"fixit/internal/shared/services/markdown"
)

// formatDate renders t as d/m/yyyy h:mm in the business timezone, without zero padding except
// for minutes.
func formatDate(t time.Time) string {
	t = t.In(biztime.Location())
	return fmt.Sprintf("%d/%d/%d %d:%02d", t.Day(), int(t.Month()), t.Year(), t.Hour(), t.Minute())
}

func formatOptionalDate(t *time.Time, empty string) string {
	if t == nil {
		return empty
	}
	return formatDate(*t)
}

// field writes one "**Label:** value" line.
func field(label, value string) string {
	return fmt.Sprintf("**%s:** %s  \n", label, markdown.EscapeInline(value))
}
