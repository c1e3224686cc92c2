package valueobjects

import "fmt"

// ActivityType classifies an audit log entry.
type ActivityType string

const (
	ActivityCreated        ActivityType = "CREATED"
	ActivityStatusChanged  ActivityType = "STATUS_CHANGED"
	ActivityAssigned       ActivityType = "ASSIGNED"
	ActivityUnassigned     ActivityType = "UNASSIGNED"
	ActivityCommentAdded   ActivityType = "COMMENT_ADDED"
	ActivityCommentDeleted ActivityType = "COMMENT_DELETED"
	ActivityPhotoAdded     ActivityType = "PHOTO_ADDED"
	ActivityPhotoDeleted   ActivityType = "PHOTO_DELETED"
)

var validActivityTypes = map[ActivityType]bool{
	ActivityCreated:        true,
	ActivityStatusChanged:  true,
	ActivityAssigned:       true,
	ActivityUnassigned:     true,
	ActivityCommentAdded:   true,
	ActivityCommentDeleted: true,
	ActivityPhotoAdded:     true,
	ActivityPhotoDeleted:   true,
}

func (t ActivityType) String() string {
	return string(t)
}

func (t ActivityType) IsValid() bool {
	return validActivityTypes[t]
}

// Describe renders a one-line, human readable summary used in reports.
func (t ActivityType) Describe(oldValue, newValue *string) string {
	switch t {
	case ActivityCreated:
		return "Issue created"
	case ActivityStatusChanged:
		return fmt.Sprintf("Status changed from %s to %s",
			IssueStatus(deref(oldValue)).DisplayName(), IssueStatus(deref(newValue)).DisplayName())
	case ActivityAssigned:
		if oldValue != nil {
			return fmt.Sprintf("Reassigned from %s to %s", *oldValue, deref(newValue))
		}
		return fmt.Sprintf("Assigned to %s", deref(newValue))
	case ActivityUnassigned:
		return fmt.Sprintf("Unassigned from %s", deref(oldValue))
	case ActivityCommentAdded:
		return "Comment added"
	case ActivityCommentDeleted:
		return "Comment deleted"
	case ActivityPhotoAdded:
		return "Photo added"
	case ActivityPhotoDeleted:
		return "Photo deleted"
	default:
		return string(t)
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func NewActivityType(s string) (ActivityType, error) {
	t := ActivityType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid activity type: %s", s)
	}
	return t, nil
}
