package specifications

import (
	"time"

	"fixit/internal/domain/issue"
	vo "fixit/internal/domain/issue/valueobjects"
	"fixit/internal/domain/user"
)

// Criteria holds the list filters. The zero value filters nothing.
type Criteria struct {
	Search   string
	Status   *vo.IssueStatus
	WorkerID *string
	Priority *vo.Priority
	Overdue  bool
	DueFrom  *time.Time
	DueTo    *time.Time
}

// ActiveFilterCount counts the dimensions that differ from their default, 0 to 7.
func (c Criteria) ActiveFilterCount() int {
	count := 0
	if c.Search != "" {
		count++
	}
	if c.Status != nil {
		count++
	}
	if c.WorkerID != nil {
		count++
	}
	if c.Priority != nil {
		count++
	}
	if c.Overdue {
		count++
	}
	if c.DueFrom != nil {
		count++
	}
	if c.DueTo != nil {
		count++
	}
	return count
}

// Specification combines the active filters with AND.
func (c Criteria) Specification(now time.Time) Specification {
	specs := make([]Specification, 0, 6)
	if c.Search != "" {
		specs = append(specs, NewTextSearchSpecification(c.Search))
	}
	if c.Status != nil {
		specs = append(specs, NewStatusSpecification(*c.Status))
	}
	if c.WorkerID != nil {
		specs = append(specs, NewAssignedToSpecification(*c.WorkerID))
	}
	if c.Priority != nil {
		specs = append(specs, NewPrioritySpecification(*c.Priority))
	}
	if c.Overdue {
		specs = append(specs, NewOverdueSpecification(now))
	}
	if c.DueFrom != nil || c.DueTo != nil {
		specs = append(specs, NewDueDateRangeSpecification(c.DueFrom, c.DueTo))
	}
	if len(specs) == 0 {
		return AllSpecification{}
	}
	return And(specs...)
}

// Clear returns criteria with every filter at its default.
func Clear() Criteria {
	return Criteria{}
}

// MyIssues shows only issues assigned to userID.
func MyIssues(userID string) Criteria {
	return Criteria{WorkerID: &userID}
}

func OverdueOnly() Criteria {
	return Criteria{Overdue: true}
}

// HighPriority shows only URGENT issues.
func HighPriority() Criteria {
	p := vo.PriorityUrgent
	return Criteria{Priority: &p}
}

// roleScope restricts what a role may see before any filter applies.
func roleScope(role user.Role, currentUserID string) Specification {
	switch role {
	case user.RoleManager:
		return AllSpecification{}
	case user.RoleWorker:
		return NewAssignedToSpecification(currentUserID)
	default:
		return Not(AllSpecification{})
	}
}

// VisibleIssues derives the list a user sees: workers only get their assigned issues, then the
// criteria are applied. Input order is preserved.
func VisibleIssues(all []*issue.Issue, role user.Role, currentUserID string, c Criteria, now time.Time) []*issue.Issue {
	spec := And(roleScope(role, currentUserID), c.Specification(now))

	visible := make([]*issue.Issue, 0, len(all))
	for _, iss := range all {
		if spec.IsSatisfiedBy(iss) {
			visible = append(visible, iss)
		}
	}
	return visible
}
