// Package specifications expresses issue filters as composable predicates.
package specifications

import (
	"strings"
	"time"

	"golang.org/x/text/cases"

	"fixit/internal/domain/issue"
	vo "fixit/internal/domain/issue/valueobjects"
)

// Specification represents a rule an issue may satisfy
type Specification interface {
	IsSatisfiedBy(iss *issue.Issue) bool
}

// AndSpecification is satisfied when every part is.
type AndSpecification struct {
	specs []Specification
}

func And(specs ...Specification) Specification {
	return &AndSpecification{specs: specs}
}

func (s *AndSpecification) IsSatisfiedBy(iss *issue.Issue) bool {
	for _, spec := range s.specs {
		if !spec.IsSatisfiedBy(iss) {
			return false
		}
	}
	return true
}

// OrSpecification is satisfied when any part is.
type OrSpecification struct {
	specs []Specification
}

func Or(specs ...Specification) Specification {
	return &OrSpecification{specs: specs}
}

func (s *OrSpecification) IsSatisfiedBy(iss *issue.Issue) bool {
	for _, spec := range s.specs {
		if spec.IsSatisfiedBy(iss) {
			return true
		}
	}
	return false
}

type NotSpecification struct {
	spec Specification
}

func Not(spec Specification) Specification {
	return &NotSpecification{spec: spec}
}

func (s *NotSpecification) IsSatisfiedBy(iss *issue.Issue) bool {
	return !s.spec.IsSatisfiedBy(iss)
}

// AllSpecification matches every issue.
type AllSpecification struct{}

func (AllSpecification) IsSatisfiedBy(*issue.Issue) bool {
	return true
}

// AssignedToSpecification matches issues whose assignee is userID.
type AssignedToSpecification struct {
	userID string
}

func NewAssignedToSpecification(userID string) *AssignedToSpecification {
	return &AssignedToSpecification{userID: userID}
}

func (s *AssignedToSpecification) IsSatisfiedBy(iss *issue.Issue) bool {
	return iss.IsAssignedTo(s.userID)
}

// TextSearchSpecification matches a case-insensitive substring of the description or flat number.
type TextSearchSpecification struct {
	needle string
	folder cases.Caser
}

func NewTextSearchSpecification(term string) *TextSearchSpecification {
	folder := cases.Fold()
	return &TextSearchSpecification{needle: folder.String(term), folder: folder}
}

func (s *TextSearchSpecification) IsSatisfiedBy(iss *issue.Issue) bool {
	return strings.Contains(s.folder.String(iss.Description()), s.needle) ||
		strings.Contains(s.folder.String(iss.FlatNumber()), s.needle)
}

type StatusSpecification struct {
	status vo.IssueStatus
}

func NewStatusSpecification(status vo.IssueStatus) *StatusSpecification {
	return &StatusSpecification{status: status}
}

func (s *StatusSpecification) IsSatisfiedBy(iss *issue.Issue) bool {
	return iss.Status() == s.status
}

type PrioritySpecification struct {
	priority vo.Priority
}

func NewPrioritySpecification(priority vo.Priority) *PrioritySpecification {
	return &PrioritySpecification{priority: priority}
}

func (s *PrioritySpecification) IsSatisfiedBy(iss *issue.Issue) bool {
	return iss.Priority() == s.priority
}

// OverdueSpecification matches issues past their due date that are not verified.
type OverdueSpecification struct {
	now time.Time
}

func NewOverdueSpecification(now time.Time) *OverdueSpecification {
	return &OverdueSpecification{now: now}
}

func (s *OverdueSpecification) IsSatisfiedBy(iss *issue.Issue) bool {
	return iss.IsOverdue(s.now)
}

// DueDateRangeSpecification matches due dates within [from, to]. Either bound may be nil.
// An issue without a due date never matches.
type DueDateRangeSpecification struct {
	from *time.Time
	to   *time.Time
}

func NewDueDateRangeSpecification(from, to *time.Time) *DueDateRangeSpecification {
	return &DueDateRangeSpecification{from: from, to: to}
}

func (s *DueDateRangeSpecification) IsSatisfiedBy(iss *issue.Issue) bool {
	due := iss.DueDate()
	if due == nil {
		return false
	}
	if s.from != nil && due.Before(*s.from) {
		return false
	}
	if s.to != nil && due.After(*s.to) {
		return false
	}
	return true
}
