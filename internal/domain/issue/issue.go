package issue

import (
	"fmt"
	"strings"
	"time"

	vo "fixit/internal/domain/issue/valueobjects"
	"fixit/internal/domain/user"
	"fixit/internal/shared/biztime"
	"fixit/internal/shared/errors"
	"fixit/internal/shared/id"
	"fixit/internal/shared/validation"
)

// Issue is a reported maintenance problem tied to a flat. Issues are never deleted.
type Issue struct {
	id          string
	description string
	flatNumber  string
	status      vo.IssueStatus
	createdBy   string
	assignedTo  *string
	priority    vo.Priority
	dueDate     *time.Time
	createdAt   time.Time
	completedAt *time.Time
	updatedAt   time.Time
}

// NewIssueParams carries the user-entered fields of a new issue.
type NewIssueParams struct {
	Description string
	FlatNumber  string
	Priority    vo.Priority
	DueDate     *time.Time
	// Assignee is optional; when set it must be a worker.
	Assignee *user.User
}

// NewIssue creates an OPEN issue on behalf of actor. Only managers may create issues.
// The flat number is normalized and both text fields are validated before anything else happens.
func NewIssue(actor Actor, p NewIssueParams) (*Issue, error) {
	if err := CheckCreateIssue(actor); err != nil {
		return nil, err
	}

	flatNumber := validation.NormalizeFlatNumber(p.FlatNumber)
	if msg := validation.FlatNumberError(flatNumber); msg != "" {
		return nil, errors.NewValidationError(msg)
	}
	description := strings.TrimSpace(p.Description)
	if msg := validation.DescriptionError(description); msg != "" {
		return nil, errors.NewValidationError(msg)
	}

	priority := p.Priority
	if priority == "" {
		priority = vo.DefaultPriority
	}
	if !priority.IsValid() {
		return nil, errors.NewValidationError("Invalid priority", string(priority))
	}

	var assignedTo *string
	if p.Assignee != nil {
		if err := checkAssignee(p.Assignee); err != nil {
			return nil, err
		}
		workerID := p.Assignee.ID()
		assignedTo = &workerID
	}

	now := biztime.NowUTC().Truncate(time.Millisecond)
	return &Issue{
		id:          id.New(id.PrefixIssue),
		description: description,
		flatNumber:  flatNumber,
		status:      vo.StatusOpen,
		createdBy:   actor.UserID,
		assignedTo:  assignedTo,
		priority:    priority,
		dueDate:     truncateMillis(p.DueDate),
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructIssue rebuilds an issue from persistence.
func ReconstructIssue(
	issueID string,
	description string,
	flatNumber string,
	status vo.IssueStatus,
	createdBy string,
	assignedTo *string,
	priority vo.Priority,
	dueDate *time.Time,
	createdAt time.Time,
	completedAt *time.Time,
	updatedAt time.Time,
) (*Issue, error) {
	if issueID == "" {
		return nil, fmt.Errorf("issue ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}

	return &Issue{
		id:          issueID,
		description: description,
		flatNumber:  flatNumber,
		status:      status,
		createdBy:   createdBy,
		assignedTo:  assignedTo,
		priority:    priority,
		dueDate:     dueDate,
		createdAt:   createdAt,
		completedAt: completedAt,
		updatedAt:   updatedAt,
	}, nil
}

func (i *Issue) ID() string {
	return i.id
}

func (i *Issue) Description() string {
	return i.description
}

func (i *Issue) FlatNumber() string {
	return i.flatNumber
}

func (i *Issue) Status() vo.IssueStatus {
	return i.status
}

func (i *Issue) CreatedBy() string {
	return i.createdBy
}

// AssignedTo returns the assigned worker id, nil when unassigned.
func (i *Issue) AssignedTo() *string {
	return i.assignedTo
}

func (i *Issue) Priority() vo.Priority {
	return i.priority
}

func (i *Issue) DueDate() *time.Time {
	return i.dueDate
}

func (i *Issue) CreatedAt() time.Time {
	return i.createdAt
}

// CompletedAt is set while the issue is VERIFIED.
func (i *Issue) CompletedAt() *time.Time {
	return i.completedAt
}

func (i *Issue) UpdatedAt() time.Time {
	return i.updatedAt
}

// IsAssignedTo reports whether userID is the current assignee.
func (i *Issue) IsAssignedTo(userID string) bool {
	return i.assignedTo != nil && *i.assignedTo == userID
}

// IsOverdue reports whether the due date has passed and the issue is not yet verified.
func (i *Issue) IsOverdue(now time.Time) bool {
	return i.dueDate != nil && i.dueDate.Before(now) && !i.status.IsVerified()
}

// ChangeStatus moves the issue to next if actor is allowed to. Entering VERIFIED stamps
// completedAt and leaving it clears the stamp.
func (i *Issue) ChangeStatus(actor Actor, next vo.IssueStatus) error {
	if err := CheckStatusChange(actor, i, next); err != nil {
		return err
	}

	now := biztime.NowUTC().Truncate(time.Millisecond)
	switch {
	case next.IsVerified():
		i.completedAt = &now
	case i.status.IsVerified():
		i.completedAt = nil
	}
	i.status = next
	i.updatedAt = now

	return nil
}

// Assign sets worker as the assignee, or clears the assignment when worker is nil.
// It returns the previous assignee id.
func (i *Issue) Assign(actor Actor, worker *user.User) (*string, error) {
	if err := CheckAssign(actor); err != nil {
		return nil, err
	}

	previous := i.assignedTo
	if worker == nil {
		i.assignedTo = nil
	} else {
		if err := checkAssignee(worker); err != nil {
			return nil, err
		}
		workerID := worker.ID()
		i.assignedTo = &workerID
	}
	i.updatedAt = biztime.NowUTC().Truncate(time.Millisecond)

	return previous, nil
}

func checkAssignee(worker *user.User) error {
	if !worker.IsWorker() {
		return errors.NewValidationError("Only workers can be assigned to issues", worker.ID())
	}
	return nil
}

func truncateMillis(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC().Truncate(time.Millisecond)
	return &v
}
