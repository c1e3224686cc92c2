package issue

import (
	"fmt"
	"time"

	vo "fixit/internal/domain/issue/valueobjects"
	"fixit/internal/shared/biztime"
	"fixit/internal/shared/id"
)

// ActivityLog is one immutable audit entry. Entries are only ever appended.
type ActivityLog struct {
	id           string
	issueID      string
	userID       string
	activityType vo.ActivityType
	oldValue     *string
	newValue     *string
	createdAt    time.Time
}

func newActivity(issueID, userID string, t vo.ActivityType, oldValue, newValue *string) *ActivityLog {
	return &ActivityLog{
		id:           id.New(id.PrefixActivity),
		issueID:      issueID,
		userID:       userID,
		activityType: t,
		oldValue:     oldValue,
		newValue:     newValue,
		createdAt:    biztime.NowUTC().Truncate(time.Millisecond),
	}
}

// NewCreatedActivity records the creation of iss by its creator.
func NewCreatedActivity(iss *Issue) *ActivityLog {
	return newActivity(iss.id, iss.createdBy, vo.ActivityCreated, nil, nil)
}

// NewStatusChangedActivity records a move from one status to another.
func NewStatusChangedActivity(issueID string, actor Actor, from, to vo.IssueStatus) *ActivityLog {
	return newActivity(issueID, actor.UserID, vo.ActivityStatusChanged, strPtr(from.String()), strPtr(to.String()))
}

// NewAssignmentActivity records an assignment change. Clearing the assignee yields UNASSIGNED
// with the previous worker as old value; anything else yields ASSIGNED, carrying the previous
// worker (if any) as old value.
func NewAssignmentActivity(issueID string, actor Actor, previous, current *string) *ActivityLog {
	if current == nil {
		return newActivity(issueID, actor.UserID, vo.ActivityUnassigned, copyPtr(previous), nil)
	}
	return newActivity(issueID, actor.UserID, vo.ActivityAssigned, copyPtr(previous), copyPtr(current))
}

func NewCommentAddedActivity(c *Comment) *ActivityLog {
	return newActivity(c.issueID, c.userID, vo.ActivityCommentAdded, nil, strPtr(c.id))
}

// NewCommentDeletedActivity is attributed to actor, who may differ from the author.
func NewCommentDeletedActivity(c *Comment, actor Actor) *ActivityLog {
	return newActivity(c.issueID, actor.UserID, vo.ActivityCommentDeleted, strPtr(c.id), nil)
}

func NewPhotoAddedActivity(p *Photo) *ActivityLog {
	return newActivity(p.issueID, p.uploadedBy, vo.ActivityPhotoAdded, nil, strPtr(p.id))
}

func NewPhotoDeletedActivity(p *Photo, actor Actor) *ActivityLog {
	return newActivity(p.issueID, actor.UserID, vo.ActivityPhotoDeleted, strPtr(p.id), nil)
}

func ReconstructActivityLog(
	activityID, issueID, userID string,
	activityType vo.ActivityType,
	oldValue, newValue *string,
	createdAt time.Time,
) (*ActivityLog, error) {
	if activityID == "" {
		return nil, fmt.Errorf("activity ID is required")
	}
	if !activityType.IsValid() {
		return nil, fmt.Errorf("invalid activity type: %s", activityType)
	}

	return &ActivityLog{
		id:           activityID,
		issueID:      issueID,
		userID:       userID,
		activityType: activityType,
		oldValue:     oldValue,
		newValue:     newValue,
		createdAt:    createdAt,
	}, nil
}

func (a *ActivityLog) ID() string {
	return a.id
}

func (a *ActivityLog) IssueID() string {
	return a.issueID
}

func (a *ActivityLog) UserID() string {
	return a.userID
}

func (a *ActivityLog) ActivityType() vo.ActivityType {
	return a.activityType
}

func (a *ActivityLog) OldValue() *string {
	return a.oldValue
}

func (a *ActivityLog) NewValue() *string {
	return a.newValue
}

func (a *ActivityLog) CreatedAt() time.Time {
	return a.createdAt
}

func (a *ActivityLog) Describe() string {
	return a.activityType.Describe(a.oldValue, a.newValue)
}

func strPtr(s string) *string {
	return &s
}

func copyPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
