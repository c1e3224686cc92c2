package issue

import (
	"context"

	vo "fixit/internal/domain/issue/valueobjects"
)

// Repository is the only mutation gateway for issues and their comments and photos. Every write
// appends its activity entry in the same transaction as the primary row.
type Repository interface {
	// Create inserts the issue with its initial photos.
	Create(ctx context.Context, issue *Issue, photos []*Photo) error

	// GetByID returns nil, nil when the issue does not exist.
	GetByID(ctx context.Context, id string) (*Issue, error)

	// List returns every issue in insertion order.
	List(ctx context.Context) ([]*Issue, error)

	// ChangeStatus re-reads the issue inside the transaction and applies the status policy there.
	ChangeStatus(ctx context.Context, issueID string, newStatus vo.IssueStatus, actor Actor) (*Issue, error)

	// AssignWorker sets or, with a nil workerID, clears the assignee.
	AssignWorker(ctx context.Context, issueID string, workerID *string, actor Actor) (*Issue, error)

	AddComment(ctx context.Context, comment *Comment) error
	DeleteComment(ctx context.Context, commentID, issueID string, actor Actor) error
	ListComments(ctx context.Context, issueID string) ([]*Comment, error)

	AddPhoto(ctx context.Context, photo *Photo) error
	DeletePhoto(ctx context.Context, photoID, issueID string, actor Actor) error
	ListPhotos(ctx context.Context, issueID string) ([]*Photo, error)

	CountPhotos(ctx context.Context) (int64, error)
	CountComments(ctx context.Context) (int64, error)
}

// ActivityLogRepository persists audit entries. Entries cannot be updated or deleted.
type ActivityLogRepository interface {
	Append(ctx context.Context, entry *ActivityLog) error
	// ListByIssue returns the entries of one issue, oldest first.
	ListByIssue(ctx context.Context, issueID string) ([]*ActivityLog, error)
}
