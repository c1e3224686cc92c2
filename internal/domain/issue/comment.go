package issue

import (
	"fmt"
	"strings"
	"time"

	"fixit/internal/shared/biztime"
	"fixit/internal/shared/errors"
	"fixit/internal/shared/id"
	"fixit/internal/shared/validation"
)

// Comment is a note left on an issue. It can be deleted by its author or a manager.
type Comment struct {
	id        string
	issueID   string
	userID    string
	text      string
	createdAt time.Time
}

// NewComment creates a comment by actor on issueID. text is trimmed and validated.
func NewComment(issueID string, actor Actor, text string) (*Comment, error) {
	if issueID == "" {
		return nil, errors.NewValidationError("Issue ID is required")
	}
	text = strings.TrimSpace(text)
	if msg := validation.CommentTextError(text); msg != "" {
		return nil, errors.NewValidationError(msg)
	}

	return &Comment{
		id:        id.New(id.PrefixComment),
		issueID:   issueID,
		userID:    actor.UserID,
		text:      text,
		createdAt: biztime.NowUTC().Truncate(time.Millisecond),
	}, nil
}

func ReconstructComment(commentID, issueID, userID, text string, createdAt time.Time) (*Comment, error) {
	if commentID == "" {
		return nil, fmt.Errorf("comment ID is required")
	}
	if issueID == "" {
		return nil, fmt.Errorf("issue ID is required")
	}

	return &Comment{
		id:        commentID,
		issueID:   issueID,
		userID:    userID,
		text:      text,
		createdAt: createdAt,
	}, nil
}

func (c *Comment) ID() string {
	return c.id
}

func (c *Comment) IssueID() string {
	return c.issueID
}

// UserID is the author.
func (c *Comment) UserID() string {
	return c.userID
}

func (c *Comment) Text() string {
	return c.text
}

func (c *Comment) CreatedAt() time.Time {
	return c.createdAt
}
