package issue

import (
	"fmt"
	"strings"
	"time"

	"fixit/internal/shared/biztime"
	"fixit/internal/shared/errors"
	"fixit/internal/shared/id"
)

// Photo references an image attached to an issue. The path is opaque to this package.
type Photo struct {
	id         string
	issueID    string
	photoPath  string
	uploadedBy string
	createdAt  time.Time
}

func NewPhoto(issueID string, actor Actor, photoPath string) (*Photo, error) {
	if issueID == "" {
		return nil, errors.NewValidationError("Issue ID is required")
	}
	photoPath = strings.TrimSpace(photoPath)
	if photoPath == "" {
		return nil, errors.NewValidationError("Photo path is required")
	}

	return &Photo{
		id:         id.New(id.PrefixPhoto),
		issueID:    issueID,
		photoPath:  photoPath,
		uploadedBy: actor.UserID,
		createdAt:  biztime.NowUTC().Truncate(time.Millisecond),
	}, nil
}

func ReconstructPhoto(photoID, issueID, photoPath, uploadedBy string, createdAt time.Time) (*Photo, error) {
	if photoID == "" {
		return nil, fmt.Errorf("photo ID is required")
	}
	if issueID == "" {
		return nil, fmt.Errorf("issue ID is required")
	}

	return &Photo{
		id:         photoID,
		issueID:    issueID,
		photoPath:  photoPath,
		uploadedBy: uploadedBy,
		createdAt:  createdAt,
	}, nil
}

func (p *Photo) ID() string {
	return p.id
}

func (p *Photo) IssueID() string {
	return p.issueID
}

func (p *Photo) PhotoPath() string {
	return p.photoPath
}

func (p *Photo) UploadedBy() string {
	return p.uploadedBy
}

func (p *Photo) CreatedAt() time.Time {
	return p.createdAt
}
