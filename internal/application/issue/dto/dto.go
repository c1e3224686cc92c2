package dto

import (
	"time"

	"fixit/internal/domain/issue"
	vo "fixit/internal/domain/issue/valueobjects"
	"fixit/internal/domain/user"
)

type IssueDTO struct {
	ID          string     `json:"id"`
	Description string     `json:"description"`
	FlatNumber  string     `json:"flat_number"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	CreatedBy   string     `json:"created_by"`
	AssignedTo  *string    `json:"assigned_to"`
	DueDate     *time.Time `json:"due_date"`
	IsOverdue   bool       `json:"is_overdue"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// IssueDetailDTO adds the statuses the requesting user may move the issue to.
type IssueDetailDTO struct {
	IssueDTO
	CreatorName     string   `json:"creator_name,omitempty"`
	AssigneeName    string   `json:"assignee_name,omitempty"`
	AllowedStatuses []string `json:"allowed_statuses"`
	CanAssign       bool     `json:"can_assign"`
}

type IssueListDTO struct {
	Issues            []*IssueDTO `json:"issues"`
	ActiveFilterCount int         `json:"active_filter_count"`
}

type CommentDTO struct {
	ID        string    `json:"id"`
	IssueID   string    `json:"issue_id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	CanDelete bool      `json:"can_delete"`
}

type PhotoDTO struct {
	ID         string    `json:"id"`
	IssueID    string    `json:"issue_id"`
	PhotoPath  string    `json:"photo_path"`
	UploadedBy string    `json:"uploaded_by"`
	CreatedAt  time.Time `json:"created_at"`
	CanDelete  bool      `json:"can_delete"`
}

type ActivityDTO struct {
	ID           string    `json:"id"`
	IssueID      string    `json:"issue_id"`
	UserID       string    `json:"user_id"`
	UserName     string    `json:"user_name"`
	ActivityType string    `json:"activity_type"`
	OldValue     *string   `json:"old_value"`
	NewValue     *string   `json:"new_value"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"created_at"`
}

func ToIssueDTO(iss *issue.Issue, now time.Time) *IssueDTO {
	if iss == nil {
		return nil
	}

	return &IssueDTO{
		ID:          iss.ID(),
		Description: iss.Description(),
		FlatNumber:  iss.FlatNumber(),
		Status:      iss.Status().String(),
		Priority:    iss.Priority().String(),
		CreatedBy:   iss.CreatedBy(),
		AssignedTo:  iss.AssignedTo(),
		DueDate:     iss.DueDate(),
		IsOverdue:   iss.IsOverdue(now),
		CreatedAt:   iss.CreatedAt(),
		CompletedAt: iss.CompletedAt(),
		UpdatedAt:   iss.UpdatedAt(),
	}
}

func ToIssueDTOList(issues []*issue.Issue, now time.Time) []*IssueDTO {
	dtos := make([]*IssueDTO, 0, len(issues))
	for _, iss := range issues {
		dtos = append(dtos, ToIssueDTO(iss, now))
	}
	return dtos
}

func StatusStrings(statuses []vo.IssueStatus) []string {
	out := make([]string, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, s.String())
	}
	return out
}

// UserNames indexes user display names by id.
type UserNames map[string]string

func NewUserNames(users []*user.User) UserNames {
	names := make(UserNames, len(users))
	for _, u := range users {
		names[u.ID()] = u.Name()
	}
	return names
}

// Name falls back to "Unknown" for users that no longer resolve.
func (n UserNames) Name(userID string) string {
	if name, ok := n[userID]; ok {
		return name
	}
	return "Unknown"
}

func ToCommentDTO(c *issue.Comment, names UserNames, actor issue.Actor) *CommentDTO {
	return &CommentDTO{
		ID:        c.ID(),
		IssueID:   c.IssueID(),
		UserID:    c.UserID(),
		UserName:  names.Name(c.UserID()),
		Text:      c.Text(),
		CreatedAt: c.CreatedAt(),
		CanDelete: issue.CheckDeleteComment(actor, c) == nil,
	}
}

func ToPhotoDTO(p *issue.Photo, actor issue.Actor) *PhotoDTO {
	return &PhotoDTO{
		ID:         p.ID(),
		IssueID:    p.IssueID(),
		PhotoPath:  p.PhotoPath(),
		UploadedBy: p.UploadedBy(),
		CreatedAt:  p.CreatedAt(),
		CanDelete:  issue.CheckDeletePhoto(actor, p) == nil,
	}
}

func ToActivityDTO(a *issue.ActivityLog, names UserNames) *ActivityDTO {
	return &ActivityDTO{
		ID:           a.ID(),
		IssueID:      a.IssueID(),
		UserID:       a.UserID(),
		UserName:     names.Name(a.UserID()),
		ActivityType: a.ActivityType().String(),
		OldValue:     a.OldValue(),
		NewValue:     a.NewValue(),
		Description:  a.Describe(),
		CreatedAt:    a.CreatedAt(),
	}
}
