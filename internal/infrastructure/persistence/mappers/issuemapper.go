package mappers

import (
	"fmt"
	"time"

	"fixit/internal/domain/issue"
	vo "fixit/internal/domain/issue/valueobjects"
	"fixit/internal/infrastructure/persistence/models"
)

// IssueMapper handles the conversion between issue aggregates and persistence models.
type IssueMapper interface {
	ToModel(iss *issue.Issue) *models.IssueModel
	ToDomain(model *models.IssueModel) (*issue.Issue, error)
	ToDomainList(models []models.IssueModel) ([]*issue.Issue, error)

	CommentToModel(c *issue.Comment) *models.IssueCommentModel
	CommentToDomain(model *models.IssueCommentModel) (*issue.Comment, error)

	PhotoToModel(p *issue.Photo) *models.IssuePhotoModel
	PhotoToDomain(model *models.IssuePhotoModel) (*issue.Photo, error)

	ActivityToModel(a *issue.ActivityLog) *models.ActivityLogModel
	ActivityToDomain(model *models.ActivityLogModel) (*issue.ActivityLog, error)
}

type IssueMapperImpl struct{}

func NewIssueMapper() IssueMapper {
	return &IssueMapperImpl{}
}

func (m *IssueMapperImpl) ToModel(iss *issue.Issue) *models.IssueModel {
	return &models.IssueModel{
		SID:         iss.ID(),
		Description: iss.Description(),
		FlatNumber:  iss.FlatNumber(),
		Status:      iss.Status().String(),
		Priority:    iss.Priority().String(),
		CreatedBy:   iss.CreatedBy(),
		AssignedTo:  iss.AssignedTo(),
		DueDate:     toMillis(iss.DueDate()),
		CompletedAt: toMillis(iss.CompletedAt()),
		CreatedAt:   iss.CreatedAt().UnixMilli(),
		UpdatedAt:   iss.UpdatedAt().UnixMilli(),
	}
}

func (m *IssueMapperImpl) ToDomain(model *models.IssueModel) (*issue.Issue, error) {
	if model == nil {
		return nil, nil
	}

	iss, err := issue.ReconstructIssue(
		model.SID,
		model.Description,
		model.FlatNumber,
		vo.IssueStatus(model.Status),
		model.CreatedBy,
		model.AssignedTo,
		vo.Priority(model.Priority),
		fromMillis(model.DueDate),
		time.UnixMilli(model.CreatedAt).UTC(),
		fromMillis(model.CompletedAt),
		time.UnixMilli(model.UpdatedAt).UTC(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to map issue %s: %w", model.SID, err)
	}
	return iss, nil
}

func (m *IssueMapperImpl) ToDomainList(issueModels []models.IssueModel) ([]*issue.Issue, error) {
	issues := make([]*issue.Issue, 0, len(issueModels))
	for i := range issueModels {
		iss, err := m.ToDomain(&issueModels[i])
		if err != nil {
			return nil, err
		}
		issues = append(issues, iss)
	}
	return issues, nil
}

func (m *IssueMapperImpl) CommentToModel(c *issue.Comment) *models.IssueCommentModel {
	return &models.IssueCommentModel{
		SID:       c.ID(),
		IssueID:   c.IssueID(),
		UserID:    c.UserID(),
		Text:      c.Text(),
		CreatedAt: c.CreatedAt().UnixMilli(),
	}
}

func (m *IssueMapperImpl) CommentToDomain(model *models.IssueCommentModel) (*issue.Comment, error) {
	return issue.ReconstructComment(model.SID, model.IssueID, model.UserID, model.Text,
		time.UnixMilli(model.CreatedAt).UTC())
}

func (m *IssueMapperImpl) PhotoToModel(p *issue.Photo) *models.IssuePhotoModel {
	return &models.IssuePhotoModel{
		SID:        p.ID(),
		IssueID:    p.IssueID(),
		PhotoPath:  p.PhotoPath(),
		UploadedBy: p.UploadedBy(),
		CreatedAt:  p.CreatedAt().UnixMilli(),
	}
}

func (m *IssueMapperImpl) PhotoToDomain(model *models.IssuePhotoModel) (*issue.Photo, error) {
	return issue.ReconstructPhoto(model.SID, model.IssueID, model.PhotoPath, model.UploadedBy,
		time.UnixMilli(model.CreatedAt).UTC())
}

func (m *IssueMapperImpl) ActivityToModel(a *issue.ActivityLog) *models.ActivityLogModel {
	return &models.ActivityLogModel{
		SID:          a.ID(),
		IssueID:      a.IssueID(),
		UserID:       a.UserID(),
		ActivityType: a.ActivityType().String(),
		OldValue:     a.OldValue(),
		NewValue:     a.NewValue(),
		CreatedAt:    a.CreatedAt().UnixMilli(),
	}
}

func (m *IssueMapperImpl) ActivityToDomain(model *models.ActivityLogModel) (*issue.ActivityLog, error) {
	return issue.ReconstructActivityLog(model.SID, model.IssueID, model.UserID,
		vo.ActivityType(model.ActivityType), model.OldValue, model.NewValue,
		time.UnixMilli(model.CreatedAt).UTC())
}

func toMillis(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	ms := t.UnixMilli()
	return &ms
}

func fromMillis(ms *int64) *time.Time {
	if ms == nil {
		return nil
	}
	t := time.UnixMilli(*ms).UTC()
	return &t
}
