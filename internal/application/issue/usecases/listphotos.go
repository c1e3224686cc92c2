package usecases

import (
	"context"

	"fixit/internal/application/issue/dto"
	"fixit/internal/domain/issue"
	"fixit/internal/shared/logger"
)

type ListPhotosQuery struct {
	Actor   issue.Actor
	IssueID string
}

type ListPhotosUseCase struct {
	issueRepo issue.Repository
	logger    logger.Interface
}

func NewListPhotosUseCase(issueRepo issue.Repository, logger logger.Interface) *ListPhotosUseCase {
	return &ListPhotosUseCase{
		issueRepo: issueRepo,
		logger:    logger,
	}
}

func (uc *ListPhotosUseCase) Execute(ctx context.Context, query ListPhotosQuery) ([]*dto.PhotoDTO, error) {
	if _, err := loadVisibleIssue(ctx, uc.issueRepo, query.Actor, query.IssueID); err != nil {
		return nil, err
	}

	photos, err := uc.issueRepo.ListPhotos(ctx, query.IssueID)
	if err != nil {
		uc.logger.Errorw("failed to list photos", "issue_id", query.IssueID, "error", err)
		return nil, err
	}

	result := make([]*dto.PhotoDTO, 0, len(photos))
	for _, p := range photos {
		result = append(result, dto.ToPhotoDTO(p, query.Actor))
	}
	return result, nil
}
