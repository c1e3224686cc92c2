package usecases

import (
	"context"

	"fixit/internal/application/issue/dto"
	"fixit/internal/domain/issue"
	"fixit/internal/domain/user"
	"fixit/internal/shared/logger"
)

type ListActivityQuery struct {
	Actor   issue.Actor
	IssueID string
}

type ListActivityUseCase struct {
	issueRepo    issue.Repository
	activityRepo issue.ActivityLogRepository
	userRepo     user.Repository
	logger       logger.Interface
}

func NewListActivityUseCase(
	issueRepo issue.Repository,
	activityRepo issue.ActivityLogRepository,
	userRepo user.Repository,
	logger logger.Interface,
) *ListActivityUseCase {
	return &ListActivityUseCase{
		issueRepo:    issueRepo,
		activityRepo: activityRepo,
		userRepo:     userRepo,
		logger:       logger,
	}
}

// Execute returns the issue's history, oldest first.
func (uc *ListActivityUseCase) Execute(ctx context.Context, query ListActivityQuery) ([]*dto.ActivityDTO, error) {
	if _, err := loadVisibleIssue(ctx, uc.issueRepo, query.Actor, query.IssueID); err != nil {
		return nil, err
	}

	entries, err := uc.activityRepo.ListByIssue(ctx, query.IssueID)
	if err != nil {
		uc.logger.Errorw("failed to list activity", "issue_id", query.IssueID, "error", err)
		return nil, err
	}

	users, err := uc.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	names := dto.NewUserNames(users)

	result := make([]*dto.ActivityDTO, 0, len(entries))
	for _, e := range entries {
		result = append(result, dto.ToActivityDTO(e, names))
	}
	return result, nil
}
