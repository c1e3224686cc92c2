package usecases

import (
	"context"

	"fixit/internal/application/issue/dto"
	"fixit/internal/domain/issue"
	"fixit/internal/domain/issue/specifications"
	"fixit/internal/shared/biztime"
	"fixit/internal/shared/logger"
)

type ListIssuesQuery struct {
	Actor    issue.Actor
	Criteria specifications.Criteria
}

type ListIssuesUseCase struct {
	issueRepo issue.Repository
	logger    logger.Interface
}

func NewListIssuesUseCase(issueRepo issue.Repository, logger logger.Interface) *ListIssuesUseCase {
	return &ListIssuesUseCase{
		issueRepo: issueRepo,
		logger:    logger,
	}
}

// Execute loads every issue and narrows it to what the actor may see under the given criteria.
func (uc *ListIssuesUseCase) Execute(ctx context.Context, query ListIssuesQuery) (*dto.IssueListDTO, error) {
	all, err := uc.issueRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list issues", "error", err)
		return nil, err
	}

	now := biztime.NowUTC()
	visible := specifications.VisibleIssues(all, query.Actor.Role, query.Actor.UserID, query.Criteria, now)

	return &dto.IssueListDTO{
		Issues:            dto.ToIssueDTOList(visible, now),
		ActiveFilterCount: query.Criteria.ActiveFilterCount(),
	}, nil
}
