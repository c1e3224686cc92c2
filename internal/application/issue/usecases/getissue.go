package usecases

import (
	"context"

	"fixit/internal/application/issue/dto"
	"fixit/internal/domain/issue"
	"fixit/internal/domain/user"
	"fixit/internal/shared/biztime"
	"fixit/internal/shared/logger"
)

type GetIssueQuery struct {
	Actor   issue.Actor
	IssueID string
}

type GetIssueUseCase struct {
	issueRepo issue.Repository
	userRepo  user.Repository
	logger    logger.Interface
}

func NewGetIssueUseCase(issueRepo issue.Repository, userRepo user.Repository, logger logger.Interface) *GetIssueUseCase {
	return &GetIssueUseCase{
		issueRepo: issueRepo,
		userRepo:  userRepo,
		logger:    logger,
	}
}

func (uc *GetIssueUseCase) Execute(ctx context.Context, query GetIssueQuery) (*dto.IssueDetailDTO, error) {
	iss, err := loadVisibleIssue(ctx, uc.issueRepo, query.Actor, query.IssueID)
	if err != nil {
		uc.logger.Warnw("failed to get issue", "issue_id", query.IssueID, "error", err)
		return nil, err
	}

	detail := &dto.IssueDetailDTO{
		IssueDTO:        *dto.ToIssueDTO(iss, biztime.NowUTC()),
		AllowedStatuses: dto.StatusStrings(issue.AllowedStatusTargetsFor(query.Actor, iss)),
		CanAssign:       issue.CheckAssign(query.Actor) == nil,
	}

	creator, err := uc.userRepo.GetByID(ctx, iss.CreatedBy())
	if err != nil {
		return nil, err
	}
	if creator != nil {
		detail.CreatorName = creator.Name()
	}

	if iss.AssignedTo() != nil {
		assignee, err := uc.userRepo.GetByID(ctx, *iss.AssignedTo())
		if err != nil {
			return nil, err
		}
		if assignee != nil {
			detail.AssigneeName = assignee.Name()
		}
	}

	return detail, nil
}
