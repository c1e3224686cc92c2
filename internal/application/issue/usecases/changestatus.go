package usecases

import (
	"context"

	"fixit/internal/application/issue/dto"
	"fixit/internal/domain/issue"
	vo "fixit/internal/domain/issue/valueobjects"
	"fixit/internal/shared/biztime"
	"fixit/internal/shared/errors"
	"fixit/internal/shared/logger"
)

type ChangeStatusCommand struct {
	Actor     issue.Actor
	IssueID   string
	NewStatus string
}

type ChangeStatusUseCase struct {
	issueRepo issue.Repository
	dashboard DashboardInvalidator
	logger    logger.Interface
}

func NewChangeStatusUseCase(
	issueRepo issue.Repository,
	dashboard DashboardInvalidator,
	logger logger.Interface,
) *ChangeStatusUseCase {
	return &ChangeStatusUseCase{
		issueRepo: issueRepo,
		dashboard: dashboard,
		logger:    logger,
	}
}

func (uc *ChangeStatusUseCase) Execute(ctx context.Context, cmd ChangeStatusCommand) (*dto.IssueDTO, error) {
	uc.logger.Infow("executing change status use case",
		"issue_id", cmd.IssueID,
		"new_status", cmd.NewStatus,
		"user_id", cmd.Actor.UserID)

	if cmd.IssueID == "" {
		return nil, errors.NewValidationError("Issue ID is required")
	}
	status, err := vo.NewIssueStatus(cmd.NewStatus)
	if err != nil {
		return nil, errors.NewValidationError("Invalid status", cmd.NewStatus)
	}

	updated, err := uc.issueRepo.ChangeStatus(ctx, cmd.IssueID, status, cmd.Actor)
	if err != nil {
		uc.logger.Warnw("failed to change issue status", "issue_id", cmd.IssueID, "error", err)
		return nil, err
	}

	invalidateDashboard(ctx, uc.dashboard, uc.logger)

	uc.logger.Infow("issue status changed successfully", "issue_id", cmd.IssueID, "status", updated.Status())

	return dto.ToIssueDTO(updated, biztime.NowUTC()), nil
}
