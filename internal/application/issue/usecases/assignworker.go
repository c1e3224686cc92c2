package usecases

import (
	"context"

	"fixit/internal/application/issue/dto"
	"fixit/internal/domain/issue"
	"fixit/internal/shared/biztime"
	"fixit/internal/shared/errors"
	"fixit/internal/shared/logger"
)

// AssignWorkerCommand clears the assignment when WorkerID is nil.
type AssignWorkerCommand struct {
	Actor    issue.Actor
	IssueID  string
	WorkerID *string
}

type AssignWorkerUseCase struct {
	issueRepo issue.Repository
	dashboard DashboardInvalidator
	logger    logger.Interface
}

func NewAssignWorkerUseCase(
	issueRepo issue.Repository,
	dashboard DashboardInvalidator,
	logger logger.Interface,
) *AssignWorkerUseCase {
	return &AssignWorkerUseCase{
		issueRepo: issueRepo,
		dashboard: dashboard,
		logger:    logger,
	}
}

func (uc *AssignWorkerUseCase) Execute(ctx context.Context, cmd AssignWorkerCommand) (*dto.IssueDTO, error) {
	uc.logger.Infow("executing assign worker use case", "issue_id", cmd.IssueID, "worker_id", cmd.WorkerID)

	if err := issue.CheckAssign(cmd.Actor); err != nil {
		return nil, err
	}
	if cmd.IssueID == "" {
		return nil, errors.NewValidationError("Issue ID is required")
	}

	workerID := cmd.WorkerID
	if workerID != nil && *workerID == "" {
		workerID = nil
	}

	updated, err := uc.issueRepo.AssignWorker(ctx, cmd.IssueID, workerID, cmd.Actor)
	if err != nil {
		uc.logger.Warnw("failed to assign worker", "issue_id", cmd.IssueID, "error", err)
		return nil, err
	}

	invalidateDashboard(ctx, uc.dashboard, uc.logger)

	uc.logger.Infow("issue assignment updated", "issue_id", cmd.IssueID, "assigned_to", updated.AssignedTo())

	return dto.ToIssueDTO(updated, biztime.NowUTC()), nil
}
