package usecases

import (
	"context"
	"time"

	"fixit/internal/application/issue/dto"
	"fixit/internal/domain/issue"
	vo "fixit/internal/domain/issue/valueobjects"
	"fixit/internal/domain/user"
	"fixit/internal/shared/biztime"
	"fixit/internal/shared/errors"
	"fixit/internal/shared/logger"
)

type CreateIssueCommand struct {
	Actor       issue.Actor
	Description string
	FlatNumber  string
	Priority    string
	DueDate     *time.Time
	AssigneeID  *string
	PhotoPaths  []string
}

type CreateIssueUseCase struct {
	issueRepo issue.Repository
	userRepo  user.Repository
	dashboard DashboardInvalidator
	logger    logger.Interface
}

func NewCreateIssueUseCase(
	issueRepo issue.Repository,
	userRepo user.Repository,
	dashboard DashboardInvalidator,
	logger logger.Interface,
) *CreateIssueUseCase {
	return &CreateIssueUseCase{
		issueRepo: issueRepo,
		userRepo:  userRepo,
		dashboard: dashboard,
		logger:    logger,
	}
}

func (uc *CreateIssueUseCase) Execute(ctx context.Context, cmd CreateIssueCommand) (*dto.IssueDTO, error) {
	uc.logger.Infow("executing create issue use case", "user_id", cmd.Actor.UserID, "flat_number", cmd.FlatNumber)

	if err := issue.CheckCreateIssue(cmd.Actor); err != nil {
		return nil, err
	}

	var priority vo.Priority
	if cmd.Priority != "" {
		p, err := vo.NewPriority(cmd.Priority)
		if err != nil {
			return nil, errors.NewValidationError("Invalid priority", cmd.Priority)
		}
		priority = p
	}

	var assignee *user.User
	if cmd.AssigneeID != nil && *cmd.AssigneeID != "" {
		worker, err := uc.userRepo.GetByID(ctx, *cmd.AssigneeID)
		if err != nil {
			uc.logger.Errorw("failed to load assignee", "worker_id", *cmd.AssigneeID, "error", err)
			return nil, errors.NewStorageError("create issue", err)
		}
		if worker == nil {
			return nil, errors.NewNotFoundError("Worker not found", *cmd.AssigneeID)
		}
		assignee = worker
	}

	iss, err := issue.NewIssue(cmd.Actor, issue.NewIssueParams{
		Description: cmd.Description,
		FlatNumber:  cmd.FlatNumber,
		Priority:    priority,
		DueDate:     cmd.DueDate,
		Assignee:    assignee,
	})
	if err != nil {
		return nil, err
	}

	photos := make([]*issue.Photo, 0, len(cmd.PhotoPaths))
	for _, path := range cmd.PhotoPaths {
		photo, err := issue.NewPhoto(iss.ID(), cmd.Actor, path)
		if err != nil {
			return nil, err
		}
		photos = append(photos, photo)
	}

	if err := uc.issueRepo.Create(ctx, iss, photos); err != nil {
		uc.logger.Errorw("failed to create issue", "error", err)
		return nil, err
	}

	invalidateDashboard(ctx, uc.dashboard, uc.logger)

	uc.logger.Infow("issue created successfully", "issue_id", iss.ID(), "flat_number", iss.FlatNumber())

	return dto.ToIssueDTO(iss, biztime.NowUTC()), nil
}
