package usecases

import (
	"context"

	"fixit/internal/domain/issue"
	"fixit/internal/shared/errors"
	"fixit/internal/shared/logger"
)

type DeletePhotoCommand struct {
	Actor   issue.Actor
	IssueID string
	PhotoID string
}

type DeletePhotoUseCase struct {
	issueRepo issue.Repository
	dashboard DashboardInvalidator
	logger    logger.Interface
}

func NewDeletePhotoUseCase(
	issueRepo issue.Repository,
	dashboard DashboardInvalidator,
	logger logger.Interface,
) *DeletePhotoUseCase {
	return &DeletePhotoUseCase{
		issueRepo: issueRepo,
		dashboard: dashboard,
		logger:    logger,
	}
}

func (uc *DeletePhotoUseCase) Execute(ctx context.Context, cmd DeletePhotoCommand) error {
	uc.logger.Infow("executing delete photo use case", "issue_id", cmd.IssueID, "photo_id", cmd.PhotoID)

	if cmd.PhotoID == "" {
		return errors.NewValidationError("Photo ID is required")
	}
	if _, err := loadVisibleIssue(ctx, uc.issueRepo, cmd.Actor, cmd.IssueID); err != nil {
		return err
	}

	if err := uc.issueRepo.DeletePhoto(ctx, cmd.PhotoID, cmd.IssueID, cmd.Actor); err != nil {
		uc.logger.Warnw("failed to delete photo", "photo_id", cmd.PhotoID, "error", err)
		return err
	}

	invalidateDashboard(ctx, uc.dashboard, uc.logger)
	return nil
}
