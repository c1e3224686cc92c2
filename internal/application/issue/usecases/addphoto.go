package usecases

import (
	"context"

	"fixit/internal/application/issue/dto"
	"fixit/internal/domain/issue"
	"fixit/internal/shared/logger"
)

type AddPhotoCommand struct {
	Actor     issue.Actor
	IssueID   string
	PhotoPath string
}

type AddPhotoUseCase struct {
	issueRepo issue.Repository
	dashboard DashboardInvalidator
	logger    logger.Interface
}

func NewAddPhotoUseCase(
	issueRepo issue.Repository,
	dashboard DashboardInvalidator,
	logger logger.Interface,
) *AddPhotoUseCase {
	return &AddPhotoUseCase{
		issueRepo: issueRepo,
		dashboard: dashboard,
		logger:    logger,
	}
}

func (uc *AddPhotoUseCase) Execute(ctx context.Context, cmd AddPhotoCommand) (*dto.PhotoDTO, error) {
	uc.logger.Infow("executing add photo use case", "issue_id", cmd.IssueID, "user_id", cmd.Actor.UserID)

	if _, err := loadVisibleIssue(ctx, uc.issueRepo, cmd.Actor, cmd.IssueID); err != nil {
		return nil, err
	}

	photo, err := issue.NewPhoto(cmd.IssueID, cmd.Actor, cmd.PhotoPath)
	if err != nil {
		return nil, err
	}

	if err := uc.issueRepo.AddPhoto(ctx, photo); err != nil {
		uc.logger.Errorw("failed to add photo", "issue_id", cmd.IssueID, "error", err)
		return nil, err
	}

	invalidateDashboard(ctx, uc.dashboard, uc.logger)

	return dto.ToPhotoDTO(photo, cmd.Actor), nil
}
