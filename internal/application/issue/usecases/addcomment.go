package usecases

import (
	"context"

	"fixit/internal/application/issue/dto"
	"fixit/internal/domain/issue"
	"fixit/internal/domain/user"
	"fixit/internal/shared/logger"
)

type AddCommentCommand struct {
	Actor   issue.Actor
	IssueID string
	Text    string
}

type AddCommentUseCase struct {
	issueRepo issue.Repository
	userRepo  user.Repository
	dashboard DashboardInvalidator
	logger    logger.Interface
}

func NewAddCommentUseCase(
	issueRepo issue.Repository,
	userRepo user.Repository,
	dashboard DashboardInvalidator,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		issueRepo: issueRepo,
		userRepo:  userRepo,
		dashboard: dashboard,
		logger:    logger,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*dto.CommentDTO, error) {
	uc.logger.Infow("executing add comment use case", "issue_id", cmd.IssueID, "user_id", cmd.Actor.UserID)

	if _, err := loadVisibleIssue(ctx, uc.issueRepo, cmd.Actor, cmd.IssueID); err != nil {
		return nil, err
	}

	comment, err := issue.NewComment(cmd.IssueID, cmd.Actor, cmd.Text)
	if err != nil {
		return nil, err
	}

	if err := uc.issueRepo.AddComment(ctx, comment); err != nil {
		uc.logger.Errorw("failed to add comment", "issue_id", cmd.IssueID, "error", err)
		return nil, err
	}

	invalidateDashboard(ctx, uc.dashboard, uc.logger)

	names := dto.UserNames{}
	if author, err := uc.userRepo.GetByID(ctx, cmd.Actor.UserID); err == nil && author != nil {
		names[author.ID()] = author.Name()
	}

	uc.logger.Infow("comment added successfully", "issue_id", cmd.IssueID, "comment_id", comment.ID())

	return dto.ToCommentDTO(comment, names, cmd.Actor), nil
}
