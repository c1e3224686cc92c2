package usecases

import (
	"context"

	"fixit/internal/domain/issue"
	"fixit/internal/shared/errors"
	"fixit/internal/shared/logger"
)

type DeleteCommentCommand struct {
	Actor     issue.Actor
	IssueID   string
	CommentID string
}

type DeleteCommentUseCase struct {
	issueRepo issue.Repository
	dashboard DashboardInvalidator
	logger    logger.Interface
}

func NewDeleteCommentUseCase(
	issueRepo issue.Repository,
	dashboard DashboardInvalidator,
	logger logger.Interface,
) *DeleteCommentUseCase {
	return &DeleteCommentUseCase{
		issueRepo: issueRepo,
		dashboard: dashboard,
		logger:    logger,
	}
}

// Execute removes the comment. The author/manager rule is checked by the repository inside the
// same transaction that appends COMMENT_DELETED.
func (uc *DeleteCommentUseCase) Execute(ctx context.Context, cmd DeleteCommentCommand) error {
	uc.logger.Infow("executing delete comment use case", "issue_id", cmd.IssueID, "comment_id", cmd.CommentID)

	if cmd.CommentID == "" {
		return errors.NewValidationError("Comment ID is required")
	}
	if _, err := loadVisibleIssue(ctx, uc.issueRepo, cmd.Actor, cmd.IssueID); err != nil {
		return err
	}

	if err := uc.issueRepo.DeleteComment(ctx, cmd.CommentID, cmd.IssueID, cmd.Actor); err != nil {
		uc.logger.Warnw("failed to delete comment", "comment_id", cmd.CommentID, "error", err)
		return err
	}

	invalidateDashboard(ctx, uc.dashboard, uc.logger)

	uc.logger.Infow("comment deleted successfully", "comment_id", cmd.CommentID)
	return nil
}
