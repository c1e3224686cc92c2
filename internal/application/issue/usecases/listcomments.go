package usecases

import (
	"context"

	"fixit/internal/application/issue/dto"
	"fixit/internal/domain/issue"
	"fixit/internal/domain/user"
	"fixit/internal/shared/logger"
)

type ListCommentsQuery struct {
	Actor   issue.Actor
	IssueID string
}

type ListCommentsUseCase struct {
	issueRepo issue.Repository
	userRepo  user.Repository
	logger    logger.Interface
}

func NewListCommentsUseCase(issueRepo issue.Repository, userRepo user.Repository, logger logger.Interface) *ListCommentsUseCase {
	return &ListCommentsUseCase{
		issueRepo: issueRepo,
		userRepo:  userRepo,
		logger:    logger,
	}
}

// Execute returns the comments oldest first, each with its author's name.
func (uc *ListCommentsUseCase) Execute(ctx context.Context, query ListCommentsQuery) ([]*dto.CommentDTO, error) {
	if _, err := loadVisibleIssue(ctx, uc.issueRepo, query.Actor, query.IssueID); err != nil {
		return nil, err
	}

	comments, err := uc.issueRepo.ListComments(ctx, query.IssueID)
	if err != nil {
		uc.logger.Errorw("failed to list comments", "issue_id", query.IssueID, "error", err)
		return nil, err
	}

	users, err := uc.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	names := dto.NewUserNames(users)

	result := make([]*dto.CommentDTO, 0, len(comments))
	for _, c := range comments {
		result = append(result, dto.ToCommentDTO(c, names, query.Actor))
	}
	return result, nil
}
