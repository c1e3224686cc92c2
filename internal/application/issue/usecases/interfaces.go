package usecases

import (
	"context"

	"fixit/internal/application/issue/dto"
)

type CreateIssueExecutor interface {
	Execute(ctx context.Context, cmd CreateIssueCommand) (*dto.IssueDTO, error)
}

type GetIssueExecutor interface {
	Execute(ctx context.Context, query GetIssueQuery) (*dto.IssueDetailDTO, error)
}

type ListIssuesExecutor interface {
	Execute(ctx context.Context, query ListIssuesQuery) (*dto.IssueListDTO, error)
}

type ChangeStatusExecutor interface {
	Execute(ctx context.Context, cmd ChangeStatusCommand) (*dto.IssueDTO, error)
}

type AssignWorkerExecutor interface {
	Execute(ctx context.Context, cmd AssignWorkerCommand) (*dto.IssueDTO, error)
}

type AddCommentExecutor interface {
	Execute(ctx context.Context, cmd AddCommentCommand) (*dto.CommentDTO, error)
}

type DeleteCommentExecutor interface {
	Execute(ctx context.Context, cmd DeleteCommentCommand) error
}

type ListCommentsExecutor interface {
	Execute(ctx context.Context, query ListCommentsQuery) ([]*dto.CommentDTO, error)
}

type AddPhotoExecutor interface {
	Execute(ctx context.Context, cmd AddPhotoCommand) (*dto.PhotoDTO, error)
}

type DeletePhotoExecutor interface {
	Execute(ctx context.Context, cmd DeletePhotoCommand) error
}

type ListPhotosExecutor interface {
	Execute(ctx context.Context, query ListPhotosQuery) ([]*dto.PhotoDTO, error)
}

type ListActivityExecutor interface {
	Execute(ctx context.Context, query ListActivityQuery) ([]*dto.ActivityDTO, error)
}

// DashboardInvalidator drops cached statistics after a write.
type DashboardInvalidator interface {
	Invalidate(ctx context.Context) error
}
