package usecases

import (
	"context"

	"fixit/internal/application/user/dto"
	"fixit/internal/infrastructure/auth"
)

type ListUsersExecutor interface {
	Execute(ctx context.Context) ([]*dto.UserDTO, error)
}

type ListWorkersExecutor interface {
	Execute(ctx context.Context) ([]*dto.UserDTO, error)
}

type GetUserExecutor interface {
	Execute(ctx context.Context, userID string) (*dto.UserDTO, error)
}

type CreateWorkerExecutor interface {
	Execute(ctx context.Context, cmd CreateWorkerCommand) (*dto.UserDTO, error)
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*dto.LoginDTO, error)
}

type SeedUsersExecutor interface {
	Execute(ctx context.Context) (int, error)
}

// TokenGenerator issues an access token for a user id and role.
type TokenGenerator interface {
	Generate(userID string, role string) (*auth.Token, error)
}

// DashboardInvalidator drops cached statistics after a write.
type DashboardInvalidator interface {
	Invalidate(ctx context.Context) error
}
