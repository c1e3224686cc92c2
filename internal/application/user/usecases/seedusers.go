package usecases

import (
	"context"

	"fixit/internal/domain/user"
	"fixit/internal/shared/logger"
)

// DefaultUsersFunc returns the users inserted into an empty users table.
type DefaultUsersFunc func() ([]*user.User, error)

type SeedUsersUseCase struct {
	userRepo     user.Repository
	defaultUsers DefaultUsersFunc
	dashboard    DashboardInvalidator
	logger       logger.Interface
}

func NewSeedUsersUseCase(
	userRepo user.Repository,
	defaultUsers DefaultUsersFunc,
	dashboard DashboardInvalidator,
	logger logger.Interface,
) *SeedUsersUseCase {
	return &SeedUsersUseCase{
		userRepo:     userRepo,
		defaultUsers: defaultUsers,
		dashboard:    dashboard,
		logger:       logger,
	}
}

// Execute inserts the default users when no user exists yet and returns how many were inserted.
func (uc *SeedUsersUseCase) Execute(ctx context.Context) (int, error) {
	users, err := uc.defaultUsers()
	if err != nil {
		uc.logger.Errorw("failed to build default users", "error", err)
		return 0, err
	}

	inserted, err := uc.userRepo.SeedDefaultUsers(ctx, users)
	if err != nil {
		uc.logger.Errorw("failed to seed default users", "error", err)
		return 0, err
	}

	if inserted > 0 {
		invalidateDashboard(ctx, uc.dashboard, uc.logger)
		uc.logger.Infow("default users seeded", "count", inserted)
	}
	return inserted, nil
}
