package usecases

import (
	"context"

	"fixit/internal/application/user/dto"
	"fixit/internal/domain/user"
	"fixit/internal/shared/logger"
)

type ListUsersUseCase struct {
	userRepo user.Repository
	seeder   SeedUsersExecutor
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.Repository, seeder SeedUsersExecutor, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{
		userRepo: userRepo,
		seeder:   seeder,
		logger:   logger,
	}
}

// Execute lists every user ordered by name. An empty table is seeded with the default users first.
func (uc *ListUsersUseCase) Execute(ctx context.Context) ([]*dto.UserDTO, error) {
	count, err := uc.userRepo.Count(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count users", "error", err)
		return nil, err
	}

	if count == 0 {
		if _, err := uc.seeder.Execute(ctx); err != nil {
			return nil, err
		}
	}

	users, err := uc.userRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, err
	}

	return dto.ToUserDTOList(users), nil
}
