package usecases

import (
	"context"

	"fixit/internal/application/user/dto"
	"fixit/internal/domain/user"
	"fixit/internal/shared/errors"
	"fixit/internal/shared/logger"
)

type GetUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetUserUseCase(userRepo user.Repository, logger logger.Interface) *GetUserUseCase {
	return &GetUserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *GetUserUseCase) Execute(ctx context.Context, userID string) (*dto.UserDTO, error) {
	if userID == "" {
		return nil, errors.NewValidationError("User ID is required")
	}

	u, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "user_id", userID, "error", err)
		return nil, err
	}
	if u == nil {
		uc.logger.Warnw("user not found", "user_id", userID)
		return nil, errors.NewNotFoundError("User not found")
	}

	return dto.ToUserDTO(u), nil
}
