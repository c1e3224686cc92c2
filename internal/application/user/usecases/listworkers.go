package usecases

import (
	"context"

	"fixit/internal/application/user/dto"
	"fixit/internal/domain/user"
	"fixit/internal/shared/logger"
)

type ListWorkersUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListWorkersUseCase(userRepo user.Repository, logger logger.Interface) *ListWorkersUseCase {
	return &ListWorkersUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *ListWorkersUseCase) Execute(ctx context.Context) ([]*dto.UserDTO, error) {
	workers, err := uc.userRepo.ListWorkers(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list workers", "error", err)
		return nil, err
	}
	return dto.ToUserDTOList(workers), nil
}
