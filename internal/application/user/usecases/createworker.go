package usecases

import (
	"context"

	"fixit/internal/application/user/dto"
	"fixit/internal/domain/issue"
	"fixit/internal/domain/user"
	"fixit/internal/shared/logger"
)

type CreateWorkerCommand struct {
	Actor issue.Actor
	Name  string
}

type CreateWorkerUseCase struct {
	userRepo  user.Repository
	dashboard DashboardInvalidator
	logger    logger.Interface
}

func NewCreateWorkerUseCase(
	userRepo user.Repository,
	dashboard DashboardInvalidator,
	logger logger.Interface,
) *CreateWorkerUseCase {
	return &CreateWorkerUseCase{
		userRepo:  userRepo,
		dashboard: dashboard,
		logger:    logger,
	}
}

func (uc *CreateWorkerUseCase) Execute(ctx context.Context, cmd CreateWorkerCommand) (*dto.UserDTO, error) {
	uc.logger.Infow("executing create worker use case", "actor", cmd.Actor.UserID)

	if err := issue.CheckCreateUser(cmd.Actor); err != nil {
		return nil, err
	}

	worker, err := user.NewUser(cmd.Name, user.RoleWorker)
	if err != nil {
		return nil, err
	}

	if err := uc.userRepo.Create(ctx, worker); err != nil {
		uc.logger.Errorw("failed to create worker", "error", err)
		return nil, err
	}

	invalidateDashboard(ctx, uc.dashboard, uc.logger)

	uc.logger.Infow("worker created", "user_id", worker.ID())
	return dto.ToUserDTO(worker), nil
}
