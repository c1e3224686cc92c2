package usecases

import (
	"context"

	"fixit/internal/application/user/dto"
	"fixit/internal/domain/user"
	"fixit/internal/shared/errors"
	"fixit/internal/shared/logger"
)

type LoginCommand struct {
	UserID string
}

// LoginUseCase issues a token for an existing user. There are no passwords; picking a user
// is the whole login.
type LoginUseCase struct {
	userRepo user.Repository
	tokens   TokenGenerator
	logger   logger.Interface
}

func NewLoginUseCase(userRepo user.Repository, tokens TokenGenerator, logger logger.Interface) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*dto.LoginDTO, error) {
	if cmd.UserID == "" {
		return nil, errors.NewValidationError("User ID is required")
	}

	u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to load user for login", "user_id", cmd.UserID, "error", err)
		return nil, err
	}
	if u == nil {
		uc.logger.Warnw("login attempt for unknown user", "user_id", cmd.UserID)
		return nil, errors.NewUnauthorizedError("Unknown user")
	}

	token, err := uc.tokens.Generate(u.ID(), u.Role().String())
	if err != nil {
		uc.logger.Errorw("failed to generate token", "user_id", u.ID(), "error", err)
		return nil, errors.NewInternalError("Failed to sign in")
	}

	uc.logger.Infow("user logged in", "user_id", u.ID(), "role", u.Role())

	return &dto.LoginDTO{
		User:        dto.ToUserDTO(u),
		AccessToken: token.AccessToken,
		TokenType:   "Bearer",
		ExpiresIn:   token.ExpiresIn,
	}, nil
}
