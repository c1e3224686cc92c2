package mappers

import (
	"fmt"
	"time"

	"fixit/internal/domain/user"
	"fixit/internal/infrastructure/persistence/models"
)

// UserMapper handles the conversion between user entities and persistence models.
type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ToDomain(model *models.UserModel) (*user.User, error)
	ToDomainList(models []models.UserModel) ([]*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		SID:       u.ID(),
		Name:      u.Name(),
		Role:      u.Role().String(),
		CreatedAt: u.CreatedAt().UnixMilli(),
	}
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	if model == nil {
		return nil, nil
	}
	u, err := user.ReconstructUser(model.SID, model.Name, user.Role(model.Role), time.UnixMilli(model.CreatedAt).UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to map user %s: %w", model.SID, err)
	}
	return u, nil
}

func (m *UserMapperImpl) ToDomainList(userModels []models.UserModel) ([]*user.User, error) {
	users := make([]*user.User, 0, len(userModels))
	for i := range userModels {
		u, err := m.ToDomain(&userModels[i])
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}
