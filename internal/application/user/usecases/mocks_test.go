package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"fixit/internal/domain/issue"
	"fixit/internal/domain/user"
	"fixit/internal/infrastructure/auth"
	"fixit/internal/shared/logger"
)

type mockUserRepository struct {
	CreateFunc           func(ctx context.Context, u *user.User) error
	GetByIDFunc          func(ctx context.Context, id string) (*user.User, error)
	ListFunc             func(ctx context.Context) ([]*user.User, error)
	ListWorkersFunc      func(ctx context.Context) ([]*user.User, error)
	CountFunc            func(ctx context.Context) (int64, error)
	SeedDefaultUsersFunc func(ctx context.Context, users []*user.User) (int, error)
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id string) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) List(ctx context.Context) ([]*user.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockUserRepository) ListWorkers(ctx context.Context) ([]*user.User, error) {
	if m.ListWorkersFunc != nil {
		return m.ListWorkersFunc(ctx)
	}
	return nil, nil
}

func (m *mockUserRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

func (m *mockUserRepository) SeedDefaultUsers(ctx context.Context, users []*user.User) (int, error) {
	if m.SeedDefaultUsersFunc != nil {
		return m.SeedDefaultUsersFunc(ctx, users)
	}
	return len(users), nil
}

type mockTokenGenerator struct {
	GenerateFunc func(userID string, role string) (*auth.Token, error)
}

func (m *mockTokenGenerator) Generate(userID string, role string) (*auth.Token, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(userID, role)
	}
	return &auth.Token{AccessToken: "token-" + userID, ExpiresIn: 3600}, nil
}

type mockSeeder struct {
	calls int
	err   error
}

func (m *mockSeeder) Execute(ctx context.Context) (int, error) {
	m.calls++
	return 0, m.err
}

type mockDashboardInvalidator struct {
	calls int
	err   error
}

func (m *mockDashboardInvalidator) Invalidate(ctx context.Context) error {
	m.calls++
	return m.err
}

var (
	managerActor = issue.Actor{UserID: "user-manager", Role: user.RoleManager}
	workerActor  = issue.Actor{UserID: "user-worker", Role: user.RoleWorker}

	errDatabase = errors.New("database is locked")
)

func newTestLogger() logger.Interface {
	return logger.NewNop()
}

func newTestUser(t *testing.T, userID, name string, role user.Role) *user.User {
	t.Helper()
	u, err := user.ReconstructUser(userID, name, role, time.Now().UTC())
	require.NoError(t, err)
	return u
}
