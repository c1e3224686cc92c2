package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixit/internal/domain/user"
	"fixit/internal/shared/errors"
	"fixit/internal/shared/logger"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t), logger.NewNop())
	ctx := context.Background()

	u, err := user.NewUser("Peter Worker", user.RoleWorker)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, u))

	found, err := repo.GetByID(ctx, u.ID())
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, u.Name(), found.Name())
	assert.Equal(t, user.RoleWorker, found.Role())
	assert.True(t, u.CreatedAt().Equal(found.CreatedAt()))

	missing, err := repo.GetByID(ctx, "user-missing")
	assert.NoError(t, err)
	assert.Nil(t, missing)

	err = repo.Create(ctx, u)
	assert.True(t, errors.IsConflictError(err))
}

func TestUserRepository_ListAndWorkers(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t), logger.NewNop())
	ctx := context.Background()

	for _, spec := range []struct {
		name string
		role user.Role
	}{
		{"Zuzana", user.RoleWorker},
		{"Adam", user.RoleManager},
		{"Boris", user.RoleWorker},
	} {
		u, err := user.NewUser(spec.name, spec.role)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, u))
	}

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Adam", all[0].Name())
	assert.Equal(t, "Boris", all[1].Name())
	assert.Equal(t, "Zuzana", all[2].Name())

	workers, err := repo.ListWorkers(ctx)
	require.NoError(t, err)
	require.Len(t, workers, 2)
	for _, w := range workers {
		assert.True(t, w.IsWorker())
	}

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestUserRepository_SeedDefaultUsers(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t), logger.NewNop())
	ctx := context.Background()

	seed := func() []*user.User {
		m, err := user.NewUser("Building Manager", user.RoleManager)
		require.NoError(t, err)
		w, err := user.NewUser("John Worker", user.RoleWorker)
		require.NoError(t, err)
		return []*user.User{m, w}
	}

	inserted, err := repo.SeedDefaultUsers(ctx, seed())
	require.NoError(t, err)
	assert.Equal(t, 2, inserted)

	inserted, err = repo.SeedDefaultUsers(ctx, seed())
	require.NoError(t, err)
	assert.Equal(t, 0, inserted)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
