package user

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixit/internal/shared/errors"
	"fixit/internal/shared/id"
)

func TestNewUser(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		role     Role
		wantName string
		wantErr  string
	}{
		{name: "worker", input: "Peter Novak", role: RoleWorker, wantName: "Peter Novak"},
		{name: "manager trimmed", input: "  Jana  ", role: RoleManager, wantName: "Jana"},
		{name: "empty name", input: "   ", role: RoleWorker, wantErr: "Name is required"},
		{name: "one letter", input: "J", role: RoleWorker, wantErr: "Name must be at least 2 characters"},
		{name: "too long", input: strings.Repeat("a", 51), role: RoleWorker, wantErr: "Name too long (max 50 characters)"},
		{name: "invalid role", input: "Peter", role: Role("ADMIN"), wantErr: "invalid role"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := NewUser(tt.input, tt.role)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.True(t, errors.IsValidationError(err))
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Nil(t, u)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantName, u.Name())
			assert.Equal(t, tt.role, u.Role())
			assert.NoError(t, id.Validate(u.ID(), id.PrefixUser))
			assert.False(t, u.CreatedAt().IsZero())
		})
	}
}

func TestReconstructUser(t *testing.T) {
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	u, err := ReconstructUser("user-1", "Jana", RoleManager, created)
	require.NoError(t, err)
	assert.Equal(t, "user-1", u.ID())
	assert.True(t, u.IsManager())
	assert.False(t, u.IsWorker())
	assert.Equal(t, created, u.CreatedAt())

	_, err = ReconstructUser("", "Jana", RoleManager, created)
	assert.Error(t, err)

	_, err = ReconstructUser("user-1", "Jana", Role("boss"), created)
	assert.Error(t, err)
}

func TestNewRole(t *testing.T) {
	r, err := NewRole("WORKER")
	require.NoError(t, err)
	assert.True(t, r.IsWorker())

	_, err = NewRole("worker")
	assert.EqualError(t, err, "invalid role: worker")
}
