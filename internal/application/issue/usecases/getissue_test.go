package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixit/internal/domain/issue"
	vo "fixit/internal/domain/issue/valueobjects"
	"fixit/internal/domain/user"
	"fixit/internal/shared/errors"
)

func TestGetIssueUseCase_Execute(t *testing.T) {
	iss := newTestIssue(t, "issue-1", vo.StatusInProgress, workerActor.UserID)
	users := map[string]*user.User{
		managerActor.UserID: newTestUser(t, managerActor.UserID, "Building Manager", user.RoleManager),
		workerActor.UserID:  newTestUser(t, workerActor.UserID, "John Smith", user.RoleWorker),
	}
	userRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*user.User, error) {
			return users[id], nil
		},
	}

	tests := []struct {
		name        string
		actor       issue.Actor
		wantAllowed []string
		wantAssign  bool
	}{
		{
			name:        "manager may pick any other status",
			actor:       managerActor,
			wantAllowed: []string{"OPEN", "FIXED", "VERIFIED"},
			wantAssign:  true,
		},
		{
			name:        "assigned worker may only move forward",
			actor:       workerActor,
			wantAllowed: []string{"FIXED"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewGetIssueUseCase(issueRepoWith(t, iss), userRepo, newTestLogger())
			result, err := uc.Execute(context.Background(), GetIssueQuery{Actor: tt.actor, IssueID: iss.ID()})

			require.NoError(t, err)
			assert.Equal(t, iss.ID(), result.ID)
			assert.Equal(t, "Building Manager", result.CreatorName)
			assert.Equal(t, "John Smith", result.AssigneeName)
			assert.Equal(t, tt.wantAllowed, result.AllowedStatuses)
			assert.Equal(t, tt.wantAssign, result.CanAssign)
		})
	}
}

func TestGetIssueUseCase_Execute_Errors(t *testing.T) {
	iss := newTestIssue(t, "issue-1", vo.StatusOpen, workerActor.UserID)
	uc := NewGetIssueUseCase(issueRepoWith(t, iss), &mockUserRepository{}, newTestLogger())

	_, err := uc.Execute(context.Background(), GetIssueQuery{Actor: managerActor, IssueID: "issue-missing"})
	assert.True(t, errors.IsNotFoundError(err))

	_, err = uc.Execute(context.Background(), GetIssueQuery{Actor: otherActor, IssueID: iss.ID()})
	assert.True(t, errors.IsPermissionError(err))

	_, err = uc.Execute(context.Background(), GetIssueQuery{Actor: managerActor})
	assert.True(t, errors.IsValidationError(err))
}
