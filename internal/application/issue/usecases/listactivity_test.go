package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixit/internal/domain/issue"
	vo "fixit/internal/domain/issue/valueobjects"
	"fixit/internal/domain/user"
)

func TestListActivityUseCase_Execute(t *testing.T) {
	iss := newTestIssue(t, "issue-1", vo.StatusInProgress, workerActor.UserID)
	entries := []*issue.ActivityLog{
		issue.NewCreatedActivity(iss),
		issue.NewStatusChangedActivity(iss.ID(), workerActor, vo.StatusOpen, vo.StatusInProgress),
	}

	activityRepo := &mockActivityLogRepository{
		ListByIssueFunc: func(ctx context.Context, issueID string) ([]*issue.ActivityLog, error) {
			assert.Equal(t, iss.ID(), issueID)
			return entries, nil
		},
	}
	userRepo := &mockUserRepository{
		ListFunc: func(ctx context.Context) ([]*user.User, error) {
			return []*user.User{
				newTestUser(t, managerActor.UserID, "Building Manager", user.RoleManager),
				newTestUser(t, workerActor.UserID, "John Smith", user.RoleWorker),
			}, nil
		},
	}

	uc := NewListActivityUseCase(issueRepoWith(t, iss), activityRepo, userRepo, newTestLogger())
	result, err := uc.Execute(context.Background(), ListActivityQuery{Actor: workerActor, IssueID: iss.ID()})

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, vo.ActivityCreated.String(), result[0].ActivityType)
	assert.Equal(t, "Building Manager", result[0].UserName)
	assert.Equal(t, vo.ActivityStatusChanged.String(), result[1].ActivityType)
	assert.Equal(t, "John Smith", result[1].UserName)
	require.NotNil(t, result[1].NewValue)
	assert.Equal(t, "IN_PROGRESS", *result[1].NewValue)
	assert.NotEmpty(t, result[1].Description)
}
