package issue

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	vo "fixit/internal/domain/issue/valueobjects"
	"fixit/internal/domain/user"
)

var (
	manager = Actor{UserID: "user-manager", Role: user.RoleManager}
	worker  = Actor{UserID: "user-worker", Role: user.RoleWorker}
	other   = Actor{UserID: "user-other", Role: user.RoleWorker}
)

func newTestUser(t *testing.T, userID string, role user.Role) *user.User {
	t.Helper()
	u, err := user.ReconstructUser(userID, "Test "+string(role), role, time.Now())
	require.NoError(t, err)
	return u
}

// testIssue builds an issue in the given state, assigned to assignee when non-empty.
func testIssue(t *testing.T, status vo.IssueStatus, assignee string, due *time.Time) *Issue {
	t.Helper()
	var assignedTo *string
	if assignee != "" {
		assignedTo = &assignee
	}
	now := time.Now().UTC()
	iss, err := ReconstructIssue("issue-1", "Leaking pipe in bathroom", "A-101", status, manager.UserID,
		assignedTo, vo.PriorityMedium, due, now, nil, now)
	require.NoError(t, err)
	return iss
}
