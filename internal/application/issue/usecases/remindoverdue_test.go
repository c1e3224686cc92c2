package usecases

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixit/internal/domain/issue"
	vo "fixit/internal/domain/issue/valueobjects"
)

func newIssueDue(t *testing.T, issueID string, status vo.IssueStatus, due time.Time) *issue.Issue {
	t.Helper()
	now := time.Now().UTC()
	var completedAt *time.Time
	if status.IsVerified() {
		completedAt = &now
	}
	iss, err := issue.ReconstructIssue(issueID, "Broken intercom", "B-204", status, managerActor.UserID,
		nil, vo.PriorityHigh, &due, now, completedAt, now)
	require.NoError(t, err)
	return iss
}

func TestRemindOverdueUseCase_Execute(t *testing.T) {
	past := time.Now().UTC().Add(-48 * time.Hour)
	future := time.Now().UTC().Add(48 * time.Hour)

	issueRepo := &mockIssueRepository{
		ListFunc: func(ctx context.Context) ([]*issue.Issue, error) {
			return []*issue.Issue{
				newIssueDue(t, "late-open", vo.StatusOpen, past),
				newIssueDue(t, "late-fixed", vo.StatusFixed, past),
				newIssueDue(t, "late-verified", vo.StatusVerified, past),
				newIssueDue(t, "on-time", vo.StatusOpen, future),
				newTestIssue(t, "no-due-date", vo.StatusOpen, ""),
			}, nil
		},
	}

	uc := NewRemindOverdueUseCase(issueRepo, newTestLogger())
	count, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestRemindOverdueUseCase_RepositoryError(t *testing.T) {
	issueRepo := &mockIssueRepository{
		ListFunc: func(ctx context.Context) ([]*issue.Issue, error) {
			return nil, stderrors.New("db down")
		},
	}

	uc := NewRemindOverdueUseCase(issueRepo, newTestLogger())
	count, err := uc.Execute(context.Background())

	assert.Error(t, err)
	assert.Zero(t, count)
}
