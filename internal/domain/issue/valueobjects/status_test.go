package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIssueStatus(t *testing.T) {
	tests := []struct {
		input   string
		want    IssueStatus
		wantErr bool
	}{
		{input: "OPEN", want: StatusOpen},
		{input: "IN_PROGRESS", want: StatusInProgress},
		{input: "FIXED", want: StatusFixed},
		{input: "VERIFIED", want: StatusVerified},
		{input: "open", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := NewIssueStatus(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIssueStatus_WorkerTransitions(t *testing.T) {
	tests := []struct {
		from    IssueStatus
		to      IssueStatus
		allowed bool
	}{
		{StatusOpen, StatusInProgress, true},
		{StatusOpen, StatusFixed, false},
		{StatusOpen, StatusVerified, false},
		{StatusInProgress, StatusFixed, true},
		{StatusInProgress, StatusOpen, false},
		{StatusInProgress, StatusVerified, false},
		{StatusFixed, StatusVerified, false},
		{StatusFixed, StatusInProgress, false},
		{StatusVerified, StatusOpen, false},
		{StatusVerified, StatusFixed, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanWorkerTransitionTo(tt.to))
		})
	}
}

func TestIssueStatus_ManagerTransitions(t *testing.T) {
	for _, from := range Statuses {
		for _, to := range Statuses {
			assert.Equal(t, from != to, from.CanManagerTransitionTo(to), "%s -> %s", from, to)
		}
		assert.False(t, from.CanManagerTransitionTo(IssueStatus("CLOSED")))
	}
}

func TestIssueStatus_DisplayName(t *testing.T) {
	assert.Equal(t, "IN PROGRESS", StatusInProgress.DisplayName())
	assert.Equal(t, "OPEN", StatusOpen.DisplayName())
}

func TestActivityType_Describe(t *testing.T) {
	w1, w2 := "user-1", "user-2"
	open, fixed := "OPEN", "IN_PROGRESS"

	assert.Equal(t, "Issue created", ActivityCreated.Describe(nil, nil))
	assert.Equal(t, "Status changed from OPEN to IN PROGRESS", ActivityStatusChanged.Describe(&open, &fixed))
	assert.Equal(t, "Assigned to user-1", ActivityAssigned.Describe(nil, &w1))
	assert.Equal(t, "Reassigned from user-1 to user-2", ActivityAssigned.Describe(&w1, &w2))
	assert.Equal(t, "Unassigned from user-2", ActivityUnassigned.Describe(&w2, nil))
}

func TestNewPriority(t *testing.T) {
	p, err := NewPriority("URGENT")
	require.NoError(t, err)
	assert.True(t, p.IsUrgent())

	_, err = NewPriority("CRITICAL")
	assert.EqualError(t, err, "invalid priority: CRITICAL")
}
