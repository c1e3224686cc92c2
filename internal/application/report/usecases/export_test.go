package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixit/internal/domain/issue"
	vo "fixit/internal/domain/issue/valueobjects"
	"fixit/internal/domain/user"
	"fixit/internal/shared/biztime"
	"fixit/internal/shared/errors"
	"fixit/internal/shared/logger"
	"fixit/internal/shared/services/markdown"
)

type stubIssueRepository struct {
	issue.Repository
	issues   []*issue.Issue
	photos   []*issue.Photo
	comments []*issue.Comment
}

func (s *stubIssueRepository) GetByID(ctx context.Context, id string) (*issue.Issue, error) {
	for _, iss := range s.issues {
		if iss.ID() == id {
			return iss, nil
		}
	}
	return nil, nil
}

func (s *stubIssueRepository) List(ctx context.Context) ([]*issue.Issue, error) {
	return s.issues, nil
}

func (s *stubIssueRepository) ListPhotos(ctx context.Context, issueID string) ([]*issue.Photo, error) {
	return s.photos, nil
}

func (s *stubIssueRepository) ListComments(ctx context.Context, issueID string) ([]*issue.Comment, error) {
	return s.comments, nil
}

type stubActivityRepository struct {
	issue.ActivityLogRepository
	entries []*issue.ActivityLog
}

func (s *stubActivityRepository) ListByIssue(ctx context.Context, issueID string) ([]*issue.ActivityLog, error) {
	return s.entries, nil
}

type stubUserRepository struct {
	user.Repository
	users []*user.User
}

func (s *stubUserRepository) List(ctx context.Context) ([]*user.User, error) {
	return s.users, nil
}

var (
	managerActor = issue.Actor{UserID: "user-manager", Role: user.RoleManager}
	workerActor  = issue.Actor{UserID: "user-worker", Role: user.RoleWorker}
)

func reportUsers(t *testing.T) []*user.User {
	t.Helper()
	now := time.Now().UTC()
	manager, err := user.ReconstructUser(managerActor.UserID, "Building Manager", user.RoleManager, now)
	require.NoError(t, err)
	worker, err := user.ReconstructUser(workerActor.UserID, "John Smith", user.RoleWorker, now)
	require.NoError(t, err)
	return []*user.User{manager, worker}
}

func reportIssue(t *testing.T, issueID, flat string, status vo.IssueStatus, assignee *string, due *time.Time) *issue.Issue {
	t.Helper()
	created := time.Date(2026, 3, 5, 9, 7, 0, 0, time.UTC)
	iss, err := issue.ReconstructIssue(issueID, "Water leaking under the sink", flat, status, managerActor.UserID,
		assignee, vo.PriorityUrgent, due, created, nil, created)
	require.NoError(t, err)
	return iss
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name     string
		timezone string
		in       time.Time
		want     string
	}{
		{name: "utc single digits", timezone: "UTC", in: time.Date(2026, 3, 5, 9, 7, 0, 0, time.UTC), want: "5/3/2026 9:07"},
		{name: "utc double digits", timezone: "UTC", in: time.Date(2026, 12, 25, 18, 30, 0, 0, time.UTC), want: "25/12/2026 18:30"},
		{name: "business timezone crosses midnight", timezone: "Asia/Tokyo", in: time.Date(2026, 10, 18, 20, 5, 0, 0, time.UTC), want: "19/10/2026 5:05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, biztime.Init(tt.timezone))
			t.Cleanup(func() { _ = biztime.Init("UTC") })

			assert.Equal(t, tt.want, formatDate(tt.in))
		})
	}
}

func TestExportIssueUseCase_Execute(t *testing.T) {
	assignee := workerActor.UserID
	past := time.Date(2020, 1, 2, 8, 0, 0, 0, time.UTC)
	iss := reportIssue(t, "issue-1", "A-101", vo.StatusInProgress, &assignee, &past)

	photo, err := issue.NewPhoto(iss.ID(), workerActor, "/photos/sink.jpg")
	require.NoError(t, err)
	comment, err := issue.NewComment(iss.ID(), workerActor, "Ordered a <b>new</b> valve")
	require.NoError(t, err)

	issueRepo := &stubIssueRepository{
		issues:   []*issue.Issue{iss},
		photos:   []*issue.Photo{photo},
		comments: []*issue.Comment{comment},
	}
	activityRepo := &stubActivityRepository{
		entries: []*issue.ActivityLog{
			issue.NewCreatedActivity(iss),
			issue.NewStatusChangedActivity(iss.ID(), workerActor, vo.StatusOpen, vo.StatusInProgress),
		},
	}

	uc := NewExportIssueUseCase(issueRepo, activityRepo, &stubUserRepository{users: reportUsers(t)},
		markdown.NewMarkdownService(), logger.NewNop())
	report, err := uc.Execute(context.Background(), iss.ID())

	require.NoError(t, err)
	assert.Equal(t, "issue-report-A-101.html", report.Filename)

	md := report.Markdown
	assert.Contains(t, md, "# Issue Report")
	assert.Contains(t, md, "**Flat Number:** A-101")
	assert.Contains(t, md, "**Status:** IN PROGRESS")
	assert.Contains(t, md, "**Priority:** URGENT")
	assert.Contains(t, md, "**Created By:** Building Manager")
	assert.Contains(t, md, "**Assigned To:** John Smith")
	assert.Contains(t, md, "**Created At:** 5/3/2026 9:07")
	assert.Contains(t, md, "2/1/2020 8:00 (OVERDUE)")
	assert.Contains(t, md, "## Photos (1)")
	assert.Contains(t, md, "## Comments (1)")
	assert.Contains(t, md, "Status changed from OPEN to IN PROGRESS")

	assert.Contains(t, report.HTML, "Issue Report</h1>")
	assert.NotContains(t, report.HTML, "<b>new</b>")
}

func TestExportIssueUseCase_Unassigned(t *testing.T) {
	iss := reportIssue(t, "issue-1", "C-303", vo.StatusOpen, nil, nil)

	uc := NewExportIssueUseCase(&stubIssueRepository{issues: []*issue.Issue{iss}}, &stubActivityRepository{},
		&stubUserRepository{users: reportUsers(t)}, markdown.NewMarkdownService(), logger.NewNop())
	report, err := uc.Execute(context.Background(), iss.ID())

	require.NoError(t, err)
	assert.Contains(t, report.Markdown, "**Assigned To:** Unassigned")
	assert.NotContains(t, report.Markdown, "Due Date")
}

func TestExportIssueUseCase_Errors(t *testing.T) {
	uc := NewExportIssueUseCase(&stubIssueRepository{}, &stubActivityRepository{}, &stubUserRepository{},
		markdown.NewMarkdownService(), logger.NewNop())

	_, err := uc.Execute(context.Background(), "")
	assert.True(t, errors.IsValidationError(err))

	_, err = uc.Execute(context.Background(), "issue-missing")
	assert.True(t, errors.IsNotFoundError(err))
}

func TestExportAllUseCase_Execute(t *testing.T) {
	assignee := workerActor.UserID
	issueRepo := &stubIssueRepository{
		issues: []*issue.Issue{
			reportIssue(t, "issue-1", "A-101", vo.StatusOpen, nil, nil),
			reportIssue(t, "issue-2", "B-202", vo.StatusFixed, &assignee, nil),
		},
	}

	uc := NewExportAllUseCase(issueRepo, &stubUserRepository{users: reportUsers(t)}, markdown.NewMarkdownService(), logger.NewNop())
	report, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Contains(t, report.Markdown, "**Total Issues:** 2")
	assert.Contains(t, report.Markdown, "| A-101 | OPEN | URGENT | Unassigned | - |")
	assert.Contains(t, report.Markdown, "| B-202 | FIXED | URGENT | John Smith | - |")
	assert.Contains(t, report.HTML, "<table>")
}

func TestExportAllUseCase_NoIssues(t *testing.T) {
	uc := NewExportAllUseCase(&stubIssueRepository{}, &stubUserRepository{}, markdown.NewMarkdownService(), logger.NewNop())

	_, err := uc.Execute(context.Background())

	require.Error(t, err)
	assert.Equal(t, "No issues to export", errors.GetAppError(err).Message)
}
