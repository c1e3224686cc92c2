package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"fixit/internal/domain/issue"
	vo "fixit/internal/domain/issue/valueobjects"
	"fixit/internal/domain/user"
	"fixit/internal/shared/logger"
)

type mockIssueRepository struct {
	CreateFunc        func(ctx context.Context, iss *issue.Issue, photos []*issue.Photo) error
	GetByIDFunc       func(ctx context.Context, id string) (*issue.Issue, error)
	ListFunc          func(ctx context.Context) ([]*issue.Issue, error)
	ChangeStatusFunc  func(ctx context.Context, issueID string, newStatus vo.IssueStatus, actor issue.Actor) (*issue.Issue, error)
	AssignWorkerFunc  func(ctx context.Context, issueID string, workerID *string, actor issue.Actor) (*issue.Issue, error)
	AddCommentFunc    func(ctx context.Context, comment *issue.Comment) error
	DeleteCommentFunc func(ctx context.Context, commentID, issueID string, actor issue.Actor) error
	ListCommentsFunc  func(ctx context.Context, issueID string) ([]*issue.Comment, error)
	AddPhotoFunc      func(ctx context.Context, photo *issue.Photo) error
	DeletePhotoFunc   func(ctx context.Context, photoID, issueID string, actor issue.Actor) error
	ListPhotosFunc    func(ctx context.Context, issueID string) ([]*issue.Photo, error)
	CountPhotosFunc   func(ctx context.Context) (int64, error)
	CountCommentsFunc func(ctx context.Context) (int64, error)
}

func (m *mockIssueRepository) Create(ctx context.Context, iss *issue.Issue, photos []*issue.Photo) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, iss, photos)
	}
	return nil
}

func (m *mockIssueRepository) GetByID(ctx context.Context, id string) (*issue.Issue, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockIssueRepository) List(ctx context.Context) ([]*issue.Issue, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockIssueRepository) ChangeStatus(ctx context.Context, issueID string, newStatus vo.IssueStatus, actor issue.Actor) (*issue.Issue, error) {
	if m.ChangeStatusFunc != nil {
		return m.ChangeStatusFunc(ctx, issueID, newStatus, actor)
	}
	return nil, nil
}

func (m *mockIssueRepository) AssignWorker(ctx context.Context, issueID string, workerID *string, actor issue.Actor) (*issue.Issue, error) {
	if m.AssignWorkerFunc != nil {
		return m.AssignWorkerFunc(ctx, issueID, workerID, actor)
	}
	return nil, nil
}

func (m *mockIssueRepository) AddComment(ctx context.Context, comment *issue.Comment) error {
	if m.AddCommentFunc != nil {
		return m.AddCommentFunc(ctx, comment)
	}
	return nil
}

func (m *mockIssueRepository) DeleteComment(ctx context.Context, commentID, issueID string, actor issue.Actor) error {
	if m.DeleteCommentFunc != nil {
		return m.DeleteCommentFunc(ctx, commentID, issueID, actor)
	}
	return nil
}

func (m *mockIssueRepository) ListComments(ctx context.Context, issueID string) ([]*issue.Comment, error) {
	if m.ListCommentsFunc != nil {
		return m.ListCommentsFunc(ctx, issueID)
	}
	return nil, nil
}

func (m *mockIssueRepository) AddPhoto(ctx context.Context, photo *issue.Photo) error {
	if m.AddPhotoFunc != nil {
		return m.AddPhotoFunc(ctx, photo)
	}
	return nil
}

func (m *mockIssueRepository) DeletePhoto(ctx context.Context, photoID, issueID string, actor issue.Actor) error {
	if m.DeletePhotoFunc != nil {
		return m.DeletePhotoFunc(ctx, photoID, issueID, actor)
	}
	return nil
}

func (m *mockIssueRepository) ListPhotos(ctx context.Context, issueID string) ([]*issue.Photo, error) {
	if m.ListPhotosFunc != nil {
		return m.ListPhotosFunc(ctx, issueID)
	}
	return nil, nil
}

func (m *mockIssueRepository) CountPhotos(ctx context.Context) (int64, error) {
	if m.CountPhotosFunc != nil {
		return m.CountPhotosFunc(ctx)
	}
	return 0, nil
}

func (m *mockIssueRepository) CountComments(ctx context.Context) (int64, error) {
	if m.CountCommentsFunc != nil {
		return m.CountCommentsFunc(ctx)
	}
	return 0, nil
}

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
	return 0, nil
}

type mockActivityLogRepository struct {
	AppendFunc      func(ctx context.Context, entry *issue.ActivityLog) error
	ListByIssueFunc func(ctx context.Context, issueID string) ([]*issue.ActivityLog, error)
}

func (m *mockActivityLogRepository) Append(ctx context.Context, entry *issue.ActivityLog) error {
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, entry)
	}
	return nil
}

func (m *mockActivityLogRepository) ListByIssue(ctx context.Context, issueID string) ([]*issue.ActivityLog, error) {
	if m.ListByIssueFunc != nil {
		return m.ListByIssueFunc(ctx, issueID)
	}
	return nil, nil
}

type mockDashboardInvalidator struct {
	calls int
	err   error
}

func (m *mockDashboardInvalidator) Invalidate(ctx context.Context) error {
	m.calls++
	return m.err
}

func newTestLogger() logger.Interface {
	return logger.NewNop()
}

var (
	managerActor = issue.Actor{UserID: "user-manager", Role: user.RoleManager}
	workerActor  = issue.Actor{UserID: "user-worker", Role: user.RoleWorker}
	otherActor   = issue.Actor{UserID: "user-other", Role: user.RoleWorker}
)

func newTestUser(t *testing.T, userID, name string, role user.Role) *user.User {
	t.Helper()
	u, err := user.ReconstructUser(userID, name, role, time.Now().UTC())
	require.NoError(t, err)
	return u
}

func newTestIssue(t *testing.T, issueID string, status vo.IssueStatus, assignee string) *issue.Issue {
	t.Helper()
	var assignedTo *string
	if assignee != "" {
		assignedTo = &assignee
	}
	now := time.Now().UTC()
	iss, err := issue.ReconstructIssue(issueID, "Leaking pipe in bathroom", "A-101", status, managerActor.UserID,
		assignedTo, vo.PriorityMedium, nil, now, nil, now)
	require.NoError(t, err)
	return iss
}
