package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixit/internal/domain/issue"
	vo "fixit/internal/domain/issue/valueobjects"
	"fixit/internal/infrastructure/persistence/models"
	"fixit/internal/shared/errors"
)

func TestIssueRepository_CreateAndGet(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	due := time.Now().Add(72 * time.Hour)
	iss, err := issue.NewIssue(env.actor(env.manager), issue.NewIssueParams{
		Description: "Broken window in the hallway",
		FlatNumber:  "B-204",
		Priority:    vo.PriorityHigh,
		DueDate:     &due,
		Assignee:    env.worker,
	})
	require.NoError(t, err)

	photo, err := issue.NewPhoto(iss.ID(), env.actor(env.manager), "photos/window.jpg")
	require.NoError(t, err)

	require.NoError(t, env.issues.Create(ctx, iss, []*issue.Photo{photo}))

	found, err := env.issues.GetByID(ctx, iss.ID())
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, iss.ID(), found.ID())
	assert.Equal(t, iss.Description(), found.Description())
	assert.Equal(t, iss.FlatNumber(), found.FlatNumber())
	assert.Equal(t, iss.Status(), found.Status())
	assert.Equal(t, iss.Priority(), found.Priority())
	assert.Equal(t, iss.CreatedBy(), found.CreatedBy())
	assert.Equal(t, iss.AssignedTo(), found.AssignedTo())
	assert.True(t, iss.DueDate().Equal(*found.DueDate()))
	assert.True(t, iss.CreatedAt().Equal(found.CreatedAt()))
	assert.Nil(t, found.CompletedAt())

	entries, err := env.activities.ListByIssue(ctx, iss.ID())
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, vo.ActivityCreated, entries[0].ActivityType())
	assert.Nil(t, entries[0].OldValue())
	assert.Nil(t, entries[0].NewValue())
	assert.Equal(t, vo.ActivityAssigned, entries[1].ActivityType())
	assert.Equal(t, env.worker.ID(), *entries[1].NewValue())
	assert.Equal(t, vo.ActivityPhotoAdded, entries[2].ActivityType())
	assert.Equal(t, photo.ID(), *entries[2].NewValue())

	photos, err := env.issues.ListPhotos(ctx, iss.ID())
	require.NoError(t, err)
	require.Len(t, photos, 1)
	assert.Equal(t, env.manager.ID(), photos[0].UploadedBy())
}

func TestIssueRepository_CreateIsAtomic(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	iss, err := issue.NewIssue(env.actor(env.manager), issue.NewIssueParams{
		Description: "Broken window in the hallway",
		FlatNumber:  "B-204",
	})
	require.NoError(t, err)

	stray, err := issue.NewPhoto("issue-elsewhere", env.actor(env.manager), "x.jpg")
	require.NoError(t, err)

	err = env.issues.Create(ctx, iss, []*issue.Photo{stray})
	require.Error(t, err)

	found, err := env.issues.GetByID(ctx, iss.ID())
	require.NoError(t, err)
	assert.Nil(t, found)
	assert.Equal(t, 0, env.activityCount(t, iss.ID()))
}

func TestIssueRepository_CreateStorageFailure(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	require.NoError(t, env.db.Migrator().DropTable(&models.ActivityLogModel{}))

	iss, err := issue.NewIssue(env.actor(env.manager), issue.NewIssueParams{
		Description: "Broken window in the hallway",
		FlatNumber:  "B-204",
	})
	require.NoError(t, err)

	err = env.issues.Create(ctx, iss, nil)
	require.Error(t, err)
	storageErr := errors.GetStorageError(err)
	require.NotNil(t, storageErr)
	assert.Equal(t, "Failed to create issue", storageErr.Message())

	found, err := env.issues.GetByID(ctx, iss.ID())
	require.NoError(t, err)
	assert.Nil(t, found, "issue row must roll back with the failed audit write")
}

func TestIssueRepository_GetByID_Missing(t *testing.T) {
	env := setupTestEnv(t)

	found, err := env.issues.GetByID(context.Background(), "issue-missing")
	assert.NoError(t, err)
	assert.Nil(t, found)
}

func TestIssueRepository_ListInsertionOrder(t *testing.T) {
	env := setupTestEnv(t)
	first := env.createIssue(t, nil)
	second := env.createIssue(t, env.worker)
	third := env.createIssue(t, nil)

	issues, err := env.issues.List(context.Background())
	require.NoError(t, err)
	require.Len(t, issues, 3)
	assert.Equal(t, []string{first.ID(), second.ID(), third.ID()},
		[]string{issues[0].ID(), issues[1].ID(), issues[2].ID()})
}

func TestIssueRepository_ChangeStatus(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	iss := env.createIssue(t, env.worker)
	before := env.activityCount(t, iss.ID())

	updated, err := env.issues.ChangeStatus(ctx, iss.ID(), vo.StatusInProgress, env.actor(env.worker))
	require.NoError(t, err)
	assert.Equal(t, vo.StatusInProgress, updated.Status())

	found, err := env.issues.GetByID(ctx, iss.ID())
	require.NoError(t, err)
	assert.Equal(t, vo.StatusInProgress, found.Status())

	entries, err := env.activities.ListByIssue(ctx, iss.ID())
	require.NoError(t, err)
	require.Len(t, entries, before+1)
	last := entries[len(entries)-1]
	assert.Equal(t, vo.ActivityStatusChanged, last.ActivityType())
	assert.Equal(t, "OPEN", *last.OldValue())
	assert.Equal(t, "IN_PROGRESS", *last.NewValue())
	assert.Equal(t, env.worker.ID(), last.UserID())
}

func TestIssueRepository_ChangeStatus_Policy(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	iss := env.createIssue(t, env.worker)

	_, err := env.issues.ChangeStatus(ctx, iss.ID(), vo.StatusInProgress, env.actor(env.worker))
	require.NoError(t, err)
	_, err = env.issues.ChangeStatus(ctx, iss.ID(), vo.StatusFixed, env.actor(env.worker))
	require.NoError(t, err)
	before := env.activityCount(t, iss.ID())

	_, err = env.issues.ChangeStatus(ctx, iss.ID(), vo.StatusVerified, env.actor(env.worker))
	assert.True(t, errors.IsPermissionError(err))
	assert.Equal(t, before, env.activityCount(t, iss.ID()))

	_, err = env.issues.ChangeStatus(ctx, iss.ID(), vo.StatusInProgress, env.actor(env.other))
	assert.True(t, errors.IsPermissionError(err))

	verified, err := env.issues.ChangeStatus(ctx, iss.ID(), vo.StatusVerified, env.actor(env.manager))
	require.NoError(t, err)
	assert.Equal(t, vo.StatusVerified, verified.Status())
	assert.Equal(t, before+1, env.activityCount(t, iss.ID()))

	found, err := env.issues.GetByID(ctx, iss.ID())
	require.NoError(t, err)
	require.NotNil(t, found.CompletedAt())

	reopened, err := env.issues.ChangeStatus(ctx, iss.ID(), vo.StatusOpen, env.actor(env.manager))
	require.NoError(t, err)
	assert.Nil(t, reopened.CompletedAt())
	found, err = env.issues.GetByID(ctx, iss.ID())
	require.NoError(t, err)
	assert.Nil(t, found.CompletedAt())
}

func TestIssueRepository_ChangeStatus_Errors(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	iss := env.createIssue(t, nil)

	_, err := env.issues.ChangeStatus(ctx, "issue-missing", vo.StatusFixed, env.actor(env.manager))
	assert.True(t, errors.IsNotFoundError(err))

	_, err = env.issues.ChangeStatus(ctx, iss.ID(), vo.StatusOpen, env.actor(env.manager))
	assert.True(t, errors.IsValidationError(err))
}

func TestIssueRepository_AssignWorker(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	iss := env.createIssue(t, nil)
	workerID := env.worker.ID()
	otherID := env.other.ID()
	manager := env.actor(env.manager)

	assigned, err := env.issues.AssignWorker(ctx, iss.ID(), &workerID, manager)
	require.NoError(t, err)
	assert.True(t, assigned.IsAssignedTo(workerID))

	reassigned, err := env.issues.AssignWorker(ctx, iss.ID(), &otherID, manager)
	require.NoError(t, err)
	assert.True(t, reassigned.IsAssignedTo(otherID))

	cleared, err := env.issues.AssignWorker(ctx, iss.ID(), nil, manager)
	require.NoError(t, err)
	assert.Nil(t, cleared.AssignedTo())

	_, err = env.issues.AssignWorker(ctx, iss.ID(), nil, manager)
	require.NoError(t, err)

	found, err := env.issues.GetByID(ctx, iss.ID())
	require.NoError(t, err)
	assert.Nil(t, found.AssignedTo())

	entries, err := env.activities.ListByIssue(ctx, iss.ID())
	require.NoError(t, err)
	require.Len(t, entries, 5)

	assert.Equal(t, vo.ActivityAssigned, entries[1].ActivityType())
	assert.Nil(t, entries[1].OldValue())
	assert.Equal(t, workerID, *entries[1].NewValue())

	assert.Equal(t, vo.ActivityAssigned, entries[2].ActivityType())
	assert.Equal(t, workerID, *entries[2].OldValue())
	assert.Equal(t, otherID, *entries[2].NewValue())

	assert.Equal(t, vo.ActivityUnassigned, entries[3].ActivityType())
	assert.Equal(t, otherID, *entries[3].OldValue())
	assert.Nil(t, entries[3].NewValue())

	assert.Equal(t, vo.ActivityUnassigned, entries[4].ActivityType())
	assert.Nil(t, entries[4].OldValue())
}

func TestIssueRepository_AssignWorker_Errors(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	iss := env.createIssue(t, nil)
	workerID := env.worker.ID()
	managerID := env.manager.ID()
	missing := "user-missing"

	_, err := env.issues.AssignWorker(ctx, iss.ID(), &workerID, env.actor(env.worker))
	assert.True(t, errors.IsPermissionError(err))

	_, err = env.issues.AssignWorker(ctx, iss.ID(), &missing, env.actor(env.manager))
	assert.True(t, errors.IsNotFoundError(err))

	_, err = env.issues.AssignWorker(ctx, iss.ID(), &managerID, env.actor(env.manager))
	assert.True(t, errors.IsValidationError(err))

	_, err = env.issues.AssignWorker(ctx, "issue-missing", &workerID, env.actor(env.manager))
	assert.True(t, errors.IsNotFoundError(err))

	assert.Equal(t, 1, env.activityCount(t, iss.ID()))
}

func TestIssueRepository_Comments(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	iss := env.createIssue(t, env.worker)

	comment, err := issue.NewComment(iss.ID(), env.actor(env.worker), "Ordered a new valve")
	require.NoError(t, err)
	require.NoError(t, env.issues.AddComment(ctx, comment))

	comments, err := env.issues.ListComments(ctx, iss.ID())
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "Ordered a new valve", comments[0].Text())

	count, err := env.issues.CountComments(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	before := env.activityCount(t, iss.ID())

	err = env.issues.DeleteComment(ctx, comment.ID(), iss.ID(), env.actor(env.other))
	assert.True(t, errors.IsPermissionError(err))
	assert.Equal(t, before, env.activityCount(t, iss.ID()))

	err = env.issues.DeleteComment(ctx, comment.ID(), "issue-other", env.actor(env.worker))
	assert.True(t, errors.IsNotFoundError(err))

	require.NoError(t, env.issues.DeleteComment(ctx, comment.ID(), iss.ID(), env.actor(env.worker)))

	entries, err := env.activities.ListByIssue(ctx, iss.ID())
	require.NoError(t, err)
	require.Len(t, entries, before+1)
	last := entries[len(entries)-1]
	assert.Equal(t, vo.ActivityCommentDeleted, last.ActivityType())
	assert.Equal(t, comment.ID(), *last.OldValue())

	err = env.issues.DeleteComment(ctx, comment.ID(), iss.ID(), env.actor(env.manager))
	assert.True(t, errors.IsNotFoundError(err))
}

func TestIssueRepository_ManagerDeletesAnyComment(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	iss := env.createIssue(t, env.worker)

	comment, err := issue.NewComment(iss.ID(), env.actor(env.worker), "Needs a plumber")
	require.NoError(t, err)
	require.NoError(t, env.issues.AddComment(ctx, comment))

	require.NoError(t, env.issues.DeleteComment(ctx, comment.ID(), iss.ID(), env.actor(env.manager)))

	comments, err := env.issues.ListComments(ctx, iss.ID())
	require.NoError(t, err)
	assert.Empty(t, comments)
}

func TestIssueRepository_AddCommentToMissingIssue(t *testing.T) {
	env := setupTestEnv(t)

	comment, err := issue.NewComment("issue-missing", env.actor(env.worker), "Hello")
	require.NoError(t, err)
	assert.True(t, errors.IsNotFoundError(env.issues.AddComment(context.Background(), comment)))
}

func TestIssueRepository_Photos(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	iss := env.createIssue(t, env.worker)

	photo, err := issue.NewPhoto(iss.ID(), env.actor(env.worker), "photos/after.jpg")
	require.NoError(t, err)
	require.NoError(t, env.issues.AddPhoto(ctx, photo))

	count, err := env.issues.CountPhotos(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	err = env.issues.DeletePhoto(ctx, photo.ID(), iss.ID(), env.actor(env.other))
	assert.True(t, errors.IsPermissionError(err))

	require.NoError(t, env.issues.DeletePhoto(ctx, photo.ID(), iss.ID(), env.actor(env.worker)))

	photos, err := env.issues.ListPhotos(ctx, iss.ID())
	require.NoError(t, err)
	assert.Empty(t, photos)

	entries, err := env.activities.ListByIssue(ctx, iss.ID())
	require.NoError(t, err)
	types := make([]vo.ActivityType, 0, len(entries))
	for _, e := range entries {
		types = append(types, e.ActivityType())
	}
	assert.Equal(t, []vo.ActivityType{
		vo.ActivityCreated, vo.ActivityAssigned, vo.ActivityPhotoAdded, vo.ActivityPhotoDeleted,
	}, types)
}
