package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"fixit/internal/domain/issue"
	"fixit/internal/domain/user"
	"fixit/internal/infrastructure/persistence/models"
	"fixit/internal/shared/logger"
)

type testEnv struct {
	db         *gorm.DB
	users      *UserRepository
	activities *ActivityLogRepository
	issues     *IssueRepository
	manager    *user.User
	worker     *user.User
	other      *user.User
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: gormlogger.Discard})
	require.NoError(t, err)

	// Every pooled connection to :memory: would be a separate database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(models.AllModels()...))
	return db
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := setupTestDB(t)
	log := logger.NewNop()

	users := NewUserRepository(db, log)
	activities := NewActivityLogRepository(db)
	env := &testEnv{
		db:         db,
		users:      users,
		activities: activities,
		issues:     NewIssueRepository(db, activities, users, log),
	}

	env.manager = env.createUser(t, "Jana Manager", user.RoleManager)
	env.worker = env.createUser(t, "Peter Worker", user.RoleWorker)
	env.other = env.createUser(t, "Marek Worker", user.RoleWorker)
	return env
}

func (e *testEnv) createUser(t *testing.T, name string, role user.Role) *user.User {
	t.Helper()
	u, err := user.NewUser(name, role)
	require.NoError(t, err)
	require.NoError(t, e.users.Create(context.Background(), u))
	return u
}

func (e *testEnv) actor(u *user.User) issue.Actor {
	return issue.ActorFromUser(u)
}

func (e *testEnv) createIssue(t *testing.T, assignee *user.User) *issue.Issue {
	t.Helper()
	iss, err := issue.NewIssue(e.actor(e.manager), issue.NewIssueParams{
		Description: "Leaking pipe under the kitchen sink",
		FlatNumber:  "A-101",
		Assignee:    assignee,
	})
	require.NoError(t, err)
	require.NoError(t, e.issues.Create(context.Background(), iss, nil))
	return iss
}

func (e *testEnv) activityCount(t *testing.T, issueID string) int {
	t.Helper()
	entries, err := e.activities.ListByIssue(context.Background(), issueID)
	require.NoError(t, err)
	return len(entries)
}
