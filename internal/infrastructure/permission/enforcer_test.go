package permission

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"fixit/internal/shared/logger"
)

func setupEnforcer(t *testing.T) *Enforcer {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: gormlogger.Discard})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	e, err := NewEnforcer(db, logger.NewNop())
	require.NoError(t, err)
	require.NoError(t, InitPermissions(e, logger.NewNop()))
	return e
}

func TestEnforcer_DefaultPolicies(t *testing.T) {
	e := setupEnforcer(t)

	tests := []struct {
		role     string
		resource string
		action   string
		allowed  bool
	}{
		{"MANAGER", ResourceIssue, ActionCreate, true},
		{"MANAGER", ResourceIssue, ActionAssign, true},
		{"MANAGER", ResourceUser, ActionCreate, true},
		{"MANAGER", ResourceReport, ActionExport, true},
		{"WORKER", ResourceIssue, ActionCreate, false},
		{"WORKER", ResourceIssue, ActionAssign, false},
		{"WORKER", ResourceUser, ActionCreate, false},
		{"WORKER", ResourceReport, ActionExport, false},
	}

	for _, tt := range tests {
		t.Run(tt.role+"/"+tt.resource+"/"+tt.action, func(t *testing.T) {
			allowed, err := e.Enforce(tt.role, tt.resource, tt.action)
			require.NoError(t, err)
			assert.Equal(t, tt.allowed, allowed)
		})
	}
}

func TestInitPermissions_Idempotent(t *testing.T) {
	e := setupEnforcer(t)
	require.NoError(t, InitPermissions(e, logger.NewNop()))

	perms, err := e.PermissionsForRole("MANAGER")
	require.NoError(t, err)
	assert.Len(t, perms, len(DefaultPolicies()))
}

func TestEnforcer_PoliciesSurviveReload(t *testing.T) {
	e := setupEnforcer(t)
	require.NoError(t, e.AddPolicy("WORKER", ResourceReport, ActionExport))
	require.NoError(t, e.LoadPolicy())

	allowed, err := e.Enforce("WORKER", ResourceReport, ActionExport)
	require.NoError(t, err)
	assert.True(t, allowed)

	require.NoError(t, e.RemovePolicy("WORKER", ResourceReport, ActionExport))
	allowed, err = e.Enforce("WORKER", ResourceReport, ActionExport)
	require.NoError(t, err)
	assert.False(t, allowed)
}
