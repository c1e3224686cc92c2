package permission

import (
	"fmt"

	"fixit/internal/shared/logger"
)

// Resources and actions checked by the HTTP layer.
const (
	ResourceIssue  = "issue"
	ResourceUser   = "user"
	ResourceReport = "report"

	ActionCreate  = "create"
	ActionAssign  = "assign"
	ActionViewAll = "view_all"
	ActionExport  = "export"
)

// DefaultPolicies are the role grants every installation starts with. Actions that any
// authenticated user may take (viewing, commenting, status changes) are gated by the issue
// policy instead.
func DefaultPolicies() [][]string {
	return [][]string{
		{"MANAGER", ResourceIssue, ActionCreate},
		{"MANAGER", ResourceIssue, ActionAssign},
		{"MANAGER", ResourceIssue, ActionViewAll},
		{"MANAGER", ResourceUser, ActionCreate},
		{"MANAGER", ResourceReport, ActionExport},
	}
}

// InitPermissions stores the default policies. Existing rows are left untouched.
func InitPermissions(e *Enforcer, log logger.Interface) error {
	for _, policy := range DefaultPolicies() {
		if err := e.AddPolicy(policy[0], policy[1], policy[2]); err != nil {
			log.Errorw("failed to add permission policy",
				"error", err,
				"role", policy[0],
				"resource", policy[1],
				"action", policy[2])
			return fmt.Errorf("failed to add policy [%s, %s, %s]: %w",
				policy[0], policy[1], policy[2], err)
		}
	}

	log.Info("permissions initialized successfully")
	return nil
}
