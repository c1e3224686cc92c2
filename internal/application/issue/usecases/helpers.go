package usecases

import (
	"context"

	"fixit/internal/domain/issue"
	"fixit/internal/shared/errors"
	"fixit/internal/shared/logger"
)

// loadVisibleIssue returns the issue when it exists and actor may see it.
func loadVisibleIssue(ctx context.Context, repo issue.Repository, actor issue.Actor, issueID string) (*issue.Issue, error) {
	if issueID == "" {
		return nil, errors.NewValidationError("Issue ID is required")
	}

	iss, err := repo.GetByID(ctx, issueID)
	if err != nil {
		return nil, err
	}
	if iss == nil {
		return nil, errors.NewNotFoundError("Issue not found", issueID)
	}
	if !issue.CanView(actor, iss) {
		return nil, errors.NewPermissionError("Workers can only access issues assigned to them")
	}
	return iss, nil
}

func invalidateDashboard(ctx context.Context, cache DashboardInvalidator, log logger.Interface) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx); err != nil {
		log.Warnw("failed to invalidate dashboard cache", "error", err)
	}
}
