package usecases

import (
	"context"

	"fixit/internal/shared/logger"
)

func invalidateDashboard(ctx context.Context, cache DashboardInvalidator, log logger.Interface) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx); err != nil {
		log.Warnw("failed to invalidate dashboard cache", "error", err)
	}
}
