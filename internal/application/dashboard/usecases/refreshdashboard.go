package usecases

import (
	"context"
)

// RefreshDashboardUseCase recomputes the manager dashboard and replaces the cached copy.
type RefreshDashboardUseCase struct {
	dashboard *GetDashboardUseCase
}

func NewRefreshDashboardUseCase(dashboard *GetDashboardUseCase) *RefreshDashboardUseCase {
	return &RefreshDashboardUseCase{dashboard: dashboard}
}

// Execute returns the number of dashboards refreshed.
func (uc *RefreshDashboardUseCase) Execute(ctx context.Context) (int, error) {
	if err := uc.dashboard.cache.Invalidate(ctx); err != nil {
		uc.dashboard.logger.Warnw("failed to invalidate dashboard cache", "error", err)
	}

	if _, err := uc.dashboard.managerDashboard(ctx); err != nil {
		return 0, err
	}
	return 1, nil
}
