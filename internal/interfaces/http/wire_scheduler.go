package http

import (
	"time"

	"fixit/internal/infrastructure/scheduler"
)

// newScheduler registers the overdue reminder and, with redis, the dashboard refresh.
func newScheduler(c *Container) (*scheduler.Manager, error) {
	cfg := c.cfg.Scheduler

	m, err := scheduler.NewManager(c.log)
	if err != nil {
		return nil, err
	}

	if cfg.OverdueReminderMinutes > 0 {
		interval := time.Duration(cfg.OverdueReminderMinutes) * time.Minute
		if err := m.RegisterOverdueReminder(c.ucs.remindOverdue, interval); err != nil {
			return nil, err
		}
	}

	// Dashboard refresh needs a real cache.
	if c.redis != nil && cfg.DashboardRefreshMinutes > 0 {
		interval := time.Duration(cfg.DashboardRefreshMinutes) * time.Minute
		if err := m.RegisterDashboardRefresh(c.ucs.refreshDashboard, interval); err != nil {
			return nil, err
		}
	}

	return m, nil
}
