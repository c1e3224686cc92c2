// Package scheduler runs the periodic background jobs using gocron v2.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"fixit/internal/shared/biztime"
	"fixit/internal/shared/logger"
)

// BatchJob is one scheduled unit of work. Execute returns the number of items it handled.
type BatchJob interface {
	Execute(ctx context.Context) (int, error)
}

// jobTimeout bounds a single run.
const jobTimeout = 2 * time.Minute

// Manager owns the gocron scheduler and the jobs registered on it.
type Manager struct {
	scheduler gocron.Scheduler
	logger    logger.Interface

	started   bool
	startedMu sync.Mutex
}

// NewManager creates a scheduler in the business timezone.
func NewManager(log logger.Interface) (*Manager, error) {
	s, err := gocron.NewScheduler(
		gocron.WithLocation(biztime.Location()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	return &Manager{
		scheduler: s,
		logger:    log.With("component", "scheduler"),
	}, nil
}

// RegisterOverdueReminder logs overdue issues every interval.
func (m *Manager) RegisterOverdueReminder(job BatchJob, interval time.Duration) error {
	return m.register("overdue-reminder", job, interval, false)
}

// RegisterDashboardRefresh recomputes the cached manager dashboard every interval, starting now.
func (m *Manager) RegisterDashboardRefresh(job BatchJob, interval time.Duration) error {
	return m.register("dashboard-refresh", job, interval, true)
}

func (m *Manager) register(name string, job BatchJob, interval time.Duration, startNow bool) error {
	if interval <= 0 {
		return fmt.Errorf("job %s: interval must be positive", name)
	}

	options := []gocron.JobOption{
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithName(name),
		gocron.WithTags(name),
	}
	if startNow {
		options = append(options, gocron.WithStartAt(gocron.WithStartImmediately()))
	}

	_, err := m.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() { m.run(name, job) }),
		options...,
	)
	if err != nil {
		return fmt.Errorf("failed to register job %s: %w", name, err)
	}

	m.logger.Infow("registered job", "job", name, "interval", interval.String())
	return nil
}

func (m *Manager) run(name string, job BatchJob) {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	startTime := biztime.NowUTC()
	count, err := job.Execute(ctx)
	if err != nil {
		m.logger.Errorw("scheduled job failed",
			"job", name,
			"error", err,
			"duration", time.Since(startTime),
		)
		return
	}

	m.logger.Debugw("scheduled job finished",
		"job", name,
		"count", count,
		"duration", time.Since(startTime),
	)
}

// Start begins running the registered jobs. Calling it twice is a no-op.
func (m *Manager) Start() {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if m.started {
		return
	}
	m.scheduler.Start()
	m.started = true
	m.logger.Infow("scheduler started", "jobs", len(m.scheduler.Jobs()))
}

// Shutdown stops the scheduler and waits for running jobs.
func (m *Manager) Shutdown() error {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if err := m.scheduler.Shutdown(); err != nil {
		return fmt.Errorf("failed to shut down scheduler: %w", err)
	}
	m.started = false
	m.logger.Infow("scheduler stopped")
	return nil
}
