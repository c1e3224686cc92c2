package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"fixit/internal/shared/logger"
)

// CachedWorkerStats is one row of the cached per-worker table.
type CachedWorkerStats struct {
	WorkerID        string `json:"worker_id"`
	WorkerName      string `json:"worker_name"`
	AssignedIssues  int    `json:"assigned_issues"`
	CompletedIssues int    `json:"completed_issues"`
}

// CachedDashboard is the manager dashboard as stored in the cache.
type CachedDashboard struct {
	TotalIssues      int                 `json:"total_issues"`
	OpenIssues       int                 `json:"open_issues"`
	InProgressIssues int                 `json:"in_progress_issues"`
	FixedIssues      int                 `json:"fixed_issues"`
	VerifiedIssues   int                 `json:"verified_issues"`
	TotalWorkers     int                 `json:"total_workers"`
	TotalPhotos      int64               `json:"total_photos"`
	TotalComments    int64               `json:"total_comments"`
	OverdueIssues    int                 `json:"overdue_issues"`
	CompletionRate   float64             `json:"completion_rate"`
	Workers          []CachedWorkerStats `json:"workers"`
}

// DashboardCache holds the most recent manager dashboard. Get returns nil on a miss.
type DashboardCache interface {
	Get(ctx context.Context) (*CachedDashboard, error)
	Set(ctx context.Context, dashboard *CachedDashboard) error
	Invalidate(ctx context.Context) error
}

const managerDashboardKey = "fixit:dashboard:manager"

// RedisDashboardCache stores the dashboard as a JSON string with a TTL.
type RedisDashboardCache struct {
	client *redis.Client
	ttl    time.Duration
	logger logger.Interface
}

func NewRedisDashboardCache(client *redis.Client, ttl time.Duration, logger logger.Interface) *RedisDashboardCache {
	return &RedisDashboardCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *RedisDashboardCache) Get(ctx context.Context) (*CachedDashboard, error) {
	raw, err := c.client.Get(ctx, managerDashboardKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get dashboard from cache: %w", err)
	}

	var dashboard CachedDashboard
	if err := json.Unmarshal(raw, &dashboard); err != nil {
		// A corrupt entry is treated as a miss and dropped.
		c.logger.Warnw("discarding unreadable cached dashboard", "error", err)
		_ = c.Invalidate(ctx)
		return nil, nil
	}
	return &dashboard, nil
}

func (c *RedisDashboardCache) Set(ctx context.Context, dashboard *CachedDashboard) error {
	raw, err := json.Marshal(dashboard)
	if err != nil {
		return fmt.Errorf("failed to encode dashboard: %w", err)
	}
	if err := c.client.Set(ctx, managerDashboardKey, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store dashboard in cache: %w", err)
	}
	return nil
}

func (c *RedisDashboardCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, managerDashboardKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate dashboard cache: %w", err)
	}
	return nil
}

// NoopDashboardCache is used when redis is disabled; every Get is a miss.
type NoopDashboardCache struct{}

func NewNoopDashboardCache() NoopDashboardCache {
	return NoopDashboardCache{}
}

func (NoopDashboardCache) Get(context.Context) (*CachedDashboard, error) { return nil, nil }

func (NoopDashboardCache) Set(context.Context, *CachedDashboard) error { return nil }

func (NoopDashboardCache) Invalidate(context.Context) error { return nil }
