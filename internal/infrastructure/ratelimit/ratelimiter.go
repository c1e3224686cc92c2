package ratelimit

import (
	"context"
	"time"
)

// Config caps requests per key over sliding windows. A zero limit disables that window.
type Config struct {
	PerMinute int
	PerHour   int
}

// Enabled reports whether any window is limited.
func (c Config) Enabled() bool {
	return c.PerMinute > 0 || c.PerHour > 0
}

type RateLimiter interface {
	// Allow records one request for key and reports whether it is within every window.
	Allow(ctx context.Context, key string, cfg Config) (bool, error)
	// Used returns how many requests key made within the last window.
	Used(ctx context.Context, key string, window time.Duration) (int64, error)
	Reset(ctx context.Context, key string) error
}
