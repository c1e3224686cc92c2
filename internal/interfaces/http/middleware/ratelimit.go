package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fixit/internal/infrastructure/ratelimit"
	"fixit/internal/shared/logger"
	"fixit/internal/shared/utils"
)

// RateLimiter limits requests per client IP. It fails open when the limiter backend errors.
type RateLimiter struct {
	limiter ratelimit.RateLimiter
	config  ratelimit.Config
	scope   string
	logger  logger.Interface
}

// NewRateLimiter keys counters by scope and client IP, so separate endpoints can share a backend.
func NewRateLimiter(limiter ratelimit.RateLimiter, scope string, config ratelimit.Config, log logger.Interface) *RateLimiter {
	return &RateLimiter{
		limiter: limiter,
		config:  config,
		scope:   scope,
		logger:  log,
	}
}

// Limit returns a Gin middleware that enforces the rate limit per client IP.
func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := rl.limiter.Allow(c.Request.Context(), rl.scope+":"+c.ClientIP(), rl.config)
		if err != nil {
			rl.logger.Warnw("rate limiter unavailable, allowing request", "error", err, "scope", rl.scope)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
