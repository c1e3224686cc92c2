package http

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"fixit/internal/infrastructure/auth"
	"fixit/internal/infrastructure/cache"
	"fixit/internal/infrastructure/config"
	"fixit/internal/infrastructure/permission"
	"fixit/internal/infrastructure/ratelimit"
	"fixit/internal/infrastructure/scheduler"
	"fixit/internal/interfaces/http/middleware"
	"fixit/internal/shared/logger"
	"fixit/internal/shared/services/markdown"
)

// Container holds the infrastructure components, repositories, use cases and handlers, and
// wires them together. Shutdown releases what it opened.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers

	// Middlewares
	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	loginRateLimiter     *middleware.RateLimiter // nil without redis

	jwtSvc         *auth.JWTService
	enforcer       *permission.Enforcer
	dashboardCache cache.DashboardCache
	markdown       markdown.MarkdownService
	scheduler      *scheduler.Manager // nil when disabled
}

// NewContainer creates a Container with all dependencies wired together.
func NewContainer(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}
	c.repos = newRepositories(db, log)
	c.ucs = newUseCases(c)
	c.hdlrs = newHandlers(c.ucs, log)

	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, log)
	c.permissionMiddleware = middleware.NewPermissionMiddleware(c.enforcer, log)

	loginLimit := ratelimit.Config{
		PerMinute: cfg.Auth.LoginRateLimit.PerMinute,
		PerHour:   cfg.Auth.LoginRateLimit.PerHour,
	}
	if c.redis != nil && loginLimit.Enabled() {
		c.loginRateLimiter = middleware.NewRateLimiter(ratelimit.NewRedisRateLimiter(c.redis), "login", loginLimit, log)
	}

	if cfg.Scheduler.Enabled {
		s, err := newScheduler(c)
		if err != nil {
			c.Shutdown()
			return nil, err
		}
		c.scheduler = s
	}

	return c, nil
}

func (c *Container) initInfrastructure() error {
	c.jwtSvc = auth.NewJWTService(c.cfg.Auth.JWT.Secret, c.cfg.Auth.JWT.AccessExpMinutes)
	c.markdown = markdown.NewMarkdownService()

	enforcer, err := permission.NewEnforcer(c.db, c.log)
	if err != nil {
		return fmt.Errorf("failed to create permission enforcer: %w", err)
	}
	if err := permission.InitPermissions(enforcer, c.log); err != nil {
		return err
	}
	c.enforcer = enforcer

	if !c.cfg.Redis.Enabled {
		c.log.Infow("redis disabled, dashboard statistics are computed on every request")
		c.dashboardCache = cache.NewNoopDashboardCache()
		return nil
	}

	client, err := initRedis(c.cfg, c.log)
	if err != nil {
		return err
	}
	c.redis = client
	ttl := time.Duration(c.cfg.Redis.DashboardTTLSeconds) * time.Second
	c.dashboardCache = cache.NewRedisDashboardCache(client, ttl, c.log)
	return nil
}

// initRedis creates and tests the Redis client connection.
func initRedis(cfg *config.Config, log logger.Interface) (*redis.Client, error) {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		_ = redisClient.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	log.Infow("redis connection established", "addr", cfg.Redis.GetAddr())

	return redisClient, nil
}

// Shutdown stops the scheduler and closes the redis client. The database is owned by the caller.
func (c *Container) Shutdown() {
	if c.scheduler != nil {
		if err := c.scheduler.Shutdown(); err != nil {
			c.log.Warnw("failed to stop scheduler", "error", err)
		}
	}
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close redis client", "error", err)
		}
	}
}
