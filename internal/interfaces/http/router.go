package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"fixit/internal/infrastructure/config"
	"fixit/internal/interfaces/http/middleware"
	"fixit/internal/interfaces/http/routes"
	"fixit/internal/shared/logger"
	"fixit/internal/shared/utils"
	"fixit/internal/shared/version"
)

// Router represents the HTTP router configuration
type Router struct {
	*Container
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Router, error) {
	c, err := NewContainer(db, cfg, log)
	if err != nil {
		return nil, err
	}
	return &Router{Container: c}, nil
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	utils.RegisterBindingValidations()

	r.engine.Use(middleware.Recovery(r.log))
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.RequestLogger(r.log))

	r.engine.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, http.StatusOK, "", gin.H{"status": "ok", "version": version.String()})
	})

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler:    r.hdlrs.authHandler,
		UserHandler:    r.hdlrs.userHandler,
		AuthMiddleware: r.authMiddleware,
		RateLimiter:    r.loginRateLimiter,
	})

	routes.SetupUserRoutes(r.engine, &routes.UserRouteConfig{
		UserHandler:          r.hdlrs.userHandler,
		DashboardHandler:     r.hdlrs.dashboardHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
	})

	routes.SetupIssueRoutes(r.engine, &routes.IssueRouteConfig{
		IssueHandler:         r.hdlrs.issueHandler,
		ReportHandler:        r.hdlrs.reportHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// SeedUsers inserts the default users when the users table is empty.
func (r *Router) SeedUsers(ctx context.Context) (int, error) {
	return r.ucs.seedUsers.Execute(ctx)
}

// StartScheduler starts the background jobs when the scheduler is enabled.
func (r *Router) StartScheduler() {
	if r.scheduler != nil {
		r.scheduler.Start()
	}
}
