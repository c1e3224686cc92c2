package routes

import (
	"github.com/gin-gonic/gin"

	"fixit/internal/infrastructure/permission"
	"fixit/internal/interfaces/http/handlers"
	"fixit/internal/interfaces/http/middleware"
)

// UserRouteConfig holds dependencies for user and dashboard routes.
type UserRouteConfig struct {
	UserHandler          *handlers.UserHandler
	DashboardHandler     *handlers.DashboardHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupUserRoutes configures user management routes.
func SetupUserRoutes(engine *gin.Engine, cfg *UserRouteConfig) {
	users := engine.Group("/users")
	users.Use(cfg.AuthMiddleware.RequireAuth())
	{
		users.GET("", cfg.UserHandler.ListUsers)

		// Specific named endpoints (must come BEFORE /:id to avoid conflicts)
		users.GET("/workers", cfg.UserHandler.ListWorkers)
		users.POST("/workers",
			cfg.PermissionMiddleware.RequirePermission(permission.ResourceUser, permission.ActionCreate),
			cfg.UserHandler.CreateWorker)

		users.GET("/:id", cfg.UserHandler.GetUser)
	}

	engine.GET("/dashboard", cfg.AuthMiddleware.RequireAuth(), cfg.DashboardHandler.GetDashboard)
}
