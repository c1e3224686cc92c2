package routes

import (
	"github.com/gin-gonic/gin"

	"fixit/internal/interfaces/http/handlers"
	"fixit/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for authentication routes.
type AuthRouteConfig struct {
	AuthHandler    *handlers.AuthHandler
	UserHandler    *handlers.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimiter    *middleware.RateLimiter // may be nil when redis is disabled
}

// SetupAuthRoutes configures authentication routes.
func SetupAuthRoutes(engine *gin.Engine, cfg *AuthRouteConfig) {
	auth := engine.Group("/auth")
	{
		login := []gin.HandlerFunc{cfg.AuthHandler.Login}
		if cfg.RateLimiter != nil {
			login = append([]gin.HandlerFunc{cfg.RateLimiter.Limit()}, login...)
		}
		auth.POST("/login", login...)
		auth.GET("/me", cfg.AuthMiddleware.RequireAuth(), cfg.UserHandler.GetCurrentUser)
	}
}
