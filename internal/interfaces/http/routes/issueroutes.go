package routes

import (
	"github.com/gin-gonic/gin"

	"fixit/internal/infrastructure/permission"
	"fixit/internal/interfaces/http/handlers"
	issuehandlers "fixit/internal/interfaces/http/handlers/issue"
	"fixit/internal/interfaces/http/middleware"
)

type IssueRouteConfig struct {
	IssueHandler         *issuehandlers.Handler
	ReportHandler        *handlers.ReportHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupIssueRoutes configures issue, comment, photo, activity and report routes. Visibility and
// status rules are checked by the use cases; only manager-only actions are gated here.
func SetupIssueRoutes(engine *gin.Engine, cfg *IssueRouteConfig) {
	perm := cfg.PermissionMiddleware

	issues := engine.Group("/issues")
	issues.Use(cfg.AuthMiddleware.RequireAuth())
	{
		issues.POST("",
			perm.RequirePermission(permission.ResourceIssue, permission.ActionCreate),
			cfg.IssueHandler.CreateIssue)
		issues.GET("", cfg.IssueHandler.ListIssues)

		issues.PATCH("/:id/status", cfg.IssueHandler.ChangeStatus)
		issues.PUT("/:id/assignee",
			perm.RequirePermission(permission.ResourceIssue, permission.ActionAssign),
			cfg.IssueHandler.AssignWorker)

		issues.GET("/:id/comments", cfg.IssueHandler.ListComments)
		issues.POST("/:id/comments", cfg.IssueHandler.AddComment)
		issues.DELETE("/:id/comments/:comment_id", cfg.IssueHandler.DeleteComment)

		issues.GET("/:id/photos", cfg.IssueHandler.ListPhotos)
		issues.POST("/:id/photos", cfg.IssueHandler.AddPhoto)
		issues.DELETE("/:id/photos/:photo_id", cfg.IssueHandler.DeletePhoto)

		issues.GET("/:id/activity", cfg.IssueHandler.ListActivity)
		issues.GET("/:id/report",
			perm.RequirePermission(permission.ResourceReport, permission.ActionExport),
			cfg.ReportHandler.ExportIssue)

		issues.GET("/:id", cfg.IssueHandler.GetIssue)
	}

	reports := engine.Group("/reports")
	reports.Use(cfg.AuthMiddleware.RequireAuth(),
		perm.RequirePermission(permission.ResourceReport, permission.ActionExport))
	{
		reports.GET("/issues", cfg.ReportHandler.ExportAll)
	}
}
