package http

import (
	"fixit/internal/interfaces/http/handlers"
	issueHandlers "fixit/internal/interfaces/http/handlers/issue"
	"fixit/internal/shared/logger"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	authHandler      *handlers.AuthHandler
	userHandler      *handlers.UserHandler
	dashboardHandler *handlers.DashboardHandler
	reportHandler    *handlers.ReportHandler
	issueHandler     *issueHandlers.Handler
}

func newHandlers(ucs *allUseCases, log logger.Interface) *allHandlers {
	return &allHandlers{
		authHandler:      handlers.NewAuthHandler(ucs.login, log),
		userHandler:      handlers.NewUserHandler(ucs.listUsers, ucs.listWorkers, ucs.getUser, ucs.createWorker, log),
		dashboardHandler: handlers.NewDashboardHandler(ucs.getDashboard, log),
		reportHandler:    handlers.NewReportHandler(ucs.exportIssue, ucs.exportAll, log),
		issueHandler: issueHandlers.NewHandler(issueHandlers.HandlerDeps{
			CreateIssue:   ucs.createIssue,
			GetIssue:      ucs.getIssue,
			ListIssues:    ucs.listIssues,
			ChangeStatus:  ucs.changeStatus,
			AssignWorker:  ucs.assignWorker,
			AddComment:    ucs.addComment,
			DeleteComment: ucs.deleteComment,
			ListComments:  ucs.listComments,
			AddPhoto:      ucs.addPhoto,
			DeletePhoto:   ucs.deletePhoto,
			ListPhotos:    ucs.listPhotos,
			ListActivity:  ucs.listActivity,
		}, log),
	}
}
