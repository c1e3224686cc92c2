package http

import (
	dashboardUsecases "fixit/internal/application/dashboard/usecases"
	issueUsecases "fixit/internal/application/issue/usecases"
	reportUsecases "fixit/internal/application/report/usecases"
	userUsecases "fixit/internal/application/user/usecases"
	"fixit/internal/infrastructure/persistence/seeds"
)

// allUseCases holds every use case the handlers call.
type allUseCases struct {
	// Users
	seedUsers    *userUsecases.SeedUsersUseCase
	listUsers    *userUsecases.ListUsersUseCase
	listWorkers  *userUsecases.ListWorkersUseCase
	getUser      *userUsecases.GetUserUseCase
	createWorker *userUsecases.CreateWorkerUseCase
	login        *userUsecases.LoginUseCase

	// Issues
	createIssue   *issueUsecases.CreateIssueUseCase
	getIssue      *issueUsecases.GetIssueUseCase
	listIssues    *issueUsecases.ListIssuesUseCase
	changeStatus  *issueUsecases.ChangeStatusUseCase
	assignWorker  *issueUsecases.AssignWorkerUseCase
	addComment    *issueUsecases.AddCommentUseCase
	deleteComment *issueUsecases.DeleteCommentUseCase
	listComments  *issueUsecases.ListCommentsUseCase
	addPhoto      *issueUsecases.AddPhotoUseCase
	deletePhoto   *issueUsecases.DeletePhotoUseCase
	listPhotos    *issueUsecases.ListPhotosUseCase
	listActivity  *issueUsecases.ListActivityUseCase
	remindOverdue *issueUsecases.RemindOverdueUseCase

	// Dashboard & reports
	getDashboard     *dashboardUsecases.GetDashboardUseCase
	refreshDashboard *dashboardUsecases.RefreshDashboardUseCase
	exportIssue      *reportUsecases.ExportIssueUseCase
	exportAll        *reportUsecases.ExportAllUseCase
}

func newUseCases(c *Container) *allUseCases {
	r := c.repos
	log := c.log
	dash := c.dashboardCache

	seedUsers := userUsecases.NewSeedUsersUseCase(r.userRepo, seeds.DefaultUsers, dash, log)
	getDashboard := dashboardUsecases.NewGetDashboardUseCase(r.issueRepo, r.userRepo, dash, log)

	return &allUseCases{
		seedUsers:    seedUsers,
		listUsers:    userUsecases.NewListUsersUseCase(r.userRepo, seedUsers, log),
		listWorkers:  userUsecases.NewListWorkersUseCase(r.userRepo, log),
		getUser:      userUsecases.NewGetUserUseCase(r.userRepo, log),
		createWorker: userUsecases.NewCreateWorkerUseCase(r.userRepo, dash, log),
		login:        userUsecases.NewLoginUseCase(r.userRepo, c.jwtSvc, log),

		createIssue:   issueUsecases.NewCreateIssueUseCase(r.issueRepo, r.userRepo, dash, log),
		getIssue:      issueUsecases.NewGetIssueUseCase(r.issueRepo, r.userRepo, log),
		listIssues:    issueUsecases.NewListIssuesUseCase(r.issueRepo, log),
		changeStatus:  issueUsecases.NewChangeStatusUseCase(r.issueRepo, dash, log),
		assignWorker:  issueUsecases.NewAssignWorkerUseCase(r.issueRepo, dash, log),
		addComment:    issueUsecases.NewAddCommentUseCase(r.issueRepo, r.userRepo, dash, log),
		deleteComment: issueUsecases.NewDeleteCommentUseCase(r.issueRepo, dash, log),
		listComments:  issueUsecases.NewListCommentsUseCase(r.issueRepo, r.userRepo, log),
		addPhoto:      issueUsecases.NewAddPhotoUseCase(r.issueRepo, dash, log),
		deletePhoto:   issueUsecases.NewDeletePhotoUseCase(r.issueRepo, dash, log),
		listPhotos:    issueUsecases.NewListPhotosUseCase(r.issueRepo, log),
		listActivity:  issueUsecases.NewListActivityUseCase(r.issueRepo, r.activityRepo, r.userRepo, log),
		remindOverdue: issueUsecases.NewRemindOverdueUseCase(r.issueRepo, log),

		getDashboard:     getDashboard,
		refreshDashboard: dashboardUsecases.NewRefreshDashboardUseCase(getDashboard),
		exportIssue:      reportUsecases.NewExportIssueUseCase(r.issueRepo, r.activityRepo, r.userRepo, c.markdown, log),
		exportAll:        reportUsecases.NewExportAllUseCase(r.issueRepo, r.userRepo, c.markdown, log),
	}
}
