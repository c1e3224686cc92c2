package http

import (
	"gorm.io/gorm"

	"fixit/internal/domain/issue"
	"fixit/internal/domain/user"
	"fixit/internal/infrastructure/repository"
	"fixit/internal/shared/logger"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	userRepo     user.Repository
	issueRepo    issue.Repository
	activityRepo issue.ActivityLogRepository
}

func newRepositories(db *gorm.DB, log logger.Interface) *repositories {
	userRepo := repository.NewUserRepository(db, log)
	activityRepo := repository.NewActivityLogRepository(db)

	return &repositories{
		userRepo:     userRepo,
		issueRepo:    repository.NewIssueRepository(db, activityRepo, userRepo, log),
		activityRepo: activityRepo,
	}
}
