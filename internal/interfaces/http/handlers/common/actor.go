// Package common provides shared HTTP handler utilities.
package common

import (
	"github.com/gin-gonic/gin"

	"fixit/internal/domain/issue"
	"fixit/internal/domain/user"
	"fixit/internal/shared/constants"
	"fixit/internal/shared/errors"
)

// Actor returns the authenticated user set by the auth middleware.
func Actor(c *gin.Context) (issue.Actor, error) {
	userID := c.GetString(constants.ContextKeyUserID)
	if userID == "" {
		return issue.Actor{}, errors.NewUnauthorizedError("user not authenticated")
	}

	role, err := user.NewRole(c.GetString(constants.ContextKeyUserRole))
	if err != nil {
		return issue.Actor{}, errors.NewUnauthorizedError("user not authenticated")
	}

	return issue.Actor{UserID: userID, Role: role}, nil
}
