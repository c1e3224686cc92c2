package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fixit/internal/application/user/usecases"
	"fixit/internal/shared/logger"
	"fixit/internal/shared/utils"
)

// AuthHandler exchanges a user id for an access token.
type AuthHandler struct {
	loginUC usecases.LoginExecutor
	logger  logger.Interface
}

func NewAuthHandler(loginUC usecases.LoginExecutor, log logger.Interface) *AuthHandler {
	return &AuthHandler{
		loginUC: loginUC,
		logger:  log,
	}
}

type LoginRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for login", "error", err)
		utils.ErrorResponseWithError(c, utils.TranslateBindError(err))
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginCommand{UserID: req.UserID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Signed in", result)
}
