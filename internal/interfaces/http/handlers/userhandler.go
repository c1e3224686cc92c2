package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fixit/internal/application/user/usecases"
	"fixit/internal/interfaces/http/handlers/common"
	"fixit/internal/shared/logger"
	"fixit/internal/shared/utils"
)

// UserHandler handles HTTP requests for user operations
type UserHandler struct {
	listUsersUC    usecases.ListUsersExecutor
	listWorkersUC  usecases.ListWorkersExecutor
	getUserUC      usecases.GetUserExecutor
	createWorkerUC usecases.CreateWorkerExecutor
	logger         logger.Interface
}

// NewUserHandler creates a new user handler
func NewUserHandler(
	listUsersUC usecases.ListUsersExecutor,
	listWorkersUC usecases.ListWorkersExecutor,
	getUserUC usecases.GetUserExecutor,
	createWorkerUC usecases.CreateWorkerExecutor,
	log logger.Interface,
) *UserHandler {
	return &UserHandler{
		listUsersUC:    listUsersUC,
		listWorkersUC:  listWorkersUC,
		getUserUC:      getUserUC,
		createWorkerUC: createWorkerUC,
		logger:         log,
	}
}

type CreateWorkerRequest struct {
	Name string `json:"name"`
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.listUsersUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, users, len(users), nil)
}

// ListWorkers handles GET /users/workers
func (h *UserHandler) ListWorkers(c *gin.Context) {
	workers, err := h.listWorkersUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, workers, len(workers), nil)
}

// GetUser handles GET /users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	result, err := h.getUserUC.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetCurrentUser handles GET /auth/me
func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	actor, err := common.Actor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUserUC.Execute(c.Request.Context(), actor.UserID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CreateWorker handles POST /users/workers
func (h *UserHandler) CreateWorker(c *gin.Context) {
	actor, err := common.Actor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create worker", "error", err)
		utils.ErrorResponseWithError(c, utils.TranslateBindError(err))
		return
	}

	result, err := h.createWorkerUC.Execute(c.Request.Context(), usecases.CreateWorkerCommand{
		Actor: actor,
		Name:  req.Name,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Worker created successfully")
}
