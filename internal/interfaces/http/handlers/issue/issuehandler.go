package issue

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"fixit/internal/application/issue/usecases"
	"fixit/internal/interfaces/http/handlers/common"
	"fixit/internal/shared/logger"
	"fixit/internal/shared/utils"
)

type Handler struct {
	createIssueUC   usecases.CreateIssueExecutor
	getIssueUC      usecases.GetIssueExecutor
	listIssuesUC    usecases.ListIssuesExecutor
	changeStatusUC  usecases.ChangeStatusExecutor
	assignWorkerUC  usecases.AssignWorkerExecutor
	addCommentUC    usecases.AddCommentExecutor
	deleteCommentUC usecases.DeleteCommentExecutor
	listCommentsUC  usecases.ListCommentsExecutor
	addPhotoUC      usecases.AddPhotoExecutor
	deletePhotoUC   usecases.DeletePhotoExecutor
	listPhotosUC    usecases.ListPhotosExecutor
	listActivityUC  usecases.ListActivityExecutor
	logger          logger.Interface
}

type HandlerDeps struct {
	CreateIssue   usecases.CreateIssueExecutor
	GetIssue      usecases.GetIssueExecutor
	ListIssues    usecases.ListIssuesExecutor
	ChangeStatus  usecases.ChangeStatusExecutor
	AssignWorker  usecases.AssignWorkerExecutor
	AddComment    usecases.AddCommentExecutor
	DeleteComment usecases.DeleteCommentExecutor
	ListComments  usecases.ListCommentsExecutor
	AddPhoto      usecases.AddPhotoExecutor
	DeletePhoto   usecases.DeletePhotoExecutor
	ListPhotos    usecases.ListPhotosExecutor
	ListActivity  usecases.ListActivityExecutor
}

func NewHandler(deps HandlerDeps, logger logger.Interface) *Handler {
	return &Handler{
		createIssueUC:   deps.CreateIssue,
		getIssueUC:      deps.GetIssue,
		listIssuesUC:    deps.ListIssues,
		changeStatusUC:  deps.ChangeStatus,
		assignWorkerUC:  deps.AssignWorker,
		addCommentUC:    deps.AddComment,
		deleteCommentUC: deps.DeleteComment,
		listCommentsUC:  deps.ListComments,
		addPhotoUC:      deps.AddPhoto,
		deletePhotoUC:   deps.DeletePhoto,
		listPhotosUC:    deps.ListPhotos,
		listActivityUC:  deps.ListActivity,
		logger:          logger,
	}
}

// CreateIssue handles POST /issues
func (h *Handler) CreateIssue(c *gin.Context) {
	actor, err := common.Actor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create issue", "error", err)
		utils.ErrorResponseWithError(c, utils.TranslateBindError(err))
		return
	}

	result, err := h.createIssueUC.Execute(c.Request.Context(), req.ToCommand(actor))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Issue created successfully")
}

// ListIssues handles GET /issues
func (h *Handler) ListIssues(c *gin.Context) {
	actor, err := common.Actor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	criteria, err := parseCriteria(c, actor)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listIssuesUC.Execute(c.Request.Context(), usecases.ListIssuesQuery{
		Actor:    actor,
		Criteria: criteria,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Issues, len(result.Issues), &result.ActiveFilterCount)
}

// GetIssue handles GET /issues/:id
func (h *Handler) GetIssue(c *gin.Context) {
	actor, err := common.Actor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getIssueUC.Execute(c.Request.Context(), usecases.GetIssueQuery{
		Actor:   actor,
		IssueID: c.Param("id"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ChangeStatus handles PATCH /issues/:id/status
func (h *Handler) ChangeStatus(c *gin.Context) {
	actor, err := common.Actor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for change status", "error", err)
		utils.ErrorResponseWithError(c, utils.TranslateBindError(err))
		return
	}

	result, err := h.changeStatusUC.Execute(c.Request.Context(), usecases.ChangeStatusCommand{
		Actor:     actor,
		IssueID:   c.Param("id"),
		NewStatus: req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Status updated successfully", result)
}

// AssignWorker handles PUT /issues/:id/assignee
func (h *Handler) AssignWorker(c *gin.Context) {
	actor, err := common.Actor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AssignWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.ErrorResponseWithError(c, utils.TranslateBindError(err))
		return
	}

	result, err := h.assignWorkerUC.Execute(c.Request.Context(), usecases.AssignWorkerCommand{
		Actor:    actor,
		IssueID:  c.Param("id"),
		WorkerID: req.WorkerID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	message := "Worker assigned successfully"
	if result.AssignedTo == nil {
		message = "Worker unassigned successfully"
	}
	utils.SuccessResponse(c, http.StatusOK, message, result)
}

// ListComments handles GET /issues/:id/comments
func (h *Handler) ListComments(c *gin.Context) {
	actor, err := common.Actor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listCommentsUC.Execute(c.Request.Context(), usecases.ListCommentsQuery{
		Actor:   actor,
		IssueID: c.Param("id"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result, len(result), nil)
}

// AddComment handles POST /issues/:id/comments
func (h *Handler) AddComment(c *gin.Context) {
	actor, err := common.Actor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.TranslateBindError(err))
		return
	}

	result, err := h.addCommentUC.Execute(c.Request.Context(), usecases.AddCommentCommand{
		Actor:   actor,
		IssueID: c.Param("id"),
		Text:    req.Text,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Comment added successfully")
}

// DeleteComment handles DELETE /issues/:id/comments/:comment_id
func (h *Handler) DeleteComment(c *gin.Context) {
	actor, err := common.Actor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	err = h.deleteCommentUC.Execute(c.Request.Context(), usecases.DeleteCommentCommand{
		Actor:     actor,
		IssueID:   c.Param("id"),
		CommentID: c.Param("comment_id"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Comment deleted successfully", nil)
}

// ListPhotos handles GET /issues/:id/photos
func (h *Handler) ListPhotos(c *gin.Context) {
	actor, err := common.Actor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listPhotosUC.Execute(c.Request.Context(), usecases.ListPhotosQuery{
		Actor:   actor,
		IssueID: c.Param("id"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result, len(result), nil)
}

// AddPhoto handles POST /issues/:id/photos
func (h *Handler) AddPhoto(c *gin.Context) {
	actor, err := common.Actor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddPhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.TranslateBindError(err))
		return
	}

	result, err := h.addPhotoUC.Execute(c.Request.Context(), usecases.AddPhotoCommand{
		Actor:     actor,
		IssueID:   c.Param("id"),
		PhotoPath: req.PhotoPath,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Photo added successfully")
}

// DeletePhoto handles DELETE /issues/:id/photos/:photo_id
func (h *Handler) DeletePhoto(c *gin.Context) {
	actor, err := common.Actor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	err = h.deletePhotoUC.Execute(c.Request.Context(), usecases.DeletePhotoCommand{
		Actor:   actor,
		IssueID: c.Param("id"),
		PhotoID: c.Param("photo_id"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Photo deleted successfully", nil)
}

// ListActivity handles GET /issues/:id/activity
func (h *Handler) ListActivity(c *gin.Context) {
	actor, err := common.Actor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listActivityUC.Execute(c.Request.Context(), usecases.ListActivityQuery{
		Actor:   actor,
		IssueID: c.Param("id"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result, len(result), nil)
}
