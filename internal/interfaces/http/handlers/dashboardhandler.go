package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fixit/internal/application/dashboard/usecases"
	"fixit/internal/interfaces/http/handlers/common"
	"fixit/internal/shared/logger"
	"fixit/internal/shared/utils"
)

// DashboardHandler serves the role-dependent statistics page.
type DashboardHandler struct {
	getDashboardUC usecases.GetDashboardExecutor
	logger         logger.Interface
}

func NewDashboardHandler(getDashboardUC usecases.GetDashboardExecutor, log logger.Interface) *DashboardHandler {
	return &DashboardHandler{
		getDashboardUC: getDashboardUC,
		logger:         log,
	}
}

// GetDashboard handles GET /dashboard
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	actor, err := common.Actor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getDashboardUC.Execute(c.Request.Context(), usecases.GetDashboardQuery{Actor: actor})
	if err != nil {
		h.logger.Errorw("failed to get dashboard", "user_id", actor.UserID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
