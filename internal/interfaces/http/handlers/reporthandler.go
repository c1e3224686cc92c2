package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"fixit/internal/application/report/dto"
	"fixit/internal/application/report/usecases"
	"fixit/internal/shared/logger"
	"fixit/internal/shared/utils"
)

// ReportHandler renders issue reports as standalone HTML documents.
type ReportHandler struct {
	exportIssueUC usecases.ExportIssueExecutor
	exportAllUC   usecases.ExportAllExecutor
	logger        logger.Interface
}

func NewReportHandler(
	exportIssueUC usecases.ExportIssueExecutor,
	exportAllUC usecases.ExportAllExecutor,
	log logger.Interface,
) *ReportHandler {
	return &ReportHandler{
		exportIssueUC: exportIssueUC,
		exportAllUC:   exportAllUC,
		logger:        log,
	}
}

// ExportIssue handles GET /issues/:id/report
func (h *ReportHandler) ExportIssue(c *gin.Context) {
	report, err := h.exportIssueUC.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.writeReport(c, report)
}

// ExportAll handles GET /reports/issues
func (h *ReportHandler) ExportAll(c *gin.Context) {
	report, err := h.exportAllUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.writeReport(c, report)
}

// writeReport sends the HTML inline; ?download=true asks the browser to save it instead.
func (h *ReportHandler) writeReport(c *gin.Context, report *dto.ReportDTO) {
	if c.Query("download") == "true" {
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.Filename))
	}
	utils.HTMLResponse(c, report.HTML)
}
