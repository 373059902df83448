package handler

import (
	"life-go/internal/service"
	"life-go/internal/utils"

	"github.com/gin-gonic/gin"
)

// SummaryHandler serves /api/life-summary/:user_id
type SummaryHandler struct {
	summaryService *service.SummaryService
}

// NewSummaryHandler creates a SummaryHandler
func NewSummaryHandler(summaryService *service.SummaryService) *SummaryHandler {
	return &SummaryHandler{
		summaryService: summaryService,
	}
}

// Get returns the baseline, category totals and adjusted free years
// @Success 200 {object} dto.LifeSummaryResponse
// @Router /api/life-summary/{user_id} [get]
func (h *SummaryHandler) Get(c *gin.Context) {
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		utils.NotFound(c, "Not found.")
		return
	}

	summary, err := h.summaryService.Get(c.Request.Context(), userID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, summary)
}

// Export downloads the summary as CSV
// @Produce text/csv
// @Router /api/life-summary/{user_id}/export [get]
func (h *SummaryHandler) Export(c *gin.Context) {
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		utils.NotFound(c, "Not found.")
		return
	}

	data, filename, err := h.summaryService.ExportCSV(c.Request.Context(), userID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.Attachment(c, filename, "text/csv; charset=utf-8", data)
}
