package handler

import (
	"life-go/internal/dto"
	"life-go/internal/service"
	"life-go/internal/utils"

	"github.com/gin-gonic/gin"
)

// Level1Handler serves /api/level1/:user_id
type Level1Handler struct {
	level1Service *service.Level1Service
}

// NewLevel1Handler creates a Level1Handler
func NewLevel1Handler(level1Service *service.Level1Service) *Level1Handler {
	return &Level1Handler{
		level1Service: level1Service,
	}
}

// Submit stores the weekly routine and returns the recomputed baseline.
// Resubmitting replaces the previous input and result.
// @Accept json
// @Produce json
// @Param request body dto.Level1InputRequest true "daily and weekly hours"
// @Success 200 {object} dto.Level1Response
// @Router /api/level1/{user_id} [post]
func (h *Level1Handler) Submit(c *gin.Context) {
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		utils.NotFound(c, "Not found.")
		return
	}

	var req dto.Level1InputRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationFailed(c, utils.FieldErrors(err))
		return
	}

	result, err := h.level1Service.Submit(c.Request.Context(), userID, &req)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, result)
}

// Get returns the stored baseline
// @Router /api/level1/{user_id} [get]
func (h *Level1Handler) Get(c *gin.Context) {
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		utils.NotFound(c, "Not found.")
		return
	}

	result, err := h.level1Service.Get(c.Request.Context(), userID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, result)
}
