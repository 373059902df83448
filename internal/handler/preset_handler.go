package handler

import (
	"life-go/internal/dto"
	"life-go/internal/service"
	"life-go/internal/utils"

	"github.com/gin-gonic/gin"
)

// PresetHandler lists suggested maintenance activities
type PresetHandler struct {
	activityService *service.ActivityService
}

func NewPresetHandler(activityService *service.ActivityService) *PresetHandler {
	return &PresetHandler{activityService: activityService}
}

func (h *PresetHandler) List(c *gin.Context) {
	utils.SuccessResponse(c, dto.PresetListResponse{Presets: h.activityService.Presets()})
}
