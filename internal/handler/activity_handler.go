package handler

import (
	"strconv"

	"life-go/internal/dto"
	"life-go/internal/models"
	"life-go/internal/service"
	"life-go/internal/utils"

	"github.com/gin-gonic/gin"
)

// ActivityHandler serves one activity category. Maintenance is mounted on /api/category2,
// leakage on /api/category3.
type ActivityHandler struct {
	activityService *service.ActivityService
	kind            models.ActivityKind
}

// NewActivityHandler creates a handler bound to one activity kind
func NewActivityHandler(activityService *service.ActivityService, kind models.ActivityKind) *ActivityHandler {
	return &ActivityHandler{
		activityService: activityService,
		kind:            kind,
	}
}

// List returns the active activities of the user in creation order.
// ?include_inactive=true also returns paused ones.
func (h *ActivityHandler) List(c *gin.Context) {
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		utils.NotFound(c, "Not found.")
		return
	}

	includeInactive, _ := strconv.ParseBool(c.DefaultQuery("include_inactive", "false"))

	activities, err := h.activityService.List(c.Request.Context(), userID, h.kind, includeInactive)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	items := make([]interface{}, len(activities))
	for i := range activities {
		items[i] = h.toResponse(&activities[i])
	}
	utils.SuccessResponse(c, items)
}

// Create adds an activity
func (h *ActivityHandler) Create(c *gin.Context) {
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		utils.NotFound(c, "Not found.")
		return
	}

	var req dto.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationFailed(c, utils.FieldErrors(err))
		return
	}

	activity, err := h.activityService.Create(c.Request.Context(), userID, h.kind, &req)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.Created(c, h.toResponse(activity))
}

// Patch updates the fields present in the body
func (h *ActivityHandler) Patch(c *gin.Context) {
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		utils.NotFound(c, "Not found.")
		return
	}
	activityID, ok := parseIDParam(c, "activity_id")
	if !ok {
		utils.NotFound(c, "Not found.")
		return
	}

	var req dto.PatchActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationFailed(c, utils.FieldErrors(err))
		return
	}

	activity, err := h.activityService.Patch(c.Request.Context(), userID, h.kind, activityID, &req)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, h.toResponse(activity))
}

func (h *ActivityHandler) toResponse(a *models.Activity) interface{} {
	if h.kind == models.KindMaintenance {
		return dto.MaintenanceActivityResponse{
			ID:           a.ID,
			Name:         a.Name,
			HoursPerWeek: a.HoursPerWeek,
			Source:       string(a.Source),
			IsActive:     a.IsActive,
		}
	}
	return dto.LeakageActivityResponse{
		ID:           a.ID,
		Name:         a.Name,
		HoursPerWeek: a.HoursPerWeek,
		IsActive:     a.IsActive,
	}
}
