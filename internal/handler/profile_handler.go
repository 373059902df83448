package handler

import (
	"life-go/internal/dto"
	"life-go/internal/service"
	"life-go/internal/utils"

	"github.com/gin-gonic/gin"
)

// ProfileHandler serves /api/user-profile
type ProfileHandler struct {
	profileService *service.ProfileService
}

// NewProfileHandler creates a ProfileHandler
func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

// Describe tells clients how to create a profile
// @Router /api/user-profile [get]
func (h *ProfileHandler) Describe(c *gin.Context) {
	utils.SuccessResponse(c, dto.MessageResponse{
		Message: "POST age and life_expectancy to create a user profile.",
	})
}

// Create creates a profile
// @Accept json
// @Produce json
// @Param request body dto.CreateProfileRequest true "age and optional life expectancy"
// @Success 201 {object} dto.ProfileResponse
// @Router /api/user-profile [post]
func (h *ProfileHandler) Create(c *gin.Context) {
	var req dto.CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationFailed(c, utils.FieldErrors(err))
		return
	}

	profile, err := h.profileService.Create(c.Request.Context(), &req)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.Created(c, profile)
}

// Get returns one profile
// @Router /api/user-profile/{user_id} [get]
func (h *ProfileHandler) Get(c *gin.Context) {
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		utils.NotFound(c, "Not found.")
		return
	}

	profile, err := h.profileService.Get(c.Request.Context(), userID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, profile)
}
