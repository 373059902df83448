package handler

import (
	"life-go/internal/dto"
	"life-go/internal/service"
	"life-go/internal/utils"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves /api/admin
type AdminHandler struct {
	adminService   *service.AdminService
	profileService *service.ProfileService
}

// NewAdminHandler creates an AdminHandler
func NewAdminHandler(adminService *service.AdminService, profileService *service.ProfileService) *AdminHandler {
	return &AdminHandler{
		adminService:   adminService,
		profileService: profileService,
	}
}

// Login issues an admin token
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "admin credentials"
// @Success 200 {object} dto.LoginResponse
// @Router /api/admin/login [post]
func (h *AdminHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationFailed(c, utils.FieldErrors(err))
		return
	}

	resp, err := h.adminService.Login(&req)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, resp)
}

// ListProfiles returns profiles newest first
// @Param page query int false "page number"
// @Param per_page query int false "page size"
// @Router /api/admin/profiles [get]
func (h *AdminHandler) ListProfiles(c *gin.Context) {
	page, perPage := parsePagination(c)

	result, err := h.profileService.List(c.Request.Context(), page, perPage)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, result)
}

// DeleteProfile removes a profile and everything it owns
// @Router /api/admin/profiles/{user_id} [delete]
func (h *AdminHandler) DeleteProfile(c *gin.Context) {
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		utils.NotFound(c, "Not found.")
		return
	}

	if err := h.profileService.Delete(c.Request.Context(), userID); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, dto.MessageResponse{Message: "Profile deleted."})
}
