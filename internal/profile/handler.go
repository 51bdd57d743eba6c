package profile

import (
	"github.com/gin-gonic/gin"

	"collabhub/internal/dto"
	"collabhub/internal/middleware"
)

type ProfileHandler struct {
	service *ProfileService
}

func (h *ProfileHandler) handleGet(c *gin.Context) {
	result, err := h.service.Get(middleware.CurrentUserID(c))
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	dto.SuccessResponse(c, result)
}

func (h *ProfileHandler) handleUpdate(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	if err := h.service.Update(middleware.CurrentUserID(c), req); err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	dto.SuccessResponse(c, gin.H{
		"message": "Profile updated successfully",
	})
}

func (h *ProfileHandler) handleSwitchRole(c *gin.Context) {
	var req SwitchRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	role, err := h.service.SwitchRole(middleware.CurrentUserID(c), req.Role)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	dto.SuccessResponse(c, gin.H{
		"message": "Role updated",
		"role":    role,
	})
}
