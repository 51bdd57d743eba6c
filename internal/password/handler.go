package password

import (
	"github.com/gin-gonic/gin"

	"collabhub/internal/dto"
)

type PasswordHandler struct {
	service *PasswordService
}

func (h *PasswordHandler) handleForgot(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	if err := h.service.Forgot(req); err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	dto.SuccessResponse(c, gin.H{
		"message": "Password reset email sent",
	})
}

func (h *PasswordHandler) handleReset(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	if err := h.service.Reset(req); err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	dto.SuccessResponse(c, gin.H{
		"message": "Password updated successfully",
	})
}
