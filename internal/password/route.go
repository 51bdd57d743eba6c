package password

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup) {
	service := &PasswordService{}
	h := &PasswordHandler{
		service: service,
	}
	r.POST("/forgot-password", h.handleForgot)
	r.POST("/reset-password", h.handleReset)
}
