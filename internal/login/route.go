package login

import (
	"github.com/gin-gonic/gin"

	"collabhub/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup) {
	service := &LoginService{}
	h := &LoginHandler{
		service: service,
	}
	r.POST("/login", h.handleLogin)
	r.POST("/logout", middleware.JWTAuth(), h.handleLogout)
}
