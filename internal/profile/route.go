package profile

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes 注册档案路由，r 需已挂载认证中间件
func RegisterRoutes(r *gin.RouterGroup) {
	service := &ProfileService{}
	h := &ProfileHandler{
		service: service,
	}
	r.GET("/profile", h.handleGet)
	r.PUT("/profile", h.handleUpdate)
	r.PUT("/me/role", h.handleSwitchRole)
}
