package request

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterRoutes 注册连接请求路由，r 需已挂载认证中间件
func RegisterRoutes(r *gin.RouterGroup, db *gorm.DB) {
	service := NewRequestService(db)
	h := &RequestHandler{
		service: service,
	}
	r.POST("/requests", h.handleCreate)
	r.GET("/requests", h.handleList)
	r.POST("/requests/:id/respond", h.handleRespond)
}
