package message

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterRoutes 注册消息路由，r 需已挂载认证中间件
func RegisterRoutes(r *gin.RouterGroup, db *gorm.DB) {
	service := NewMessageService(db)
	h := &MessageHandler{
		service: service,
	}
	r.GET("/workspaces/:id/messages", h.handleList)
	r.POST("/workspaces/:id/messages", h.handlePost)
}
