package chat

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterRoutes 注册聊天通道，r 需已挂载认证中间件
func RegisterRoutes(r *gin.RouterGroup, db *gorm.DB) {
	h := NewChatHandler(db)
	r.GET("/ws", h.Handle)
}
