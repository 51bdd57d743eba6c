package task

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterRoutes 注册任务路由，r 需已挂载认证中间件
func RegisterRoutes(r *gin.RouterGroup, db *gorm.DB) {
	service := NewTaskService(db)
	h := &TaskHandler{
		service: service,
	}
	r.GET("/workspaces/:id/tasks", h.handleList)
	r.POST("/workspaces/:id/tasks", h.handleCreate)
	r.PUT("/tasks/:id", h.handleUpdate)
	r.DELETE("/tasks/:id", h.handleDelete)
}
