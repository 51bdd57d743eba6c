package project

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterRoutes 注册项目路由，r 需已挂载认证中间件
func RegisterRoutes(r *gin.RouterGroup, db *gorm.DB) {
	service := NewProjectService(db)
	h := &ProjectHandler{
		service: service,
	}
	r.POST("/projects", h.handleCreate)
	r.GET("/projects", h.handleList)
	r.POST("/projects/:id/submit", h.handleSubmit)
	r.POST("/submissions/:id/review", h.handleReview)
}
