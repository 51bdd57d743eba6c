package workspace

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterRoutes 注册工作区路由，r 需已挂载认证中间件
func RegisterRoutes(r *gin.RouterGroup, db *gorm.DB) {
	service := NewWorkspaceService(db)
	h := &WorkspaceHandler{
		service: service,
	}
	r.GET("/workspaces", h.handleList)
	r.POST("/workspaces", h.handleCreate)
	r.GET("/workspaces/:id/members", h.handleListMembers)
	r.POST("/workspaces/:id/members", h.handleAddMember)
}
