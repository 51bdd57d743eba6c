package file

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterRoutes 注册文件路由，r 需已挂载认证中间件
func RegisterRoutes(r *gin.RouterGroup, db *gorm.DB) {
	service := NewFileService(db)
	h := &FileHandler{
		service: service,
	}
	r.GET("/workspaces/:id/files", h.handleList)
	r.POST("/workspaces/:id/files", h.handleUpload)
	r.GET("/files/:id/download", h.handleDownload)
}
