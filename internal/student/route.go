package student

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterRoutes 注册学生档案路由，r 需已挂载认证中间件
func RegisterRoutes(r *gin.RouterGroup, db *gorm.DB) {
	service := NewStudentService(db)
	h := &StudentHandler{
		service: service,
	}
	r.GET("/students", h.handleList)
	r.GET("/students/:id", h.handleGet)
}
