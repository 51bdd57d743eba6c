package invitation

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterRoutes 注册邀请路由，r 需已挂载认证中间件
func RegisterRoutes(r *gin.RouterGroup, db *gorm.DB) {
	service := NewInvitationService(db)
	h := &InvitationHandler{
		service: service,
	}
	r.POST("/workspaces/:id/invite-students", h.handleInviteStudents)
	r.GET("/workspaces/:id/invitations", h.handleListWorkspaceInvitations)
	r.GET("/my-invitations", h.handleListMyInvitations)
	r.POST("/workspaces/:id/invitations/:invitationId/respond", h.handleRespond)
	r.POST("/invitations/:invitationId/respond", h.handleRespond)
}
