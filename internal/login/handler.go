package login

import (
	"github.com/gin-gonic/gin"

	"collabhub/internal/dto"
)

type LoginHandler struct {
	service *LoginService
}

func (h *LoginHandler) handleLogin(c *gin.Context) {
	// 解析参数
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	// 调用登录服务
	result, err := h.service.Login(req)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	// 写入 Cookie，兼容 Bearer 两种方式
	c.SetCookie("access_token", result.AccessToken, 3600*24, "/", "", false, true)

	dto.SuccessResponse(c, result)
}

// handleLogout 无状态 JWT，退出只清理 Cookie
func (h *LoginHandler) handleLogout(c *gin.Context) {
	c.SetCookie("access_token", "", -1, "/", "", false, true)

	dto.SuccessResponse(c, gin.H{
		"message": "Logout successful",
	})
}
