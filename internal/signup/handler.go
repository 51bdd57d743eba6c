package signup

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"collabhub/internal/dto"
	"collabhub/pkg/response"
)

type SignupHandler struct {
	service *SignupService
}

func (h *SignupHandler) handle(c *gin.Context) {
	// 解析参数
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	// 调用注册服务
	result, err := h.service.Signup(req)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	// 写入 Cookie，兼容 Bearer 两种方式
	c.SetCookie("access_token", result.AccessToken, 3600*24, "/", "", false, true)

	c.JSON(http.StatusCreated, response.SuccessResponse(result))
}
