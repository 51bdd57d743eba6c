package message

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"collabhub/internal/dto"
	"collabhub/internal/middleware"
	"collabhub/pkg/response"
)

type MessageHandler struct {
	service *MessageService
}

func (h *MessageHandler) handleList(c *gin.Context) {
	workspaceID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		dto.ErrorResponse(c, invalidWorkspaceID())
		return
	}

	result, bizErr := h.service.List(uint(workspaceID), middleware.CurrentUserID(c))
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, result)
}

func (h *MessageHandler) handlePost(c *gin.Context) {
	workspaceID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		dto.ErrorResponse(c, invalidWorkspaceID())
		return
	}

	var req PostMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	result, bizErr := h.service.Post(uint(workspaceID), middleware.CurrentUserID(c), req)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	c.JSON(http.StatusCreated, response.SuccessResponse(result))
}

func invalidWorkspaceID() *response.BusinessError {
	return response.NewBusinessError(
		response.WithErrorCode(response.ParseError),
		response.WithErrorMessage("无效的工作区ID"),
	)
}
