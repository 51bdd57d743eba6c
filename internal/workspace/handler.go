package workspace

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"collabhub/internal/dto"
	"collabhub/internal/middleware"
	"collabhub/pkg/response"
)

type WorkspaceHandler struct {
	service *WorkspaceService
}

func (h *WorkspaceHandler) handleList(c *gin.Context) {
	result, err := h.service.List(middleware.CurrentUserID(c))
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	dto.SuccessResponse(c, result)
}

func (h *WorkspaceHandler) handleCreate(c *gin.Context) {
	var req CreateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	result, err := h.service.Create(middleware.CurrentUserID(c), req)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.SuccessResponse(result))
}

func (h *WorkspaceHandler) handleListMembers(c *gin.Context) {
	workspaceID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		dto.ErrorResponse(c, invalidWorkspaceID())
		return
	}

	result, bizErr := h.service.ListMembers(uint(workspaceID), middleware.CurrentUserID(c))
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, result)
}

func (h *WorkspaceHandler) handleAddMember(c *gin.Context) {
	workspaceID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		dto.ErrorResponse(c, invalidWorkspaceID())
		return
	}

	var req AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	result, bizErr := h.service.AddMember(uint(workspaceID), middleware.CurrentUserID(c), req)
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
