package invitation

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"collabhub/internal/dto"
	"collabhub/internal/middleware"
	"collabhub/pkg/response"
)

type InvitationHandler struct {
	service *InvitationService
}

func (h *InvitationHandler) handleInviteStudents(c *gin.Context) {
	workspaceID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		dto.ErrorResponse(c, invalidID("工作区"))
		return
	}

	var req InviteStudentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	result, bizErr := h.service.InviteStudents(
		uint(workspaceID),
		middleware.CurrentUserID(c),
		middleware.CurrentUserRole(c),
		req,
	)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	c.JSON(http.StatusCreated, response.SuccessResponse(result))
}

func (h *InvitationHandler) handleListWorkspaceInvitations(c *gin.Context) {
	workspaceID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		dto.ErrorResponse(c, invalidID("工作区"))
		return
	}

	result, bizErr := h.service.ListWorkspaceInvitations(uint(workspaceID), middleware.CurrentUserID(c))
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, result)
}

func (h *InvitationHandler) handleListMyInvitations(c *gin.Context) {
	result, bizErr := h.service.ListMyInvitations(middleware.CurrentUserID(c))
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, result)
}

// handleRespond 响应邀请
// 同时服务工作区前缀和简化两种路径，路径中的工作区ID不参与校验
func (h *InvitationHandler) handleRespond(c *gin.Context) {
	invitationID, err := strconv.ParseUint(c.Param("invitationId"), 10, 32)
	if err != nil {
		dto.ErrorResponse(c, invalidID("邀请"))
		return
	}

	var req RespondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	result, bizErr := h.service.Respond(uint(invitationID), middleware.CurrentUserID(c), req.Action)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, result)
}

func invalidID(name string) *response.BusinessError {
	return response.NewBusinessError(
		response.WithErrorCode(response.ParseError),
		response.WithErrorMessage("无效的" + name + "ID"),
	)
}
