package task

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"collabhub/internal/dto"
	"collabhub/internal/middleware"
	"collabhub/pkg/response"
)

type TaskHandler struct {
	service *TaskService
}

func (h *TaskHandler) handleList(c *gin.Context) {
	workspaceID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		dto.ErrorResponse(c, invalidID("工作区"))
		return
	}

	result, bizErr := h.service.List(uint(workspaceID), middleware.CurrentUserID(c))
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, result)
}

func (h *TaskHandler) handleCreate(c *gin.Context) {
	workspaceID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		dto.ErrorResponse(c, invalidID("工作区"))
		return
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	result, bizErr := h.service.Create(uint(workspaceID), middleware.CurrentUserID(c), req)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	c.JSON(http.StatusCreated, response.SuccessResponse(result))
}

func (h *TaskHandler) handleUpdate(c *gin.Context) {
	taskID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		dto.ErrorResponse(c, invalidID("任务"))
		return
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	if bizErr := h.service.Update(uint(taskID), middleware.CurrentUserID(c), req); bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, gin.H{
		"message": "Task updated successfully",
	})
}

func (h *TaskHandler) handleDelete(c *gin.Context) {
	taskID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		dto.ErrorResponse(c, invalidID("任务"))
		return
	}

	if bizErr := h.service.Delete(uint(taskID), middleware.CurrentUserID(c)); bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, gin.H{
		"message": "Task deleted successfully",
	})
}

func invalidID(name string) *response.BusinessError {
	return response.NewBusinessError(
		response.WithErrorCode(response.ParseError),
		response.WithErrorMessage("无效的" + name + "ID"),
	)
}
