package project

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"collabhub/internal/dto"
	"collabhub/internal/middleware"
	"collabhub/pkg/response"
)

type ProjectHandler struct {
	service *ProjectService
}

func (h *ProjectHandler) handleCreate(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	id, bizErr := h.service.Create(middleware.CurrentUserID(c), middleware.CurrentUserRole(c), req)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	c.JSON(http.StatusCreated, response.SuccessResponse(gin.H{
		"message": "Project created",
		"id":      id,
	}))
}

func (h *ProjectHandler) handleList(c *gin.Context) {
	result, bizErr := h.service.List(middleware.CurrentUserID(c), middleware.CurrentUserRole(c))
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, result)
}

func (h *ProjectHandler) handleSubmit(c *gin.Context) {
	projectID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		dto.ErrorResponse(c, invalidID("项目"))
		return
	}

	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	submissionID, bizErr := h.service.Submit(uint(projectID), middleware.CurrentUserID(c), middleware.CurrentUserRole(c), req)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	c.JSON(http.StatusCreated, response.SuccessResponse(gin.H{
		"message":       "Submission recorded",
		"submission_id": submissionID,
	}))
}

func (h *ProjectHandler) handleReview(c *gin.Context) {
	submissionID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		dto.ErrorResponse(c, invalidID("提交"))
		return
	}

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	reviewID, bizErr := h.service.Review(uint(submissionID), middleware.CurrentUserID(c), middleware.CurrentUserRole(c), req)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	c.JSON(http.StatusCreated, response.SuccessResponse(gin.H{
		"message": "Review saved",
		"id":      reviewID,
	}))
}

func invalidID(name string) *response.BusinessError {
	return response.NewBusinessError(
		response.WithErrorCode(response.ParseError),
		response.WithErrorMessage("无效的" + name + "ID"),
	)
}
