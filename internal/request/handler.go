package request

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"collabhub/internal/dto"
	"collabhub/internal/middleware"
	"collabhub/pkg/response"
)

type RequestHandler struct {
	service *RequestService
}

func (h *RequestHandler) handleCreate(c *gin.Context) {
	var req CreateRequest
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
		"message": "Request sent",
		"id":      id,
	}))
}

func (h *RequestHandler) handleList(c *gin.Context) {
	result, bizErr := h.service.List(middleware.CurrentUserID(c), middleware.CurrentUserRole(c))
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, result)
}

func (h *RequestHandler) handleRespond(c *gin.Context) {
	requestID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("无效的请求ID"),
		))
		return
	}

	var req RespondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	status, bizErr := h.service.Respond(uint(requestID), middleware.CurrentUserID(c), req.Action)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, gin.H{
		"message": "Response recorded",
		"status":  status,
	})
}
