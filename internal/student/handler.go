package student

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"collabhub/internal/dto"
	"collabhub/internal/middleware"
	"collabhub/pkg/response"
)

type StudentHandler struct {
	service *StudentService
}

func (h *StudentHandler) handleList(c *gin.Context) {
	result, err := h.service.List(middleware.CurrentUserRole(c))
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	dto.SuccessResponse(c, result)
}

func (h *StudentHandler) handleGet(c *gin.Context) {
	studentID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("无效的学生ID"),
		))
		return
	}

	result, bizErr := h.service.Get(uint(studentID), middleware.CurrentUserRole(c))
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, result)
}
