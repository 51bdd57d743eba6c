package file

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"collabhub/internal/dto"
	"collabhub/internal/middleware"
	"collabhub/pkg/response"
)

type FileHandler struct {
	service *FileService
}

func (h *FileHandler) handleList(c *gin.Context) {
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

func (h *FileHandler) handleUpload(c *gin.Context) {
	workspaceID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		dto.ErrorResponse(c, invalidID("工作区"))
		return
	}

	fh, err := c.FormFile("file")
	if err != nil || fh.Filename == "" {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("未提供文件"),
		))
		return
	}

	result, bizErr := h.service.Upload(
		uint(workspaceID),
		middleware.CurrentUserID(c),
		fh,
		c.PostForm("description"),
		func(dst string) error { return c.SaveUploadedFile(fh, dst) },
	)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	c.JSON(http.StatusCreated, response.SuccessResponse(result))
}

func (h *FileHandler) handleDownload(c *gin.Context) {
	fileID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		dto.ErrorResponse(c, invalidID("文件"))
		return
	}

	info, bizErr := h.service.Download(uint(fileID), middleware.CurrentUserID(c))
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	c.FileAttachment(info.FilePath, info.OriginalFilename)
}

func invalidID(name string) *response.BusinessError {
	return response.NewBusinessError(
		response.WithErrorCode(response.ParseError),
		response.WithErrorMessage("无效的" + name + "ID"),
	)
}
