package file

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"collabhub/config"
	fileModel "collabhub/internal/model/file"
	userModel "collabhub/internal/model/user"
	"collabhub/internal/permission"
	"collabhub/pkg/response"
)

type FileService struct {
	db         *gorm.DB
	permission *permission.PermissionService
}

func NewFileService(db *gorm.DB) *FileService {
	return &FileService{
		db:         db,
		permission: permission.NewPermissionService(db),
	}
}

// List 返回工作区全部文件，按上传时间倒序，要求调用者是已接受成员
func (s *FileService) List(workspaceID, userID uint) ([]FileItem, *response.BusinessError) {
	ok, err := s.permission.IsAcceptedMember(workspaceID, userID)
	if err != nil {
		return nil, queryFailed(err)
	}
	if !ok {
		return nil, accessDenied()
	}

	var files []fileModel.File
	if err := s.db.Where("workspace_id = ?", workspaceID).
		Order("created_at DESC").
		Find(&files).Error; err != nil {
		return nil, queryFailed(err)
	}

	items := make([]FileItem, 0, len(files))
	for _, f := range files {
		var uploader userModel.User
		if err := s.db.First(&uploader, f.UploadedBy).Error; err != nil {
			continue
		}
		items = append(items, FileItem{
			ID:               f.ID,
			Filename:         f.Filename,
			OriginalFilename: f.OriginalFilename,
			FileSize:         f.FileSize,
			FileType:         f.FileType,
			Description:      f.Description,
			UploadedBy:       uploader.ToSummary(),
			CreatedAt:        f.CreatedAt,
		})
	}

	return items, nil
}

// Upload 保存上传文件到 uploads/workspace_<id>/ 并落库
// 存储文件名用 uuid 前缀避免冲突，超出大小上限直接拒绝
func (s *FileService) Upload(workspaceID, userID uint, fh *multipart.FileHeader, description string, save func(dst string) error) (UploadedFile, *response.BusinessError) {
	ok, err := s.permission.IsAcceptedMember(workspaceID, userID)
	if err != nil {
		return UploadedFile{}, queryFailed(err)
	}
	if !ok {
		return UploadedFile{}, accessDenied()
	}

	if maxSize := config.Conf.Upload.MaxSize; maxSize > 0 && fh.Size > maxSize {
		return UploadedFile{}, response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("文件超出大小限制"),
		)
	}

	uploadDir := config.Conf.Upload.Dir
	if uploadDir == "" {
		uploadDir = "uploads"
	}
	dir := filepath.Join(uploadDir, fmt.Sprintf("workspace_%d", workspaceID))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return UploadedFile{}, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("创建上传目录失败"),
		)
	}

	originalName := filepath.Base(fh.Filename)
	storedName := fmt.Sprintf("%s_%s", uuid.NewString(), originalName)
	dst := filepath.Join(dir, storedName)

	if err := save(dst); err != nil {
		return UploadedFile{}, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("保存文件失败"),
		)
	}

	fileType := fh.Header.Get("Content-Type")
	if fileType == "" {
		fileType = "application/octet-stream"
	}

	record := fileModel.File{
		WorkspaceID:      workspaceID,
		UploadedBy:       userID,
		Filename:         storedName,
		OriginalFilename: originalName,
		FilePath:         dst,
		FileSize:         fh.Size,
		FileType:         fileType,
		Description:      description,
	}
	if err := s.db.Create(&record).Error; err != nil {
		// 落库失败时清掉已写入的文件
		os.Remove(dst)
		return UploadedFile{}, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("保存文件记录失败"),
		)
	}

	return UploadedFile{
		ID:               record.ID,
		Filename:         record.Filename,
		OriginalFilename: record.OriginalFilename,
		FileSize:         record.FileSize,
		FileType:         record.FileType,
	}, nil
}

// Download 校验访问权限并返回存储路径
// 存在任意状态的成员关系即可下载，口径比工作区读接口宽松
func (s *FileService) Download(fileID, userID uint) (DownloadInfo, *response.BusinessError) {
	var record fileModel.File
	if err := s.db.First(&record, fileID).Error; err != nil {
		return DownloadInfo{}, response.NewBusinessError(
			response.WithErrorCode(response.NotFound),
			response.WithErrorMessage("文件不存在"),
		)
	}

	ok, err := s.permission.IsAnyMember(record.WorkspaceID, userID)
	if err != nil {
		return DownloadInfo{}, queryFailed(err)
	}
	if !ok {
		return DownloadInfo{}, accessDenied()
	}

	if _, err := os.Stat(record.FilePath); err != nil {
		return DownloadInfo{}, response.NewBusinessError(
			response.WithErrorCode(response.NotFound),
			response.WithErrorMessage("文件已不在服务器上"),
		)
	}

	return DownloadInfo{
		FilePath:         record.FilePath,
		OriginalFilename: record.OriginalFilename,
	}, nil
}

func accessDenied() *response.BusinessError {
	return response.NewBusinessError(
		response.WithErrorCode(response.Forbidden),
		response.WithErrorMessage("无权访问该工作区"),
	)
}

func queryFailed(err error) *response.BusinessError {
	return response.NewBusinessError(
		response.WithErrorCode(response.Fail),
		response.WithErrorMessage("查询失败"),
		response.WithError(err),
	)
}
