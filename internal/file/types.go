package file

import (
	"time"

	userModel "collabhub/internal/model/user"
)

// FileItem 文件列表项
type FileItem struct {
	ID               uint              `json:"id"`
	Filename         string            `json:"filename"`
	OriginalFilename string            `json:"original_filename"`
	FileSize         int64             `json:"file_size"`
	FileType         string            `json:"file_type"`
	Description      string            `json:"description"`
	UploadedBy       userModel.Summary `json:"uploaded_by"`
	CreatedAt        time.Time         `json:"created_at"`
}

// UploadedFile 上传成功后的返回体
type UploadedFile struct {
	ID               uint   `json:"id"`
	Filename         string `json:"filename"`
	OriginalFilename string `json:"original_filename"`
	FileSize         int64  `json:"file_size"`
	FileType         string `json:"file_type"`
}

// DownloadInfo 下载所需的存储路径和原始文件名
type DownloadInfo struct {
	FilePath         string
	OriginalFilename string
}
