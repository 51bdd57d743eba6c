// Package file 文件元数据模型（文件内容存储在文件系统）
package file

import "time"

// File 工作区内上传的文件记录
type File struct {
	ID          uint   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	WorkspaceID uint   `gorm:"column:workspace_id;not null;index" json:"workspace_id"`
	UploadedBy  uint   `gorm:"column:uploaded_by;not null;index" json:"uploaded_by"`
	// 系统生成的唯一存储文件名（uuid 前缀）
	Filename         string    `gorm:"column:filename;type:varchar(255);not null" json:"filename"`
	OriginalFilename string    `gorm:"column:original_filename;type:varchar(255);not null" json:"original_filename"`
	FilePath         string    `gorm:"column:file_path;type:varchar(500);not null" json:"file_path"`
	FileSize         int64     `gorm:"column:file_size;not null" json:"file_size"`
	FileType         string    `gorm:"column:file_type;type:varchar(100)" json:"file_type"`
	Description      string    `gorm:"column:description;type:text" json:"description"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (File) TableName() string {
	return "files"
}
