// Package message 工作区聊天消息模型
package message

import "time"

// 消息类型
const (
	TypeText   = "text"
	TypeFile   = "file"
	TypeSystem = "system"
)

// Message 聊天消息，创建后内容不再修改
type Message struct {
	ID          uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	WorkspaceID uint      `gorm:"column:workspace_id;not null;index" json:"workspace_id"`
	UserID      uint      `gorm:"column:user_id;not null;index" json:"user_id"`
	Content     string    `gorm:"column:content;type:text;not null" json:"content"`
	MessageType string    `gorm:"column:message_type;type:varchar(20);not null;default:'text'" json:"message_type"`
	FilePath    *string   `gorm:"column:file_path;type:varchar(255)" json:"file_path"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Message) TableName() string {
	return "messages"
}
