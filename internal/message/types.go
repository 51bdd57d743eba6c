package message

import (
	"time"

	userModel "collabhub/internal/model/user"
)

// PostMessageRequest 发送消息请求
type PostMessageRequest struct {
	Content string `json:"content" binding:"required"` // 消息内容
}

// MessageItem 消息列表项
type MessageItem struct {
	ID          uint              `json:"id"`
	Content     string            `json:"content"`
	MessageType string            `json:"message_type"`
	FilePath    *string           `json:"file_path"`
	User        userModel.Summary `json:"user"`
	CreatedAt   time.Time         `json:"created_at"`
}
