package chat

import (
	"time"

	userModel "collabhub/internal/model/user"
)

// 入站事件
const (
	EventJoinWorkspace  = "join_workspace"
	EventLeaveWorkspace = "leave_workspace"
	EventSendMessage    = "send_message"
)

// 出站事件
const (
	EventStatus     = "status"
	EventError      = "error"
	EventNewMessage = "new_message"
)

// InboundFrame 客户端事件帧
type InboundFrame struct {
	Event       string `json:"event"`
	WorkspaceID uint   `json:"workspace_id"`
	Content     string `json:"content"`
}

// OutboundFrame 服务端事件帧
type OutboundFrame struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// StatusData status/error 事件负载
type StatusData struct {
	Msg string `json:"msg"`
}

// NewMessageData new_message 事件负载
type NewMessageData struct {
	ID        uint              `json:"id"`
	Content   string            `json:"content"`
	User      userModel.Summary `json:"user"`
	CreatedAt time.Time         `json:"created_at"`
}
