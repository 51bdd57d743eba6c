package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/coder/websocket"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"collabhub/internal/middleware"
)

type ChatHandler struct {
	hub     *Hub
	service *ChatService
}

func NewChatHandler(db *gorm.DB) *ChatHandler {
	return &ChatHandler{
		hub:     NewHub(),
		service: NewChatService(db),
	}
}

// Handle 升级连接并进入事件循环，身份取自认证中间件
func (h *ChatHandler) Handle(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	conn, err := websocket.Accept(c.Writer, c.Request, &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		log.Printf("websocket 升级失败: %v", err)
		return
	}

	sess := NewSession(conn, userID)
	defer func() {
		h.hub.LeaveAll(sess)
		sess.Close(websocket.StatusNormalClosure, "bye")
	}()

	ctx := c.Request.Context()
	go sess.WritePump(ctx)

	h.readLoop(ctx, sess)
}

// readLoop 逐帧读取并分发客户端事件
func (h *ChatHandler) readLoop(ctx context.Context, sess *Session) {
	for {
		_, data, err := sess.conn.Read(ctx)
		if err != nil {
			return
		}

		var frame InboundFrame
		if err := json.Unmarshal(data, &frame); err != nil {
			h.sendError(sess, "Invalid frame")
			continue
		}

		switch frame.Event {
		case EventJoinWorkspace:
			h.onJoin(sess, frame)
		case EventLeaveWorkspace:
			h.onLeave(sess, frame)
		case EventSendMessage:
			h.onSendMessage(sess, frame)
		default:
			h.sendError(sess, "Unknown event")
		}
	}
}

// onJoin 加入房间，需与工作区存在成员关系
func (h *ChatHandler) onJoin(sess *Session, frame InboundFrame) {
	if frame.WorkspaceID == 0 {
		h.sendError(sess, "Missing workspace_id")
		return
	}

	ok, err := h.service.CanAccess(frame.WorkspaceID, sess.UserID)
	if err != nil || !ok {
		h.sendError(sess, "Access denied")
		return
	}

	h.hub.Join(frame.WorkspaceID, sess)
	h.sendStatus(sess, fmt.Sprintf("Joined workspace %d", frame.WorkspaceID))
}

// onLeave 离开房间，无成员关系检查
func (h *ChatHandler) onLeave(sess *Session, frame InboundFrame) {
	if frame.WorkspaceID == 0 {
		h.sendError(sess, "Missing workspace_id")
		return
	}

	h.hub.Leave(frame.WorkspaceID, sess)
	h.sendStatus(sess, fmt.Sprintf("Left workspace %d", frame.WorkspaceID))
}

// onSendMessage 落库后向房间广播，任何失败只回给发送者
func (h *ChatHandler) onSendMessage(sess *Session, frame InboundFrame) {
	if frame.WorkspaceID == 0 || frame.Content == "" {
		h.sendError(sess, "Missing required fields")
		return
	}

	ok, err := h.service.CanAccess(frame.WorkspaceID, sess.UserID)
	if err != nil || !ok {
		h.sendError(sess, "Access denied")
		return
	}

	payload, err := h.service.SaveMessage(frame.WorkspaceID, sess.UserID, frame.Content)
	if err != nil {
		h.sendError(sess, "Failed to save message")
		return
	}

	data, err := json.Marshal(OutboundFrame{Event: EventNewMessage, Data: payload})
	if err != nil {
		h.sendError(sess, "Failed to encode message")
		return
	}
	h.hub.Broadcast(frame.WorkspaceID, data)
}

func (h *ChatHandler) sendStatus(sess *Session, msg string) {
	h.sendFrame(sess, OutboundFrame{Event: EventStatus, Data: StatusData{Msg: msg}})
}

func (h *ChatHandler) sendError(sess *Session, msg string) {
	h.sendFrame(sess, OutboundFrame{Event: EventError, Data: StatusData{Msg: msg}})
}

func (h *ChatHandler) sendFrame(sess *Session, frame OutboundFrame) {
	data, err := json.Marshal(frame)
	if err != nil {
		return
	}
	sess.enqueue(data)
}
