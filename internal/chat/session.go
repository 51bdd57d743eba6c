package chat

import (
	"context"
	"sync"

	"github.com/coder/websocket"
)

// 单个连接的发送队列长度，写满视为连接失活
const sendQueueSize = 64

// Session 一条 websocket 连接
// 出站帧统一经过发送队列，由单个写协程顺序写出
type Session struct {
	UserID uint

	conn *websocket.Conn
	send chan []byte

	closeOnce sync.Once
	done      chan struct{}
}

func NewSession(conn *websocket.Conn, userID uint) *Session {
	return &Session{
		UserID: userID,
		conn:   conn,
		send:   make(chan []byte, sendQueueSize),
		done:   make(chan struct{}),
	}
}

// enqueue 入队一帧，队列写满时关闭会话避免广播被慢连接拖住
func (s *Session) enqueue(frame []byte) {
	select {
	case s.send <- frame:
	case <-s.done:
	default:
		s.Close(websocket.StatusPolicyViolation, "send queue overflow")
	}
}

// WritePump 顺序写出发送队列中的帧，连接关闭时返回
func (s *Session) WritePump(ctx context.Context) {
	for {
		select {
		case frame := <-s.send:
			if err := s.conn.Write(ctx, websocket.MessageText, frame); err != nil {
				s.Close(websocket.StatusInternalError, "write failed")
				return
			}
		case <-s.done:
			return
		case <-ctx.Done():
			return
		}
	}
}

// Close 关闭连接，幂等
func (s *Session) Close(code websocket.StatusCode, reason string) {
	s.closeOnce.Do(func() {
		close(s.done)
		s.conn.Close(code, reason)
	})
}

// Done 会话关闭信号
func (s *Session) Done() <-chan struct{} {
	return s.done
}
