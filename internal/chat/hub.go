// Package chat 工作区实时聊天
// 每个工作区对应一个房间，消息按房间扇出给所有订阅连接
package chat

import (
	"sync"
)

// Hub 房间注册表
// 所有房间状态由互斥锁保护，广播按订阅顺序投递
type Hub struct {
	mu    sync.Mutex
	rooms map[uint][]*Session
}

func NewHub() *Hub {
	return &Hub{
		rooms: make(map[uint][]*Session),
	}
}

// Join 将会话加入房间，重复加入不产生第二个订阅
func (h *Hub) Join(workspaceID uint, sess *Session) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, s := range h.rooms[workspaceID] {
		if s == sess {
			return
		}
	}
	h.rooms[workspaceID] = append(h.rooms[workspaceID], sess)
}

// Leave 将会话移出房间
func (h *Hub) Leave(workspaceID uint, sess *Session) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.removeLocked(workspaceID, sess)
}

// LeaveAll 连接关闭时清理该会话的全部订阅
func (h *Hub) LeaveAll(sess *Session) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for workspaceID := range h.rooms {
		h.removeLocked(workspaceID, sess)
	}
}

func (h *Hub) removeLocked(workspaceID uint, sess *Session) {
	sessions := h.rooms[workspaceID]
	for i, s := range sessions {
		if s == sess {
			h.rooms[workspaceID] = append(sessions[:i], sessions[i+1:]...)
			break
		}
	}
	if len(h.rooms[workspaceID]) == 0 {
		delete(h.rooms, workspaceID)
	}
}

// Broadcast 向房间内所有订阅者投递事件，包括发送者本人
// 持锁期间按加入顺序入队，保证同一房间内的投递顺序一致
func (h *Hub) Broadcast(workspaceID uint, frame []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, s := range h.rooms[workspaceID] {
		s.enqueue(frame)
	}
}

// RoomSize 房间当前订阅数，测试用
func (h *Hub) RoomSize(workspaceID uint) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.rooms[workspaceID])
}
