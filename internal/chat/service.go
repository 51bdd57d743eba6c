package chat

import (
	"fmt"

	"gorm.io/gorm"

	msgModel "collabhub/internal/model/message"
	userModel "collabhub/internal/model/user"
	"collabhub/internal/permission"
)

// ChatService 聊天准入与消息持久化
type ChatService struct {
	db         *gorm.DB
	permission *permission.PermissionService
}

func NewChatService(db *gorm.DB) *ChatService {
	return &ChatService{
		db:         db,
		permission: permission.NewPermissionService(db),
	}
}

// CanAccess 检查用户可否加入房间或发言
// 存在任意状态的成员关系即可，口径比 REST 读接口宽松
func (s *ChatService) CanAccess(workspaceID, userID uint) (bool, error) {
	return s.permission.IsAnyMember(workspaceID, userID)
}

// SaveMessage 落库文本消息并组装广播负载
// 落库失败时不产生任何广播
func (s *ChatService) SaveMessage(workspaceID, userID uint, content string) (NewMessageData, error) {
	m := msgModel.Message{
		WorkspaceID: workspaceID,
		UserID:      userID,
		Content:     content,
		MessageType: msgModel.TypeText,
	}
	if err := s.db.Create(&m).Error; err != nil {
		return NewMessageData{}, fmt.Errorf("保存消息失败: %w", err)
	}

	var u userModel.User
	if err := s.db.First(&u, userID).Error; err != nil {
		return NewMessageData{}, fmt.Errorf("查询用户失败: %w", err)
	}

	return NewMessageData{
		ID:        m.ID,
		Content:   m.Content,
		User:      u.ToSummary(),
		CreatedAt: m.CreatedAt,
	}, nil
}
