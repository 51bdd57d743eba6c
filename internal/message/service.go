package message

import (
	"gorm.io/gorm"

	msgModel "collabhub/internal/model/message"
	userModel "collabhub/internal/model/user"
	"collabhub/internal/permission"
	"collabhub/pkg/response"
)

// 每次拉取的历史消息条数上限
const historyLimit = 50

type MessageService struct {
	db         *gorm.DB
	permission *permission.PermissionService
}

func NewMessageService(db *gorm.DB) *MessageService {
	return &MessageService{
		db:         db,
		permission: permission.NewPermissionService(db),
	}
}

// List 返回工作区最近 50 条消息，按时间正序
// 要求调用者是已接受成员
func (s *MessageService) List(workspaceID, userID uint) ([]MessageItem, *response.BusinessError) {
	ok, err := s.permission.IsAcceptedMember(workspaceID, userID)
	if err != nil {
		return nil, queryFailed(err)
	}
	if !ok {
		return nil, accessDenied()
	}

	// 取最新 50 条再反转，保证旧消息在前
	var messages []msgModel.Message
	if err := s.db.Where("workspace_id = ?", workspaceID).
		Order("created_at DESC, id DESC").
		Limit(historyLimit).
		Find(&messages).Error; err != nil {
		return nil, queryFailed(err)
	}

	items := make([]MessageItem, 0, len(messages))
	for i := len(messages) - 1; i >= 0; i-- {
		m := messages[i]
		var u userModel.User
		if err := s.db.First(&u, m.UserID).Error; err != nil {
			continue
		}
		items = append(items, MessageItem{
			ID:          m.ID,
			Content:     m.Content,
			MessageType: m.MessageType,
			FilePath:    m.FilePath,
			User:        u.ToSummary(),
			CreatedAt:   m.CreatedAt,
		})
	}

	return items, nil
}

// Post 通过 REST 发送文本消息，与聊天通道共用同一张表
func (s *MessageService) Post(workspaceID, userID uint, req PostMessageRequest) (MessageItem, *response.BusinessError) {
	ok, err := s.permission.IsAcceptedMember(workspaceID, userID)
	if err != nil {
		return MessageItem{}, queryFailed(err)
	}
	if !ok {
		return MessageItem{}, accessDenied()
	}

	m := msgModel.Message{
		WorkspaceID: workspaceID,
		UserID:      userID,
		Content:     req.Content,
		MessageType: msgModel.TypeText,
	}
	if err := s.db.Create(&m).Error; err != nil {
		return MessageItem{}, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("发送消息失败"),
		)
	}

	var u userModel.User
	if err := s.db.First(&u, userID).Error; err != nil {
		return MessageItem{}, queryFailed(err)
	}

	return MessageItem{
		ID:          m.ID,
		Content:     m.Content,
		MessageType: m.MessageType,
		FilePath:    m.FilePath,
		User:        u.ToSummary(),
		CreatedAt:   m.CreatedAt,
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
