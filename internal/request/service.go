package request

import (
	"errors"
	"time"

	"gorm.io/gorm"

	jrModel "collabhub/internal/model/joinrequest"
	userModel "collabhub/internal/model/user"
	wsModel "collabhub/internal/model/workspace"
	"collabhub/internal/permission"
	"collabhub/pkg/response"
)

// 响应动作
const (
	ActionAccept = "accept"
	ActionReject = "reject"
)

type RequestService struct {
	db *gorm.DB
}

func NewRequestService(db *gorm.DB) *RequestService {
	return &RequestService{db: db}
}

// Create 发起连接请求，仅 external/admin 可用
func (s *RequestService) Create(userID uint, userRole string, req CreateRequest) (uint, *response.BusinessError) {
	if !permission.IsAgencyOrAdmin(userRole) {
		return 0, response.NewBusinessError(
			response.WithErrorCode(response.Forbidden),
			response.WithErrorMessage("只有外部机构或管理员可以发送请求"),
		)
	}

	jr := jrModel.JoinRequest{
		FromAgency:  userID,
		ToStudent:   req.ToStudentID,
		ProjectID:   req.ProjectID,
		WorkspaceID: req.WorkspaceID,
		Message:     req.Message,
	}
	if err := s.db.Create(&jr).Error; err != nil {
		return 0, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("创建请求失败"),
		)
	}

	return jr.ID, nil
}

// List 按角色返回可见的请求：学生看发给自己的，机构/管理员看全部
func (s *RequestService) List(userID uint, userRole string) ([]RequestItem, *response.BusinessError) {
	var requests []jrModel.JoinRequest

	var err error
	switch {
	case userRole == userModel.RoleStudent:
		err = s.db.Where("to_student_id = ?", userID).Find(&requests).Error
	case permission.IsAgencyOrAdmin(userRole):
		err = s.db.Order("created_at DESC").Find(&requests).Error
	}
	if err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("查询请求失败"),
		)
	}

	items := make([]RequestItem, 0, len(requests))
	for _, r := range requests {
		items = append(items, RequestItem{
			ID:          r.ID,
			FromAgency:  r.FromAgency,
			ToStudent:   r.ToStudent,
			ProjectID:   r.ProjectID,
			WorkspaceID: r.WorkspaceID,
			Message:     r.Message,
			Status:      r.Status,
			CreatedAt:   r.CreatedAt,
		})
	}

	return items, nil
}

// Respond 学生响应请求，pending → accepted/rejected 单向且只允许一次
// 接受且请求带工作区引用时，为学生补建已接受的成员关系；
// 已有成员关系（任意状态）则保持不动
func (s *RequestService) Respond(requestID, userID uint, action string) (string, *response.BusinessError) {
	if action != ActionAccept && action != ActionReject {
		return "", response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("无效的操作"),
		)
	}

	var status string
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var jr jrModel.JoinRequest
		if err := tx.First(&jr, requestID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return response.NewBusinessError(
					response.WithErrorCode(response.NotFound),
					response.WithErrorMessage("请求不存在"),
				)
			}
			return err
		}

		if jr.ToStudent != userID {
			return response.NewBusinessError(
				response.WithErrorCode(response.Forbidden),
				response.WithErrorMessage("权限不足"),
			)
		}

		// pending 为唯一可转移状态，写入条件带上状态检查
		// 并发响应时只有一方能命中
		if jr.Status != jrModel.StatusPending {
			return alreadyResponded()
		}
		if action == ActionAccept {
			status = jrModel.StatusAccepted
		} else {
			status = jrModel.StatusRejected
		}
		res := tx.Model(&jr).
			Where("status = ?", jrModel.StatusPending).
			Update("status", status)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return alreadyResponded()
		}

		// 接受且带工作区引用时补建成员关系
		if action == ActionAccept && jr.WorkspaceID != nil {
			var count int64
			if err := tx.Model(&wsModel.Membership{}).
				Where("user_id = ? AND workspace_id = ?", userID, *jr.WorkspaceID).
				Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				now := time.Now()
				m := wsModel.Membership{
					UserID:      userID,
					WorkspaceID: *jr.WorkspaceID,
					Role:        wsModel.RoleMember,
					Status:      wsModel.StatusAccepted,
					InvitedBy:   &jr.FromAgency,
					JoinedAt:    &now,
				}
				if err := tx.Create(&m).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})

	if err != nil {
		if be, ok := err.(*response.BusinessError); ok {
			return "", be
		}
		return "", response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("响应请求失败"),
			response.WithError(err),
		)
	}

	return status, nil
}

func alreadyResponded() *response.BusinessError {
	return response.NewBusinessError(
		response.WithErrorCode(response.InvalidParameter),
		response.WithErrorMessage("请求已被响应"),
	)
}
