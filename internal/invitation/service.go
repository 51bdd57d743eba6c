package invitation

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	userModel "collabhub/internal/model/user"
	wsModel "collabhub/internal/model/workspace"
	"collabhub/internal/permission"
	"collabhub/pkg/response"
)

// 邀请动作
const (
	ActionAccept  = "accept"
	ActionDecline = "decline"
)

type InvitationService struct {
	db         *gorm.DB
	permission *permission.PermissionService
}

func NewInvitationService(db *gorm.DB) *InvitationService {
	return &InvitationService{
		db:         db,
		permission: permission.NewPermissionService(db),
	}
}

// InviteStudents 批量邀请学生进入工作区
// 调用者需是 external/admin 全局角色，且持有工作区 owner/admin 角色；
// 不存在、非学生、已有成员关系的目标被静默跳过
func (s *InvitationService) InviteStudents(workspaceID, userID uint, userRole string, req InviteStudentsRequest) (InviteStudentsResponse, *response.BusinessError) {
	if !permission.IsAgencyOrAdmin(userRole) {
		return InviteStudentsResponse{}, response.NewBusinessError(
			response.WithErrorCode(response.Forbidden),
			response.WithErrorMessage("只有外部机构或管理员可以邀请学生"),
		)
	}

	if len(req.StudentIDs) == 0 {
		return InviteStudentsResponse{}, response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("未选择学生"),
		)
	}

	// 工作区必须存在
	var ws wsModel.Workspace
	if err := s.db.First(&ws, workspaceID).Error; err != nil {
		return InviteStudentsResponse{}, response.NewBusinessError(
			response.WithErrorCode(response.NotFound),
			response.WithErrorMessage("工作区不存在"),
		)
	}

	ok, err := s.permission.IsWorkspaceManager(workspaceID, userID)
	if err != nil {
		return InviteStudentsResponse{}, queryFailed(err)
	}
	if !ok {
		return InviteStudentsResponse{}, response.NewBusinessError(
			response.WithErrorCode(response.Forbidden),
			response.WithErrorMessage("无权管理该工作区"),
		)
	}

	invited := make([]InvitedStudent, 0, len(req.StudentIDs))
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		for _, studentID := range req.StudentIDs {
			// 目标必须是存在的学生
			var student userModel.User
			if err := tx.First(&student, studentID).Error; err != nil {
				continue
			}
			if student.Role != userModel.RoleStudent {
				continue
			}

			// 已有成员关系（任意状态）则跳过，唯一约束不允许重复邀请
			var count int64
			if err := tx.Model(&wsModel.Membership{}).
				Where("user_id = ? AND workspace_id = ?", studentID, workspaceID).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				continue
			}

			m := wsModel.Membership{
				UserID:      studentID,
				WorkspaceID: workspaceID,
				Role:        wsModel.RoleMember,
				Status:      wsModel.StatusInvited,
				InvitedBy:   &userID,
			}
			if err := tx.Create(&m).Error; err != nil {
				return err
			}
			invited = append(invited, InvitedStudent{
				ID:    student.ID,
				Name:  student.FullName(),
				Email: student.Email,
			})
		}
		return nil
	})

	if txErr != nil {
		return InviteStudentsResponse{}, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("邀请学生失败"),
			response.WithError(txErr),
		)
	}

	return InviteStudentsResponse{
		Message:         fmt.Sprintf("Invited %d students", len(invited)),
		InvitedCount:    len(invited),
		InvitedStudents: invited,
	}, nil
}

// ListWorkspaceInvitations 工作区内所有待处理邀请，要求调用者是已接受成员
func (s *InvitationService) ListWorkspaceInvitations(workspaceID, userID uint) ([]WorkspaceInvitationItem, *response.BusinessError) {
	ok, err := s.permission.IsAcceptedMember(workspaceID, userID)
	if err != nil {
		return nil, queryFailed(err)
	}
	if !ok {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Forbidden),
			response.WithErrorMessage("无权访问该工作区"),
		)
	}

	var invitations []wsModel.Membership
	if err := s.db.Where("workspace_id = ? AND status = ?", workspaceID, wsModel.StatusInvited).
		Find(&invitations).Error; err != nil {
		return nil, queryFailed(err)
	}

	items := make([]WorkspaceInvitationItem, 0, len(invitations))
	for _, inv := range invitations {
		var student userModel.User
		if err := s.db.First(&student, inv.UserID).Error; err != nil {
			continue
		}
		item := WorkspaceInvitationItem{
			ID: inv.ID,
			Student: PersonRef{
				ID:    student.ID,
				Name:  student.FullName(),
				Email: student.Email,
			},
			InvitedAt: inv.InvitedAt,
		}
		if inv.InvitedBy != nil {
			var inviter userModel.User
			if err := s.db.First(&inviter, *inv.InvitedBy).Error; err == nil {
				item.InvitedBy = PersonRef{ID: inviter.ID, Name: inviter.FullName()}
			}
		}
		items = append(items, item)
	}

	return items, nil
}

// ListMyInvitations 当前用户收到的全部待处理邀请
func (s *InvitationService) ListMyInvitations(userID uint) ([]MyInvitationItem, *response.BusinessError) {
	var invitations []wsModel.Membership
	if err := s.db.Where("user_id = ? AND status = ?", userID, wsModel.StatusInvited).
		Find(&invitations).Error; err != nil {
		return nil, queryFailed(err)
	}

	items := make([]MyInvitationItem, 0, len(invitations))
	for _, inv := range invitations {
		var ws wsModel.Workspace
		if err := s.db.First(&ws, inv.WorkspaceID).Error; err != nil {
			continue
		}
		item := MyInvitationItem{
			ID: inv.ID,
			Workspace: WorkspaceRef{
				ID:          ws.ID,
				Name:        ws.Name,
				Description: ws.Description,
			},
			InvitedAt: inv.InvitedAt,
		}
		if inv.InvitedBy != nil {
			var inviter userModel.User
			if err := s.db.First(&inviter, *inv.InvitedBy).Error; err == nil {
				item.InvitedBy = PersonRef{ID: inviter.ID, Name: inviter.FullName()}
			}
		}
		items = append(items, item)
	}

	return items, nil
}

// Respond 响应邀请：invited → accepted/declined，单向且只允许一次
// 只有被邀请人本人可以响应，重复响应返回 already responded
func (s *InvitationService) Respond(invitationID, userID uint, action string) (RespondResponse, *response.BusinessError) {
	if action != ActionAccept && action != ActionDecline {
		return RespondResponse{}, response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("无效的操作"),
		)
	}

	var result RespondResponse
	err := s.db.Transaction(func(tx *gorm.DB) error {
		// 1. 读取邀请，归属校验失败与不存在不作区分
		var inv wsModel.Membership
		if err := tx.First(&inv, invitationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFoundInvitation()
			}
			return err
		}
		if inv.UserID != userID {
			return notFoundInvitation()
		}

		// 2. 单向状态机：accepted/declined 为终态
		if inv.Status != wsModel.StatusInvited {
			return alreadyResponded()
		}

		// 3. 执行转移，写入条件带上 invited 状态
		// 并发响应时只有一方能命中，另一方按已响应处理
		updates := map[string]any{}
		if action == ActionAccept {
			now := time.Now()
			updates["status"] = wsModel.StatusAccepted
			updates["joined_at"] = &now
		} else {
			updates["status"] = wsModel.StatusDeclined
		}
		res := tx.Model(&inv).
			Where("status = ?", wsModel.StatusInvited).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return alreadyResponded()
		}

		result = RespondResponse{
			Status:      updates["status"].(string),
			WorkspaceID: inv.WorkspaceID,
		}
		return nil
	})

	if err != nil {
		if be, ok := err.(*response.BusinessError); ok {
			return RespondResponse{}, be
		}
		return RespondResponse{}, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("响应邀请失败"),
			response.WithError(err),
		)
	}

	return result, nil
}

func alreadyResponded() *response.BusinessError {
	return response.NewBusinessError(
		response.WithErrorCode(response.InvalidParameter),
		response.WithErrorMessage("邀请已被响应"),
	)
}

func notFoundInvitation() *response.BusinessError {
	return response.NewBusinessError(
		response.WithErrorCode(response.NotFound),
		response.WithErrorMessage("邀请不存在"),
	)
}

func queryFailed(err error) *response.BusinessError {
	return response.NewBusinessError(
		response.WithErrorCode(response.Fail),
		response.WithErrorMessage("查询失败"),
		response.WithError(err),
	)
}
