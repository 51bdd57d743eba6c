package workspace

import (
	"time"

	"gorm.io/gorm"

	userModel "collabhub/internal/model/user"
	wsModel "collabhub/internal/model/workspace"
	"collabhub/internal/permission"
	"collabhub/pkg/response"
)

type WorkspaceService struct {
	db         *gorm.DB
	permission *permission.PermissionService
}

func NewWorkspaceService(db *gorm.DB) *WorkspaceService {
	return &WorkspaceService{
		db:         db,
		permission: permission.NewPermissionService(db),
	}
}

// List 返回当前用户已接受成员关系的工作区
func (s *WorkspaceService) List(userID uint) ([]WorkspaceItem, *response.BusinessError) {
	var memberships []wsModel.Membership
	if err := s.db.Where("user_id = ? AND status = ?", userID, wsModel.StatusAccepted).
		Find(&memberships).Error; err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("查询成员关系失败"),
		)
	}

	items := make([]WorkspaceItem, 0, len(memberships))
	for _, m := range memberships {
		var ws wsModel.Workspace
		if err := s.db.First(&ws, m.WorkspaceID).Error; err != nil {
			continue
		}
		items = append(items, WorkspaceItem{
			ID:          ws.ID,
			Name:        ws.Name,
			Description: ws.Description,
			Role:        m.Role,
			Status:      m.Status,
			CreatedAt:   ws.CreatedAt,
		})
	}

	return items, nil
}

// Create 创建工作区，并在同一事务内为创建者写入 owner 成员关系
func (s *WorkspaceService) Create(userID uint, req CreateWorkspaceRequest) (CreatedWorkspace, *response.BusinessError) {
	var ws wsModel.Workspace

	err := s.db.Transaction(func(tx *gorm.DB) error {
		ws = wsModel.Workspace{
			Name:        req.Name,
			Description: req.Description,
			CreatedBy:   userID,
		}
		if err := tx.Create(&ws).Error; err != nil {
			return err
		}

		now := time.Now()
		membership := wsModel.Membership{
			UserID:      userID,
			WorkspaceID: ws.ID,
			Role:        wsModel.RoleOwner,
			Status:      wsModel.StatusAccepted,
			JoinedAt:    &now,
		}
		return tx.Create(&membership).Error
	})

	if err != nil {
		return CreatedWorkspace{}, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("创建工作区失败"),
			response.WithError(err),
		)
	}

	return CreatedWorkspace{
		ID:          ws.ID,
		Name:        ws.Name,
		Description: ws.Description,
		Role:        wsModel.RoleOwner,
	}, nil
}

// ListMembers 返回工作区全部成员（含受邀未接受的），要求调用者是已接受成员
func (s *WorkspaceService) ListMembers(workspaceID, userID uint) ([]MemberItem, *response.BusinessError) {
	ok, err := s.permission.IsAcceptedMember(workspaceID, userID)
	if err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("查询成员关系失败"),
		)
	}
	if !ok {
		return nil, accessDenied()
	}

	var memberships []wsModel.Membership
	if err := s.db.Where("workspace_id = ?", workspaceID).Find(&memberships).Error; err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("查询成员列表失败"),
		)
	}

	items := make([]MemberItem, 0, len(memberships))
	for _, m := range memberships {
		var u userModel.User
		if err := s.db.First(&u, m.UserID).Error; err != nil {
			continue
		}
		items = append(items, MemberItem{
			ID:        u.ID,
			Username:  u.Username,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Email:     u.Email,
			Role:      m.Role,
			Status:    m.Status,
			JoinedAt:  m.JoinedAt,
		})
	}

	return items, nil
}

// AddMember 按邮箱添加成员，要求调用者持有 owner/admin 角色
func (s *WorkspaceService) AddMember(workspaceID, userID uint, req AddMemberRequest) (AddedMember, *response.BusinessError) {
	ok, err := s.permission.IsWorkspaceManager(workspaceID, userID)
	if err != nil {
		return AddedMember{}, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("查询成员关系失败"),
		)
	}
	if !ok {
		return AddedMember{}, response.NewBusinessError(
			response.WithErrorCode(response.Forbidden),
			response.WithErrorMessage("权限不足"),
		)
	}

	role := req.Role
	if role == "" {
		role = wsModel.RoleMember
	}
	if !wsModel.ValidMemberRole(role) {
		return AddedMember{}, response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("无效的工作区角色"),
		)
	}

	// 按邮箱查找用户
	var member userModel.User
	if err := s.db.Where("email = ?", req.Email).First(&member).Error; err != nil {
		return AddedMember{}, response.NewBusinessError(
			response.WithErrorCode(response.NotFound),
			response.WithErrorMessage("用户不存在"),
		)
	}

	// 唯一约束：同一 (user, workspace) 只允许一行
	existing, err := s.permission.GetMembership(workspaceID, member.ID)
	if err != nil {
		return AddedMember{}, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("查询成员关系失败"),
		)
	}
	if existing != nil {
		return AddedMember{}, response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("该用户已在工作区中"),
		)
	}

	membership := wsModel.Membership{
		UserID:      member.ID,
		WorkspaceID: workspaceID,
		Role:        role,
	}
	if err := s.db.Create(&membership).Error; err != nil {
		return AddedMember{}, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("添加成员失败"),
		)
	}

	return AddedMember{
		ID:        member.ID,
		Username:  member.Username,
		FirstName: member.FirstName,
		LastName:  member.LastName,
		Role:      membership.Role,
	}, nil
}

func accessDenied() *response.BusinessError {
	return response.NewBusinessError(
		response.WithErrorCode(response.Forbidden),
		response.WithErrorMessage("无权访问该工作区"),
	)
}
