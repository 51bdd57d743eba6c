// Package permission 统一权限检查服务
// 提供工作区成员关系的权限检查功能，区分「已接受成员」和「任意成员关系」两种口径：
// REST 读写接口使用已接受口径，聊天和文件下载使用任意关系口径
package permission

import (
	"errors"

	"gorm.io/gorm"

	"collabhub/internal/model/user"
	"collabhub/internal/model/workspace"
)

// PermissionService 统一权限检查服务
type PermissionService struct {
	db *gorm.DB
}

// NewPermissionService 创建权限服务实例
func NewPermissionService(db *gorm.DB) *PermissionService {
	return &PermissionService{
		db: db,
	}
}

// IsAgencyOrAdmin 检查全局角色是否是外部机构或管理员
// 学生档案查看、项目创建/审核、连接请求创建使用此口径
func IsAgencyOrAdmin(userRole string) bool {
	return userRole == user.RoleExternal || userRole == user.RoleAdmin
}

// IsManagerRole 工作区内的管理角色（owner/admin）
func IsManagerRole(memberRole string) bool {
	return memberRole == workspace.RoleOwner || memberRole == workspace.RoleAdmin
}

// GetMembership 查询用户在工作区的成员关系，不存在时返回 nil
func (s *PermissionService) GetMembership(workspaceID, userID uint) (*workspace.Membership, error) {
	var m workspace.Membership
	err := s.db.Where("workspace_id = ? AND user_id = ?", workspaceID, userID).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

// IsAcceptedMember 检查用户是否是工作区的已接受成员
// 受邀未接受或已拒绝的用户不算成员
func (s *PermissionService) IsAcceptedMember(workspaceID, userID uint) (bool, error) {
	var count int64
	err := s.db.Model(&workspace.Membership{}).
		Where("workspace_id = ? AND user_id = ? AND status = ?",
			workspaceID, userID, workspace.StatusAccepted).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// IsAnyMember 检查用户是否与工作区存在任意状态的成员关系
func (s *PermissionService) IsAnyMember(workspaceID, userID uint) (bool, error) {
	var count int64
	err := s.db.Model(&workspace.Membership{}).
		Where("workspace_id = ? AND user_id = ?", workspaceID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// IsWorkspaceManager 检查用户是否持有工作区的 owner/admin 角色
// 邀请学生、添加成员、在工作区下创建项目使用此口径，不要求成员关系已接受
func (s *PermissionService) IsWorkspaceManager(workspaceID, userID uint) (bool, error) {
	m, err := s.GetMembership(workspaceID, userID)
	if err != nil {
		return false, err
	}
	if m == nil {
		return false, nil
	}
	return IsManagerRole(m.Role), nil
}

// CanDeleteTask 检查用户是否可以删除任务
// 任务创建者或持有工作区 owner/admin 角色的成员可以删除
func (s *PermissionService) CanDeleteTask(workspaceID, taskCreatorID, userID uint) (bool, error) {
	if userID == taskCreatorID {
		return true, nil
	}
	return s.IsWorkspaceManager(workspaceID, userID)
}
