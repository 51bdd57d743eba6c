package workspace

import "time"

// 工作区内角色
const (
	RoleOwner  = "owner"
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// 成员状态
const (
	StatusInvited  = "invited"
	StatusAccepted = "accepted"
	StatusDeclined = "declined"
)

// ValidMemberRole 校验工作区角色取值
func ValidMemberRole(role string) bool {
	switch role {
	case RoleOwner, RoleAdmin, RoleMember:
		return true
	}
	return false
}

// Membership 用户与工作区的关系记录
// 唯一约束保证同一 (user, workspace) 只有一行，
// 并发邀请竞争时由数据库拒绝后写入方
type Membership struct {
	ID          uint       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID      uint       `gorm:"column:user_id;not null;uniqueIndex:uniq_membership" json:"user_id"`
	WorkspaceID uint       `gorm:"column:workspace_id;not null;uniqueIndex:uniq_membership" json:"workspace_id"`
	Role        string     `gorm:"column:role;type:varchar(20);not null;default:'member'" json:"role"`
	Status      string     `gorm:"column:status;type:varchar(20);not null;default:'invited'" json:"status"`
	InvitedBy   *uint      `gorm:"column:invited_by" json:"invited_by"`
	InvitedAt   time.Time  `gorm:"column:invited_at;autoCreateTime" json:"invited_at"`
	JoinedAt    *time.Time `gorm:"column:joined_at" json:"joined_at"`
}

func (Membership) TableName() string {
	return "memberships"
}

// IsAccepted 是否为已接受成员
func (m *Membership) IsAccepted() bool {
	return m.Status == StatusAccepted
}

// IsManager 是否持有 owner/admin 角色
func (m *Membership) IsManager() bool {
	return m.Role == RoleOwner || m.Role == RoleAdmin
}
