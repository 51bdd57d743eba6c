package workspace

import "time"

// CreateWorkspaceRequest 创建工作区请求
type CreateWorkspaceRequest struct {
	Name        string `json:"name" binding:"required"` // 工作区名称
	Description string `json:"description"`             // 描述
}

// WorkspaceItem 工作区列表项，附带当前用户的成员角色
type WorkspaceItem struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Role        string    `json:"role"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreatedWorkspace 创建成功后的返回体
type CreatedWorkspace struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Role        string `json:"role"`
}

// AddMemberRequest 添加成员请求
type AddMemberRequest struct {
	Email string `json:"email" binding:"required"` // 被添加用户的邮箱
	Role  string `json:"role"`                     // 工作区角色，默认 member
}

// MemberItem 成员列表项
type MemberItem struct {
	ID        uint       `json:"id"`
	Username  string     `json:"username"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	Status    string     `json:"status"`
	JoinedAt  *time.Time `json:"joined_at"`
}

// AddedMember 添加成员成功后的返回体
type AddedMember struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
}
