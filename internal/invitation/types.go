package invitation

import "time"

// InviteStudentsRequest 批量邀请学生
type InviteStudentsRequest struct {
	StudentIDs []uint `json:"student_ids" binding:"required"` // 学生用户ID列表
}

// InvitedStudent 被成功邀请的学生
type InvitedStudent struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// InviteStudentsResponse 邀请结果，不符合条件的学生被静默跳过
type InviteStudentsResponse struct {
	Message         string           `json:"message"`
	InvitedCount    int              `json:"invited_count"`
	InvitedStudents []InvitedStudent `json:"invited_students"`
}

// PersonRef 邀请记录中的人员引用
type PersonRef struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// WorkspaceInvitationItem 工作区视角的待处理邀请
type WorkspaceInvitationItem struct {
	ID        uint      `json:"id"`
	Student   PersonRef `json:"student"`
	InvitedBy PersonRef `json:"invited_by"`
	InvitedAt time.Time `json:"invited_at"`
}

// WorkspaceRef 邀请所属工作区
type WorkspaceRef struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// MyInvitationItem 用户视角的待处理邀请
type MyInvitationItem struct {
	ID        uint         `json:"id"`
	Workspace WorkspaceRef `json:"workspace"`
	InvitedBy PersonRef    `json:"invited_by"`
	InvitedAt time.Time    `json:"invited_at"`
}

// RespondRequest 响应邀请
type RespondRequest struct {
	Action string `json:"action" binding:"required"` // accept 或 decline
}

// RespondResponse 响应结果
type RespondResponse struct {
	Status      string `json:"status"`
	WorkspaceID uint   `json:"workspace_id"`
}
