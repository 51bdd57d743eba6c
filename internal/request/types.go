package request

import "time"

// CreateRequest 机构向学生发起连接请求
type CreateRequest struct {
	ToStudentID uint   `json:"to_student_id" binding:"required"` // 目标学生
	ProjectID   *uint  `json:"project_id"`                       // 关联项目，可选
	WorkspaceID *uint  `json:"workspace_id"`                     // 关联工作区，可选
	Message     string `json:"message"`                          // 附言
}

// RequestItem 连接请求列表项
type RequestItem struct {
	ID          uint      `json:"id"`
	FromAgency  uint      `json:"from_agency_id"`
	ToStudent   uint      `json:"to_student_id"`
	ProjectID   *uint     `json:"project_id"`
	WorkspaceID *uint     `json:"workspace_id"`
	Message     string    `json:"message"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// RespondRequest 学生响应连接请求
type RespondRequest struct {
	Action string `json:"action" binding:"required"` // accept 或 reject
}
