package project

import "time"

// CreateProjectRequest 发布项目
type CreateProjectRequest struct {
	Title       string `json:"title" binding:"required"`        // 项目标题
	Description string `json:"description"`                     // 描述
	WorkspaceID uint   `json:"workspace_id" binding:"required"` // 目标工作区
}

// ProjectItem 项目列表项
type ProjectItem struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedBy   uint      `json:"created_by"`
	WorkspaceID *uint     `json:"workspace_id"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// SubmitRequest 学生提交项目成果
type SubmitRequest struct {
	ContentURL string `json:"content_url"` // 成果链接
	Notes      string `json:"notes"`       // 备注
}

// ReviewRequest 机构评审提交
type ReviewRequest struct {
	Status   string `json:"status"`   // approved/rework/rejected，默认 approved
	Feedback string `json:"feedback"` // 评审意见
}
