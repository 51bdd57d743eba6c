// Package project 项目、提交与评审模型
package project

import "time"

// 项目状态
// 提交与评审对状态的写入是 last-write-wins：
// 新的提交总是把项目置回 submitted，新的评审总是覆盖为评审结果
const (
	StatusOpen       = "open"
	StatusInProgress = "in_progress"
	StatusSubmitted  = "submitted"
	StatusReviewed   = "reviewed"
	StatusRework     = "rework"
	StatusRejected   = "rejected"
	StatusCompleted  = "completed"
)

// Project 外部机构发布的项目
type Project struct {
	ID          uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title       string    `gorm:"column:title;type:varchar(200);not null" json:"title"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	CreatedBy   uint      `gorm:"column:created_by;not null;index" json:"created_by"`
	WorkspaceID *uint     `gorm:"column:workspace_id;index" json:"workspace_id"`
	Status      string    `gorm:"column:status;type:varchar(20);not null;default:'open'" json:"status"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Project) TableName() string {
	return "projects"
}

// 评审结论
const (
	ReviewApproved = "approved"
	ReviewRework   = "rework"
	ReviewRejected = "rejected"
)

// ValidReviewStatus 校验评审结论取值
func ValidReviewStatus(status string) bool {
	switch status {
	case ReviewApproved, ReviewRework, ReviewRejected:
		return true
	}
	return false
}

// ReviewToProjectStatus 评审结论对应的项目状态
func ReviewToProjectStatus(review string) string {
	switch review {
	case ReviewApproved:
		return StatusReviewed
	case ReviewRework:
		return StatusRework
	default:
		return StatusRejected
	}
}

// Submission 学生对项目的提交
type Submission struct {
	ID         uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ProjectID  uint      `gorm:"column:project_id;not null;index" json:"project_id"`
	StudentID  uint      `gorm:"column:student_id;not null;index" json:"student_id"`
	ContentURL string    `gorm:"column:content_url;type:varchar(500)" json:"content_url"`
	Notes      string    `gorm:"column:notes;type:text" json:"notes"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Submission) TableName() string {
	return "project_submissions"
}

// Review 外部机构对提交的评审
type Review struct {
	ID           uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	SubmissionID uint      `gorm:"column:submission_id;not null;index" json:"submission_id"`
	ReviewerID   uint      `gorm:"column:reviewer_id;not null" json:"reviewer_id"`
	Status       string    `gorm:"column:status;type:varchar(20);not null;default:'approved'" json:"status"`
	Feedback     string    `gorm:"column:feedback;type:text" json:"feedback"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Review) TableName() string {
	return "project_reviews"
}
