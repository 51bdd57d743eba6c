// Package task 工作区任务模型
package task

import "time"

// 任务状态
const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// 任务优先级
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// ValidStatus 校验任务状态取值
func ValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// ValidPriority 校验任务优先级取值
func ValidPriority(priority string) bool {
	switch priority {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// Task 工作区任务
type Task struct {
	ID          uint       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	WorkspaceID uint       `gorm:"column:workspace_id;not null;index" json:"workspace_id"`
	CreatedBy   uint       `gorm:"column:created_by;not null;index" json:"created_by"`
	AssignedTo  *uint      `gorm:"column:assigned_to" json:"assigned_to"`
	Title       string     `gorm:"column:title;type:varchar(200);not null" json:"title"`
	Description string     `gorm:"column:description;type:text" json:"description"`
	Status      string     `gorm:"column:status;type:varchar(20);not null;default:'pending'" json:"status"`
	Priority    string     `gorm:"column:priority;type:varchar(20);not null;default:'medium'" json:"priority"`
	DueDate     *time.Time `gorm:"column:due_date" json:"due_date"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Task) TableName() string {
	return "tasks"
}
