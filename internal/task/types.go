package task

import (
	"time"

	userModel "collabhub/internal/model/user"
)

// CreateTaskRequest 创建任务请求
type CreateTaskRequest struct {
	Title       string     `json:"title" binding:"required"` // 任务标题
	Description string     `json:"description"`              // 描述
	Priority    string     `json:"priority"`                 // 优先级，默认 medium
	AssignedTo  *uint      `json:"assigned_to"`              // 指派对象
	DueDate     *time.Time `json:"due_date"`                 // 截止时间
}

// UpdateTaskRequest 任务更新请求，缺省字段不修改
type UpdateTaskRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Status      *string    `json:"status"`
	Priority    *string    `json:"priority"`
	AssignedTo  *uint      `json:"assigned_to"`
	DueDate     *time.Time `json:"due_date"`
}

// TaskItem 任务列表项
type TaskItem struct {
	ID          uint               `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Status      string             `json:"status"`
	Priority    string             `json:"priority"`
	DueDate     *time.Time         `json:"due_date"`
	CreatedBy   userModel.Summary  `json:"created_by"`
	AssignedTo  *userModel.Summary `json:"assigned_to"`
	CreatedAt   time.Time          `json:"created_at"`
}

// CreatedTask 创建成功后的返回体
type CreatedTask struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"due_date"`
}
