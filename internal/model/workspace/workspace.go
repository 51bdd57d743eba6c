// Package workspace 工作区与成员关系模型
package workspace

import "time"

// Workspace 工作区
type Workspace struct {
	ID          uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"column:name;type:varchar(100);not null" json:"name"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	CreatedBy   uint      `gorm:"column:created_by;not null;index" json:"created_by"`
	IsActive    bool      `gorm:"column:is_active;default:true" json:"is_active"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Workspace) TableName() string {
	return "workspaces"
}
