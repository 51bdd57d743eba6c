// Package joinrequest 机构与学生的连接请求模型
package joinrequest

import "time"

// 请求状态
const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

// JoinRequest 外部机构向学生发出的合作请求
// 与工作区邀请相互独立；接受时若带 workspace 引用则同时建立成员关系
type JoinRequest struct {
	ID          uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	FromAgency  uint      `gorm:"column:from_agency_id;not null;index" json:"from_agency_id"`
	ToStudent   uint      `gorm:"column:to_student_id;not null;index" json:"to_student_id"`
	ProjectID   *uint     `gorm:"column:project_id" json:"project_id"`
	WorkspaceID *uint     `gorm:"column:workspace_id" json:"workspace_id"`
	Message     string    `gorm:"column:message;type:text" json:"message"`
	Status      string    `gorm:"column:status;type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (JoinRequest) TableName() string {
	return "join_requests"
}
