package model

import (
	"fmt"

	"gorm.io/gorm"

	"collabhub/internal/model/file"
	"collabhub/internal/model/joinrequest"
	"collabhub/internal/model/message"
	"collabhub/internal/model/passwordreset"
	"collabhub/internal/model/project"
	"collabhub/internal/model/task"
	"collabhub/internal/model/user"
	"collabhub/internal/model/workspace"
)

// GetModels 返回所有需要迁移的模型
func GetModels() []interface{} {
	return []interface{}{
		&user.User{},
		&passwordreset.PasswordReset{},
		&workspace.Workspace{},
		&workspace.Membership{},
		&message.Message{},
		&file.File{},
		&task.Task{},
		&project.Project{},
		&project.Submission{},
		&project.Review{},
		&joinrequest.JoinRequest{},
	}
}

func InitTable(db *gorm.DB) error {
	if err := db.AutoMigrate(GetModels()...); err != nil {
		return fmt.Errorf("数据库表迁移失败: %v", err)
	}
	return nil
}
