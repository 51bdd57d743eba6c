package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"collabhub/config"
	userModel "collabhub/internal/model/user"
	"collabhub/internal/testutils"
	"collabhub/pkg/response"
)

// TestGetProfile 测试档案查询
func TestGetProfile(t *testing.T) {
	testutils.SetupTestConfig(t)
	db := testutils.SetupTestDB(t)
	service := &ProfileService{}

	u := testutils.CreateTestUser(db)

	resp, err := service.Get(u.ID)
	assert.Nil(t, err)
	assert.Equal(t, u.ID, resp.ID)
	assert.Equal(t, u.Username, resp.Username)
	assert.Equal(t, u.Email, resp.Email)
	assert.Equal(t, userModel.RoleStudent, resp.Role)
	assert.Nil(t, resp.Bio)

	_, err = service.Get(99999)
	assert.NotNil(t, err)
	assert.Equal(t, response.NotFound, err.Code)
}

// TestUpdateProfile 局部更新，缺省字段保持原值
func TestUpdateProfile(t *testing.T) {
	testutils.SetupTestConfig(t)
	db := testutils.SetupTestDB(t)
	service := &ProfileService{}

	u := testutils.CreateTestUser(db)

	bio := "全栈开发，偏好 Go 与 Postgres"
	skills := "Go,PostgreSQL,Docker"
	years := 3
	err := service.Update(u.ID, UpdateProfileRequest{
		Bio:             &bio,
		Skills:          &skills,
		ExperienceYears: &years,
	})
	assert.Nil(t, err)

	resp, err := service.Get(u.ID)
	assert.Nil(t, err)
	assert.Equal(t, bio, *resp.Bio)
	assert.Equal(t, skills, *resp.Skills)
	assert.Equal(t, years, *resp.ExperienceYears)
	// 未提交的字段不变
	assert.Equal(t, u.FirstName, resp.FirstName)
	assert.Equal(t, u.LastName, resp.LastName)

	// 第二次只改名字，已有的 bio 不被清空
	newFirst := "Updated"
	err = service.Update(u.ID, UpdateProfileRequest{FirstName: &newFirst})
	assert.Nil(t, err)

	resp, err = service.Get(u.ID)
	assert.Nil(t, err)
	assert.Equal(t, "Updated", resp.FirstName)
	assert.Equal(t, bio, *resp.Bio)
}

// TestSwitchRole 测试角色切换及功能开关
func TestSwitchRole(t *testing.T) {
	testutils.SetupTestConfig(t)
	db := testutils.SetupTestDB(t)
	service := &ProfileService{}

	u := testutils.CreateTestUser(db)

	tests := []struct {
		name        string
		newRole     string
		expectError bool
		errMsg      string
	}{
		{"切换到外部机构", userModel.RoleExternal, false, ""},
		{"切换回学生", userModel.RoleStudent, false, ""},
		{"无效的角色", "superuser", true, "无效的角色"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			role, err := service.SwitchRole(u.ID, tt.newRole)
			if tt.expectError {
				assert.NotNil(t, err)
				assert.Equal(t, tt.errMsg, err.Msg)
				return
			}
			assert.Nil(t, err)
			assert.Equal(t, tt.newRole, role)

			var updated userModel.User
			assert.NoError(t, db.First(&updated, u.ID).Error)
			assert.Equal(t, tt.newRole, updated.Role)
		})
	}

	t.Run("开关关闭时拒绝切换", func(t *testing.T) {
		off := false
		config.Conf.Features.AllowRoleSwitch = &off
		defer func() {
			on := true
			config.Conf.Features.AllowRoleSwitch = &on
		}()

		_, err := service.SwitchRole(u.ID, userModel.RoleExternal)
		assert.NotNil(t, err)
		assert.Equal(t, response.Forbidden, err.Code)
		assert.Equal(t, "角色切换已禁用", err.Msg)
	})
}
