package task

import (
	"testing"

	"github.com/stretchr/testify/assert"

	taskModel "collabhub/internal/model/task"
	userModel "collabhub/internal/model/user"
	wsModel "collabhub/internal/model/workspace"
	"collabhub/internal/testutils"
	"collabhub/pkg/response"
)

// TestCreateTask 任务创建与参数校验
func TestCreateTask(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewTaskService(db)

	owner := testutils.CreateTestUser(db, testutils.WithRole(userModel.RoleExternal))
	ws := testutils.CreateTestWorkspace(db, owner.ID)
	member := testutils.CreateTestUser(db)
	testutils.CreateTestMembership(db, member.ID, ws.ID, wsModel.RoleMember, wsModel.StatusAccepted)
	outsider := testutils.CreateTestUser(db)

	tests := []struct {
		name        string
		callerID    uint
		req         CreateTaskRequest
		expectError bool
		errCode     response.ResponseCode
		checkResult func(t *testing.T, created CreatedTask)
	}{
		{
			name:     "成员创建任务使用默认优先级",
			callerID: member.ID,
			req:      CreateTaskRequest{Title: "整理需求文档"},
			checkResult: func(t *testing.T, created CreatedTask) {
				assert.Equal(t, taskModel.StatusPending, created.Status)
				assert.Equal(t, taskModel.PriorityMedium, created.Priority)
			},
		},
		{
			name:     "指定优先级",
			callerID: member.ID,
			req:      CreateTaskRequest{Title: "修复登录问题", Priority: taskModel.PriorityUrgent},
			checkResult: func(t *testing.T, created CreatedTask) {
				assert.Equal(t, taskModel.PriorityUrgent, created.Priority)
			},
		},
		{
			name:        "无效的优先级",
			callerID:    member.ID,
			req:         CreateTaskRequest{Title: "x", Priority: "asap"},
			expectError: true,
			errCode:     response.InvalidParameter,
		},
		{
			name:        "非成员不能创建任务",
			callerID:    outsider.ID,
			req:         CreateTaskRequest{Title: "x"},
			expectError: true,
			errCode:     response.Forbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			created, err := service.Create(ws.ID, tt.callerID, tt.req)
			if tt.expectError {
				assert.NotNil(t, err)
				assert.Equal(t, tt.errCode, err.Code)
				return
			}
			assert.Nil(t, err)
			if tt.checkResult != nil {
				tt.checkResult(t, created)
			}
		})
	}
}

// TestListTasks 任务列表要求已接受成员
func TestListTasks(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewTaskService(db)

	owner := testutils.CreateTestUser(db, testutils.WithRole(userModel.RoleExternal))
	ws := testutils.CreateTestWorkspace(db, owner.ID)
	member := testutils.CreateTestUser(db)
	testutils.CreateTestMembership(db, member.ID, ws.ID, wsModel.RoleMember, wsModel.StatusAccepted)

	created, err := service.Create(ws.ID, owner.ID, CreateTaskRequest{Title: "部署演示环境", AssignedTo: &member.ID})
	assert.Nil(t, err)

	items, listErr := service.List(ws.ID, member.ID)
	assert.Nil(t, listErr)
	assert.NotEmpty(t, items)

	found := false
	for _, item := range items {
		if item.ID == created.ID {
			found = true
			assert.Equal(t, owner.ID, item.CreatedBy.ID)
			assert.NotNil(t, item.AssignedTo)
			assert.Equal(t, member.ID, item.AssignedTo.ID)
		}
	}
	assert.True(t, found)

	// 受邀未接受的成员不能读任务列表
	invited := testutils.CreateTestUser(db)
	testutils.CreateTestMembership(db, invited.ID, ws.ID, wsModel.RoleMember, wsModel.StatusInvited)
	_, listErr = service.List(ws.ID, invited.ID)
	assert.NotNil(t, listErr)
	assert.Equal(t, response.Forbidden, listErr.Code)
}

// TestUpdateTask 局部更新与状态校验
func TestUpdateTask(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewTaskService(db)

	owner := testutils.CreateTestUser(db, testutils.WithRole(userModel.RoleExternal))
	ws := testutils.CreateTestWorkspace(db, owner.ID)
	member := testutils.CreateTestUser(db)
	testutils.CreateTestMembership(db, member.ID, ws.ID, wsModel.RoleMember, wsModel.StatusAccepted)
	outsider := testutils.CreateTestUser(db)

	created, err := service.Create(ws.ID, member.ID, CreateTaskRequest{Title: "编写接口文档"})
	assert.Nil(t, err)

	t.Run("任务不存在返回 404", func(t *testing.T) {
		status := taskModel.StatusCompleted
		err := service.Update(99999, member.ID, UpdateTaskRequest{Status: &status})
		assert.NotNil(t, err)
		assert.Equal(t, response.NotFound, err.Code)
	})

	t.Run("非成员不能更新", func(t *testing.T) {
		status := taskModel.StatusCompleted
		err := service.Update(created.ID, outsider.ID, UpdateTaskRequest{Status: &status})
		assert.NotNil(t, err)
		assert.Equal(t, response.Forbidden, err.Code)
	})

	t.Run("无效的状态", func(t *testing.T) {
		status := "done"
		err := service.Update(created.ID, member.ID, UpdateTaskRequest{Status: &status})
		assert.NotNil(t, err)
		assert.Equal(t, response.InvalidParameter, err.Code)
	})

	t.Run("成员更新任务状态", func(t *testing.T) {
		status := taskModel.StatusInProgress
		title := "编写并评审接口文档"
		err := service.Update(created.ID, member.ID, UpdateTaskRequest{Status: &status, Title: &title})
		assert.Nil(t, err)

		var updated taskModel.Task
		assert.NoError(t, db.First(&updated, created.ID).Error)
		assert.Equal(t, taskModel.StatusInProgress, updated.Status)
		assert.Equal(t, title, updated.Title)
		// 未提交的字段不变
		assert.Equal(t, taskModel.PriorityMedium, updated.Priority)
	})
}

// TestDeleteTask 删除权仅限创建者和工作区管理者
func TestDeleteTask(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewTaskService(db)

	owner := testutils.CreateTestUser(db, testutils.WithRole(userModel.RoleExternal))
	ws := testutils.CreateTestWorkspace(db, owner.ID)
	creator := testutils.CreateTestUser(db)
	testutils.CreateTestMembership(db, creator.ID, ws.ID, wsModel.RoleMember, wsModel.StatusAccepted)
	other := testutils.CreateTestUser(db)
	testutils.CreateTestMembership(db, other.ID, ws.ID, wsModel.RoleMember, wsModel.StatusAccepted)

	created, err := service.Create(ws.ID, creator.ID, CreateTaskRequest{Title: "清理测试数据"})
	assert.Nil(t, err)

	t.Run("其他成员不能删除", func(t *testing.T) {
		err := service.Delete(created.ID, other.ID)
		assert.NotNil(t, err)
		assert.Equal(t, response.Forbidden, err.Code)
	})

	t.Run("创建者可以删除", func(t *testing.T) {
		err := service.Delete(created.ID, creator.ID)
		assert.Nil(t, err)

		var count int64
		db.Model(&taskModel.Task{}).Where("id = ?", created.ID).Count(&count)
		assert.Zero(t, count)
	})

	t.Run("工作区所有者可以删除他人任务", func(t *testing.T) {
		created, err := service.Create(ws.ID, creator.ID, CreateTaskRequest{Title: "归档旧任务"})
		assert.Nil(t, err)
		assert.Nil(t, service.Delete(created.ID, owner.ID))
	})
}
