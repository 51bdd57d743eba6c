package request

import (
	"testing"

	"github.com/stretchr/testify/assert"

	jrModel "collabhub/internal/model/joinrequest"
	userModel "collabhub/internal/model/user"
	wsModel "collabhub/internal/model/workspace"
	"collabhub/internal/testutils"
	"collabhub/pkg/response"
)

// TestCreateRequest 只有机构和管理员可以发起连接请求
func TestCreateRequest(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewRequestService(db)

	agency := testutils.CreateTestUser(db, testutils.WithRole(userModel.RoleExternal))
	student := testutils.CreateTestUser(db)

	t.Run("学生不能发起请求", func(t *testing.T) {
		_, err := service.Create(student.ID, userModel.RoleStudent, CreateRequest{ToStudentID: agency.ID})
		assert.NotNil(t, err)
		assert.Equal(t, response.Forbidden, err.Code)
	})

	t.Run("机构发起请求初始状态为 pending", func(t *testing.T) {
		id, err := service.Create(agency.ID, userModel.RoleExternal, CreateRequest{
			ToStudentID: student.ID,
			Message:     "希望邀请你参与我们的项目",
		})
		assert.Nil(t, err)
		assert.NotZero(t, id)

		var jr jrModel.JoinRequest
		assert.NoError(t, db.First(&jr, id).Error)
		assert.Equal(t, jrModel.StatusPending, jr.Status)
		assert.Equal(t, agency.ID, jr.FromAgency)
		assert.Equal(t, student.ID, jr.ToStudent)
	})
}

// TestListRequests 学生只能看到发给自己的请求
func TestListRequests(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewRequestService(db)

	agency := testutils.CreateTestUser(db, testutils.WithRole(userModel.RoleExternal))
	student1 := testutils.CreateTestUser(db)
	student2 := testutils.CreateTestUser(db)

	_, err := service.Create(agency.ID, userModel.RoleExternal, CreateRequest{ToStudentID: student1.ID})
	assert.Nil(t, err)
	_, err = service.Create(agency.ID, userModel.RoleExternal, CreateRequest{ToStudentID: student2.ID})
	assert.Nil(t, err)

	items, listErr := service.List(student1.ID, userModel.RoleStudent)
	assert.Nil(t, listErr)
	assert.Len(t, items, 1)
	assert.Equal(t, student1.ID, items[0].ToStudent)

	items, listErr = service.List(agency.ID, userModel.RoleExternal)
	assert.Nil(t, listErr)
	assert.Len(t, items, 2)
}

// TestRespondRequest 学生响应连接请求
func TestRespondRequest(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewRequestService(db)

	agency := testutils.CreateTestUser(db, testutils.WithRole(userModel.RoleExternal))
	ws := testutils.CreateTestWorkspace(db, agency.ID)
	student := testutils.CreateTestUser(db)
	other := testutils.CreateTestUser(db)

	newRequest := func(workspaceID *uint) uint {
		id, err := service.Create(agency.ID, userModel.RoleExternal, CreateRequest{
			ToStudentID: student.ID,
			WorkspaceID: workspaceID,
		})
		assert.Nil(t, err)
		return id
	}

	t.Run("请求不存在返回 404", func(t *testing.T) {
		_, err := service.Respond(99999, student.ID, ActionAccept)
		assert.NotNil(t, err)
		assert.Equal(t, response.NotFound, err.Code)
	})

	t.Run("只有目标学生可以响应", func(t *testing.T) {
		id := newRequest(nil)
		_, err := service.Respond(id, other.ID, ActionAccept)
		assert.NotNil(t, err)
		assert.Equal(t, response.Forbidden, err.Code)
	})

	t.Run("无效的操作", func(t *testing.T) {
		id := newRequest(nil)
		_, err := service.Respond(id, student.ID, "maybe")
		assert.NotNil(t, err)
		assert.Equal(t, response.InvalidParameter, err.Code)
	})

	t.Run("拒绝请求不建立成员关系", func(t *testing.T) {
		id := newRequest(&ws.ID)
		status, err := service.Respond(id, student.ID, ActionReject)
		assert.Nil(t, err)
		assert.Equal(t, jrModel.StatusRejected, status)

		var count int64
		db.Model(&wsModel.Membership{}).
			Where("user_id = ? AND workspace_id = ?", student.ID, ws.ID).
			Count(&count)
		assert.Zero(t, count)
	})

	t.Run("接受带工作区的请求直接建立已接受成员关系", func(t *testing.T) {
		id := newRequest(&ws.ID)
		status, err := service.Respond(id, student.ID, ActionAccept)
		assert.Nil(t, err)
		assert.Equal(t, jrModel.StatusAccepted, status)

		var m wsModel.Membership
		assert.NoError(t, db.Where("user_id = ? AND workspace_id = ?", student.ID, ws.ID).First(&m).Error)
		assert.Equal(t, wsModel.StatusAccepted, m.Status)
		assert.Equal(t, wsModel.RoleMember, m.Role)
		assert.NotNil(t, m.JoinedAt)
		assert.NotNil(t, m.InvitedBy)
		assert.Equal(t, agency.ID, *m.InvitedBy)
	})

	t.Run("已响应的请求不能再次响应", func(t *testing.T) {
		id := newRequest(nil)
		status, err := service.Respond(id, student.ID, ActionReject)
		assert.Nil(t, err)
		assert.Equal(t, jrModel.StatusRejected, status)

		_, err = service.Respond(id, student.ID, ActionAccept)
		assert.NotNil(t, err)
		assert.Equal(t, response.InvalidParameter, err.Code)
		assert.Equal(t, "请求已被响应", err.Msg)

		var jr jrModel.JoinRequest
		assert.NoError(t, db.First(&jr, id).Error)
		assert.Equal(t, jrModel.StatusRejected, jr.Status)
	})

	t.Run("已有成员关系时接受不重复建行", func(t *testing.T) {
		id := newRequest(&ws.ID)
		_, err := service.Respond(id, student.ID, ActionAccept)
		assert.Nil(t, err)

		var count int64
		db.Model(&wsModel.Membership{}).
			Where("user_id = ? AND workspace_id = ?", student.ID, ws.ID).
			Count(&count)
		assert.Equal(t, int64(1), count)
	})
}
