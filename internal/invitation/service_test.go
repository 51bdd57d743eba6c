package invitation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	userModel "collabhub/internal/model/user"
	wsModel "collabhub/internal/model/workspace"
	"collabhub/internal/testutils"
	"collabhub/pkg/response"
)

// TestInviteStudents 批量邀请学生
func TestInviteStudents(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewInvitationService(db)

	owner := testutils.CreateTestUser(db, testutils.WithRole(userModel.RoleExternal))
	ws := testutils.CreateTestWorkspace(db, owner.ID)

	student1 := testutils.CreateTestUser(db)
	student2 := testutils.CreateTestUser(db)
	agency := testutils.CreateTestUser(db, testutils.WithRole(userModel.RoleExternal))
	alreadyMember := testutils.CreateTestUser(db)
	testutils.CreateTestMembership(db, alreadyMember.ID, ws.ID, wsModel.RoleMember, wsModel.StatusAccepted)

	t.Run("学生角色不能发起邀请", func(t *testing.T) {
		_, err := service.InviteStudents(ws.ID, student1.ID, userModel.RoleStudent,
			InviteStudentsRequest{StudentIDs: []uint{student2.ID}})
		assert.NotNil(t, err)
		assert.Equal(t, response.Forbidden, err.Code)
	})

	t.Run("空学生列表返回参数错误", func(t *testing.T) {
		_, err := service.InviteStudents(ws.ID, owner.ID, userModel.RoleExternal,
			InviteStudentsRequest{StudentIDs: []uint{}})
		assert.NotNil(t, err)
		assert.Equal(t, "未选择学生", err.Msg)
	})

	t.Run("工作区不存在返回 404", func(t *testing.T) {
		_, err := service.InviteStudents(99999, owner.ID, userModel.RoleExternal,
			InviteStudentsRequest{StudentIDs: []uint{student1.ID}})
		assert.NotNil(t, err)
		assert.Equal(t, response.NotFound, err.Code)
	})

	t.Run("非工作区管理者被拒绝", func(t *testing.T) {
		_, err := service.InviteStudents(ws.ID, agency.ID, userModel.RoleExternal,
			InviteStudentsRequest{StudentIDs: []uint{student1.ID}})
		assert.NotNil(t, err)
		assert.Equal(t, "无权管理该工作区", err.Msg)
	})

	t.Run("不符合条件的目标被静默跳过", func(t *testing.T) {
		resp, err := service.InviteStudents(ws.ID, owner.ID, userModel.RoleExternal,
			InviteStudentsRequest{StudentIDs: []uint{
				student1.ID,
				student2.ID,
				agency.ID,        // 非学生
				alreadyMember.ID, // 已有成员关系
				99999,            // 不存在
			}})
		assert.Nil(t, err)
		assert.Len(t, resp.InvitedStudents, 2)
		assert.Equal(t, 2, resp.InvitedCount)
		assert.Equal(t, "Invited 2 students", resp.Message)

		var m wsModel.Membership
		assert.NoError(t, db.Where("user_id = ? AND workspace_id = ?", student1.ID, ws.ID).First(&m).Error)
		assert.Equal(t, wsModel.StatusInvited, m.Status)
		assert.Equal(t, wsModel.RoleMember, m.Role)
		assert.NotNil(t, m.InvitedBy)
		assert.Equal(t, owner.ID, *m.InvitedBy)
	})

	t.Run("重复邀请同一学生被跳过", func(t *testing.T) {
		resp, err := service.InviteStudents(ws.ID, owner.ID, userModel.RoleExternal,
			InviteStudentsRequest{StudentIDs: []uint{student1.ID}})
		assert.Nil(t, err)
		assert.Empty(t, resp.InvitedStudents)
		assert.Zero(t, resp.InvitedCount)
		assert.Equal(t, "Invited 0 students", resp.Message)
	})
}

// TestListInvitations 工作区视角与用户视角的邀请列表
func TestListInvitations(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewInvitationService(db)

	owner := testutils.CreateTestUser(db, testutils.WithRole(userModel.RoleExternal))
	ws := testutils.CreateTestWorkspace(db, owner.ID)

	student := testutils.CreateTestUser(db)
	m := testutils.CreateTestMembership(db, student.ID, ws.ID, wsModel.RoleMember, wsModel.StatusInvited)
	assert.NoError(t, db.Model(m).Update("invited_by", owner.ID).Error)

	t.Run("工作区内的待处理邀请", func(t *testing.T) {
		items, err := service.ListWorkspaceInvitations(ws.ID, owner.ID)
		assert.Nil(t, err)
		assert.Len(t, items, 1)
		assert.Equal(t, student.ID, items[0].Student.ID)
		assert.Equal(t, owner.ID, items[0].InvitedBy.ID)
	})

	t.Run("非成员不能查看工作区邀请", func(t *testing.T) {
		outsider := testutils.CreateTestUser(db)
		_, err := service.ListWorkspaceInvitations(ws.ID, outsider.ID)
		assert.NotNil(t, err)
		assert.Equal(t, response.Forbidden, err.Code)
	})

	t.Run("用户收到的邀请", func(t *testing.T) {
		items, err := service.ListMyInvitations(student.ID)
		assert.Nil(t, err)
		assert.Len(t, items, 1)
		assert.Equal(t, ws.ID, items[0].Workspace.ID)
		assert.Equal(t, ws.Name, items[0].Workspace.Name)
	})

	t.Run("已接受的邀请不再出现在列表", func(t *testing.T) {
		_, err := service.Respond(m.ID, student.ID, ActionAccept)
		assert.Nil(t, err)

		items, respErr := service.ListMyInvitations(student.ID)
		assert.Nil(t, respErr)
		assert.Empty(t, items)
	})
}

// TestRespond 邀请响应状态机：invited 为唯一可转移状态
func TestRespond(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewInvitationService(db)

	owner := testutils.CreateTestUser(db, testutils.WithRole(userModel.RoleExternal))
	ws := testutils.CreateTestWorkspace(db, owner.ID)

	accepter := testutils.CreateTestUser(db)
	invAccept := testutils.CreateTestMembership(db, accepter.ID, ws.ID, wsModel.RoleMember, wsModel.StatusInvited)

	decliner := testutils.CreateTestUser(db)
	invDecline := testutils.CreateTestMembership(db, decliner.ID, ws.ID, wsModel.RoleMember, wsModel.StatusInvited)

	t.Run("无效的操作", func(t *testing.T) {
		_, err := service.Respond(invAccept.ID, accepter.ID, "maybe")
		assert.NotNil(t, err)
		assert.Equal(t, "无效的操作", err.Msg)
	})

	t.Run("他人的邀请按不存在处理", func(t *testing.T) {
		_, err := service.Respond(invAccept.ID, decliner.ID, ActionAccept)
		assert.NotNil(t, err)
		assert.Equal(t, response.NotFound, err.Code)
	})

	t.Run("接受邀请记录加入时间", func(t *testing.T) {
		resp, err := service.Respond(invAccept.ID, accepter.ID, ActionAccept)
		assert.Nil(t, err)
		assert.Equal(t, wsModel.StatusAccepted, resp.Status)
		assert.Equal(t, ws.ID, resp.WorkspaceID)

		var m wsModel.Membership
		assert.NoError(t, db.First(&m, invAccept.ID).Error)
		assert.Equal(t, wsModel.StatusAccepted, m.Status)
		assert.NotNil(t, m.JoinedAt)
	})

	t.Run("拒绝邀请不记录加入时间", func(t *testing.T) {
		resp, err := service.Respond(invDecline.ID, decliner.ID, ActionDecline)
		assert.Nil(t, err)
		assert.Equal(t, wsModel.StatusDeclined, resp.Status)

		var m wsModel.Membership
		assert.NoError(t, db.First(&m, invDecline.ID).Error)
		assert.Equal(t, wsModel.StatusDeclined, m.Status)
		assert.Nil(t, m.JoinedAt)
	})

	t.Run("重复响应被拒绝", func(t *testing.T) {
		_, err := service.Respond(invAccept.ID, accepter.ID, ActionDecline)
		assert.NotNil(t, err)
		assert.Equal(t, "邀请已被响应", err.Msg)

		// 状态保持不变
		var m wsModel.Membership
		assert.NoError(t, db.First(&m, invAccept.ID).Error)
		assert.Equal(t, wsModel.StatusAccepted, m.Status)
	})
}
