package signup

import (
	"testing"

	"github.com/stretchr/testify/assert"

	userModel "collabhub/internal/model/user"
	"collabhub/internal/pkg"
	"collabhub/internal/testutils"
	"collabhub/pkg/response"
)

// TestSignup 测试注册服务
func TestSignup(t *testing.T) {
	testutils.SetupTestConfig(t)
	db := testutils.SetupTestDB(t)
	service := &SignupService{}

	existing := testutils.CreateTestUser(db)

	tests := []struct {
		name        string
		req         SignupRequest
		expectError bool
		errMsg      string
		checkResult func(t *testing.T, resp SignupResponse)
	}{
		{
			name: "有效的注册请求",
			req: SignupRequest{
				Username:  "alice_zhang",
				Email:     "alice@example.com",
				Password:  "password123",
				FirstName: "Alice",
				LastName:  "Zhang",
			},
			expectError: false,
			checkResult: func(t *testing.T, resp SignupResponse) {
				assert.NotEmpty(t, resp.AccessToken)
				assert.Equal(t, "alice_zhang", resp.User.Username)
				assert.Equal(t, userModel.RoleStudent, resp.User.Role)

				claims, err := pkg.ParseAccessToken(resp.AccessToken)
				assert.NoError(t, err)
				assert.Equal(t, resp.User.ID, claims.UserID)
			},
		},
		{
			name: "指定外部机构角色",
			req: SignupRequest{
				Username:  "acme_agency",
				Email:     "acme@example.com",
				Password:  "password123",
				FirstName: "Acme",
				LastName:  "Inc",
				Role:      userModel.RoleExternal,
			},
			expectError: false,
			checkResult: func(t *testing.T, resp SignupResponse) {
				assert.Equal(t, userModel.RoleExternal, resp.User.Role)
			},
		},
		{
			name: "无效的角色",
			req: SignupRequest{
				Username:  "bob_wang",
				Email:     "bob@example.com",
				Password:  "password123",
				FirstName: "Bob",
				LastName:  "Wang",
				Role:      "superuser",
			},
			expectError: true,
			errMsg:      "无效的角色",
		},
		{
			name: "邮箱格式不正确",
			req: SignupRequest{
				Username:  "bad_email",
				Email:     "not-an-email",
				Password:  "password123",
				FirstName: "Bad",
				LastName:  "Email",
			},
			expectError: true,
			errMsg:      "邮箱格式不正确",
		},
		{
			name: "密码过短",
			req: SignupRequest{
				Username:  "short_pwd",
				Email:     "short@example.com",
				Password:  "123",
				FirstName: "Short",
				LastName:  "Pwd",
			},
			expectError: true,
			errMsg:      "密码长度不能少于6个字符",
		},
		{
			name: "邮箱已被注册",
			req: SignupRequest{
				Username:  "dup_email_user",
				Email:     existing.Email,
				Password:  "password123",
				FirstName: "Dup",
				LastName:  "Email",
			},
			expectError: true,
			errMsg:      "邮箱已被注册",
		},
		{
			name: "用户名已存在",
			req: SignupRequest{
				Username:  existing.Username,
				Email:     "unique@example.com",
				Password:  "password123",
				FirstName: "Dup",
				LastName:  "Name",
			},
			expectError: true,
			errMsg:      "用户名已存在",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := service.Signup(tt.req)
			if tt.expectError {
				assert.NotNil(t, err)
				assert.Equal(t, tt.errMsg, err.Msg)
				return
			}
			assert.Nil(t, err)
			if tt.checkResult != nil {
				tt.checkResult(t, resp)
			}
		})
	}
}

// TestSignupStoresHashedPassword 明文密码不落库
func TestSignupStoresHashedPassword(t *testing.T) {
	testutils.SetupTestConfig(t)
	db := testutils.SetupTestDB(t)
	service := &SignupService{}

	resp, err := service.Signup(SignupRequest{
		Username:  "hash_check",
		Email:     "hash@example.com",
		Password:  "password123",
		FirstName: "Hash",
		LastName:  "Check",
	})
	assert.Nil(t, err)

	var u userModel.User
	assert.NoError(t, db.First(&u, resp.User.ID).Error)
	assert.NotEqual(t, "password123", u.PasswordHash)
	assert.NotEmpty(t, u.PasswordHash)
}

// TestSignupErrorCode 重复注册返回参数错误码
func TestSignupErrorCode(t *testing.T) {
	testutils.SetupTestConfig(t)
	db := testutils.SetupTestDB(t)
	service := &SignupService{}

	existing := testutils.CreateTestUser(db)

	_, err := service.Signup(SignupRequest{
		Username:  "another_name",
		Email:     existing.Email,
		Password:  "password123",
		FirstName: "A",
		LastName:  "B",
	})
	assert.NotNil(t, err)
	assert.Equal(t, response.InvalidParameter, err.Code)
}
