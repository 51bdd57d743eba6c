package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	userModel "collabhub/internal/model/user"
	"collabhub/internal/pkg"
	"collabhub/internal/testutils"
)

func setupAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", JWTAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": CurrentUserID(c),
			"role":    CurrentUserRole(c),
		})
	})
	return r
}

// TestJWTAuth 认证中间件的各种令牌来源
func TestJWTAuth(t *testing.T) {
	testutils.SetupTestConfig(t)
	db := testutils.SetupTestDB(t)
	r := setupAuthRouter()

	u := testutils.CreateTestUser(db)
	token, err := pkg.GenerateAccessToken(u.ID, u.Username, u.Email, u.Role)
	assert.NoError(t, err)

	// 指向已注销账号的令牌
	ghost := testutils.CreateTestUser(db)
	ghostToken, err := pkg.GenerateAccessToken(ghost.ID, ghost.Username, ghost.Email, ghost.Role)
	assert.NoError(t, err)
	assert.NoError(t, db.Delete(ghost).Error)

	tests := []struct {
		name       string
		setup      func(req *http.Request)
		wantStatus int
	}{
		{
			name: "cookie 中的令牌",
			setup: func(req *http.Request) {
				req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "Bearer header 中的令牌",
			setup: func(req *http.Request) {
				req.Header.Set("Authorization", "Bearer "+token)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "缺少令牌",
			setup:      func(req *http.Request) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "错误的 header 格式",
			setup: func(req *http.Request) {
				req.Header.Set("Authorization", token)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "伪造的令牌",
			setup: func(req *http.Request) {
				req.Header.Set("Authorization", "Bearer "+token+"x")
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "用户已注销的令牌",
			setup: func(req *http.Request) {
				req.Header.Set("Authorization", "Bearer "+ghostToken)
			},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/protected", nil)
			tt.setup(req)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.wantStatus, w.Code)

			if tt.wantStatus == http.StatusOK {
				assert.Contains(t, w.Body.String(), `"role":"student"`)
			}
		})
	}
}

// TestJWTAuthRoleFreshness 角色以用户表当前值为准，不信任令牌中的快照
func TestJWTAuthRoleFreshness(t *testing.T) {
	testutils.SetupTestConfig(t)
	db := testutils.SetupTestDB(t)
	r := setupAuthRouter()

	u := testutils.CreateTestUser(db)
	token, err := pkg.GenerateAccessToken(u.ID, u.Username, u.Email, u.Role)
	assert.NoError(t, err)

	do := func() string {
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		return w.Body.String()
	}

	assert.Contains(t, do(), `"role":"student"`)

	// 切换角色后，旧令牌的下一次请求立即按新角色授权
	assert.NoError(t, db.Model(u).Update("role", userModel.RoleExternal).Error)
	assert.Contains(t, do(), `"role":"external"`)
}
