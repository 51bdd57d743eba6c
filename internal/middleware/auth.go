package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"collabhub/internal/database"
	"collabhub/internal/dto"
	userModel "collabhub/internal/model/user"
	"collabhub/internal/pkg"
	"collabhub/pkg/response"
)

// parseToken 从 cookie 或 Authorization header 中解析 token
func parseToken(c *gin.Context) (*pkg.Claims, error) {
	var tokenString string

	// 优先从 cookie 中获取 access_token
	tokenString, err := c.Cookie("access_token")
	if err != nil || tokenString == "" {
		// 如果 cookie 中没有，尝试从 Authorization header 获取
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			return nil, fmt.Errorf("未提供认证令牌")
		}

		// 验证格式: Bearer <token>
		if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
			tokenString = authHeader[7:]
		} else {
			return nil, fmt.Errorf("认证格式错误")
		}
	}

	claims, err := pkg.ParseAccessToken(tokenString)
	if err != nil {
		return nil, fmt.Errorf("无效的认证令牌")
	}

	return claims, nil
}

// JWTAuth JWT 认证中间件（必需认证）
// 令牌只证明身份，角色等授权属性每次请求都从用户表取最新值，
// 角色切换后无需等旧令牌过期即可生效
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := parseToken(c)
		if err != nil {
			dto.ErrorResponse(c, response.NewBusinessError(
				response.WithErrorCode(response.Unauthorized),
				response.WithErrorMessage(err.Error()),
			))
			c.Abort()
			return
		}

		// 按令牌中的用户ID取当前用户，账号已注销则令牌随之失效
		var u userModel.User
		if err := database.PostgresDB.First(&u, claims.UserID).Error; err != nil {
			dto.ErrorResponse(c, response.NewBusinessError(
				response.WithErrorCode(response.Unauthorized),
				response.WithErrorMessage("用户不存在"),
			))
			c.Abort()
			return
		}

		// 将用户信息存入上下文
		c.Set("user_id", u.ID)
		c.Set("username", u.Username)
		c.Set("email", u.Email)
		c.Set("user_role", u.Role)
		c.Next()
	}
}

// CurrentUserID 从上下文取当前用户 ID
func CurrentUserID(c *gin.Context) uint {
	return c.GetUint("user_id")
}

// CurrentUserRole 从上下文取当前用户角色
func CurrentUserRole(c *gin.Context) string {
	return c.GetString("user_role")
}
