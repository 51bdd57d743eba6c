package signup

import userModel "collabhub/internal/model/user"

// SignupRequest 注册请求
type SignupRequest struct {
	Username  string `json:"username" binding:"required"`   // 用户名
	Email     string `json:"email" binding:"required"`      // 邮箱
	Password  string `json:"password" binding:"required"`   // 密码
	FirstName string `json:"first_name" binding:"required"` // 名
	LastName  string `json:"last_name" binding:"required"`  // 姓
	Role      string `json:"role"`                          // 角色，默认 student
}

// SignupResponse 注册响应
type SignupResponse struct {
	AccessToken string            `json:"access_token"`
	User        userModel.Profile `json:"user"`
}
