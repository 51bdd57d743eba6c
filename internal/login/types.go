package login

import userModel "collabhub/internal/model/user"

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`    // 邮箱
	Password string `json:"password" binding:"required"` // 密码
}

// LoginResponse 登录响应
type LoginResponse struct {
	AccessToken string            `json:"access_token"`
	User        userModel.Profile `json:"user"`
}
