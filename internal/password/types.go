package password

// ForgotPasswordRequest 申请重置密码
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required"` // 注册邮箱
}

// ResetPasswordRequest 使用令牌重置密码
type ResetPasswordRequest struct {
	Token    string `json:"token" binding:"required"`    // 重置令牌
	Password string `json:"password" binding:"required"` // 新密码
}
