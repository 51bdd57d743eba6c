// Package passwordreset 密码重置令牌模型
package passwordreset

import "time"

// PasswordReset 单次有效的密码重置令牌
// 使用后立即标记 used，过期或已使用的令牌永久失效
type PasswordReset struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"column:user_id;not null;index" json:"user_id"`
	Token     string    `gorm:"column:token;type:varchar(255);not null;uniqueIndex" json:"-"`
	ExpiresAt time.Time `gorm:"column:expires_at;not null" json:"expires_at"`
	Used      bool      `gorm:"column:used;default:false" json:"used"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (PasswordReset) TableName() string {
	return "password_resets"
}

// Usable 令牌当前是否可用
func (p *PasswordReset) Usable(now time.Time) bool {
	return !p.Used && now.Before(p.ExpiresAt)
}
