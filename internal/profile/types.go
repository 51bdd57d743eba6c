package profile

import "time"

// ProfileResponse 完整的个人档案
type ProfileResponse struct {
	ID              uint      `json:"id"`
	Username        string    `json:"username"`
	Email           string    `json:"email"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	Role            string    `json:"role"`
	ProfilePicture  *string   `json:"profile_picture"`
	Bio             *string   `json:"bio"`
	Domain          *string   `json:"domain"`
	Skills          *string   `json:"skills"`
	ExperienceYears *int      `json:"experience_years"`
	PortfolioLink   *string   `json:"portfolio_link"`
	ResumeLink      *string   `json:"resume_link"`
	CreatedAt       time.Time `json:"created_at"`
}

// UpdateProfileRequest 档案更新请求
// 指针字段缺省时表示不修改
type UpdateProfileRequest struct {
	FirstName       *string `json:"first_name"`
	LastName        *string `json:"last_name"`
	Bio             *string `json:"bio"`
	ProfilePicture  *string `json:"profile_picture"`
	Domain          *string `json:"domain"`
	Skills          *string `json:"skills"`
	ExperienceYears *int    `json:"experience_years"`
	PortfolioLink   *string `json:"portfolio_link"`
	ResumeLink      *string `json:"resume_link"`
}

// SwitchRoleRequest 角色切换请求
type SwitchRoleRequest struct {
	Role string `json:"role" binding:"required"` // student/external/admin
}
