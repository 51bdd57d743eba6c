package user

import "time"

// 用户全局角色
const (
	RoleStudent  = "student"
	RoleAdmin    = "admin"
	RoleExternal = "external" // 外部机构（agency）
)

// ValidRole 校验全局角色取值
func ValidRole(role string) bool {
	switch role {
	case RoleStudent, RoleAdmin, RoleExternal:
		return true
	}
	return false
}

// User 用户模型
type User struct {
	ID           uint   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Username     string `gorm:"column:username;type:varchar(50);not null;uniqueIndex" json:"username"`
	Email        string `gorm:"column:email;type:varchar(100);not null;uniqueIndex" json:"email"`
	PasswordHash string `gorm:"column:password_hash;type:varchar(255);not null" json:"-"`
	FirstName    string `gorm:"column:first_name;type:varchar(50);not null" json:"first_name"`
	LastName     string `gorm:"column:last_name;type:varchar(50);not null" json:"last_name"`
	Role         string `gorm:"column:role;type:varchar(20);not null;default:'student'" json:"role"`

	ProfilePicture *string `gorm:"column:profile_picture;type:varchar(255)" json:"profile_picture"`
	Bio            *string `gorm:"column:bio;type:text" json:"bio"`

	// 扩展档案，供外部机构筛选学生
	Domain          *string `gorm:"column:domain;type:varchar(120)" json:"domain"`
	Skills          *string `gorm:"column:skills;type:text" json:"skills"` // 逗号分隔
	ExperienceYears *int    `gorm:"column:experience_years" json:"experience_years"`
	PortfolioLink   *string `gorm:"column:portfolio_link;type:varchar(255)" json:"portfolio_link"`
	ResumeLink      *string `gorm:"column:resume_link;type:varchar(255)" json:"resume_link"`

	IsActive  bool      `gorm:"column:is_active;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// Profile 登录注册后返回的用户信息
type Profile struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
}

// ToProfile 转为登录态用户信息
func (u *User) ToProfile() Profile {
	return Profile{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
	}
}

// Summary 消息、成员列表等场景下返回的用户摘要
type Summary struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// ToSummary 转为用户摘要
func (u *User) ToSummary() Summary {
	return Summary{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

// FullName 拼接显示名
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
