package student

// StudentItem 学生列表项，供外部机构筛选
type StudentItem struct {
	ID              uint    `json:"id"`
	FirstName       string  `json:"first_name"`
	LastName        string  `json:"last_name"`
	Email           string  `json:"email"`
	Domain          *string `json:"domain"`
	Skills          *string `json:"skills"`
	ExperienceYears *int    `json:"experience_years"`
	PortfolioLink   *string `json:"portfolio_link"`
}

// StudentDetail 学生详情，比列表多简历和简介
type StudentDetail struct {
	StudentItem
	ResumeLink *string `json:"resume_link"`
	Bio        *string `json:"bio"`
}
