package student

import (
	"gorm.io/gorm"

	userModel "collabhub/internal/model/user"
	"collabhub/internal/permission"
	"collabhub/pkg/response"
)

type StudentService struct {
	db *gorm.DB
}

func NewStudentService(db *gorm.DB) *StudentService {
	return &StudentService{db: db}
}

// List 返回全部学生档案，仅 external/admin 可访问
func (s *StudentService) List(userRole string) ([]StudentItem, *response.BusinessError) {
	if !permission.IsAgencyOrAdmin(userRole) {
		return nil, insufficientPermission()
	}

	var students []userModel.User
	if err := s.db.Where("role = ?", userModel.RoleStudent).Find(&students).Error; err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("查询学生列表失败"),
		)
	}

	items := make([]StudentItem, 0, len(students))
	for _, u := range students {
		items = append(items, toItem(&u))
	}

	return items, nil
}

// Get 查询单个学生详情，仅 external/admin 可访问
func (s *StudentService) Get(studentID uint, userRole string) (StudentDetail, *response.BusinessError) {
	if !permission.IsAgencyOrAdmin(userRole) {
		return StudentDetail{}, insufficientPermission()
	}

	var u userModel.User
	if err := s.db.First(&u, studentID).Error; err != nil || u.Role != userModel.RoleStudent {
		return StudentDetail{}, response.NewBusinessError(
			response.WithErrorCode(response.NotFound),
			response.WithErrorMessage("学生不存在"),
		)
	}

	return StudentDetail{
		StudentItem: toItem(&u),
		ResumeLink:  u.ResumeLink,
		Bio:         u.Bio,
	}, nil
}

func toItem(u *userModel.User) StudentItem {
	return StudentItem{
		ID:              u.ID,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		Email:           u.Email,
		Domain:          u.Domain,
		Skills:          u.Skills,
		ExperienceYears: u.ExperienceYears,
		PortfolioLink:   u.PortfolioLink,
	}
}

func insufficientPermission() *response.BusinessError {
	return response.NewBusinessError(
		response.WithErrorCode(response.Forbidden),
		response.WithErrorMessage("权限不足"),
	)
}
