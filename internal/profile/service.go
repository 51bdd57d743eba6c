package profile

import (
	"collabhub/config"
	"collabhub/internal/database"
	userModel "collabhub/internal/model/user"
	"collabhub/pkg/response"
)

type ProfileService struct{}

// Get 查询当前用户的完整档案
func (s *ProfileService) Get(userID uint) (ProfileResponse, *response.BusinessError) {
	u, err := s.findUser(userID)
	if err != nil {
		return ProfileResponse{}, err
	}

	return ProfileResponse{
		ID:              u.ID,
		Username:        u.Username,
		Email:           u.Email,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		Role:            u.Role,
		ProfilePicture:  u.ProfilePicture,
		Bio:             u.Bio,
		Domain:          u.Domain,
		Skills:          u.Skills,
		ExperienceYears: u.ExperienceYears,
		PortfolioLink:   u.PortfolioLink,
		ResumeLink:      u.ResumeLink,
		CreatedAt:       u.CreatedAt,
	}, nil
}

// Update 局部更新档案，缺省字段保持原值
func (s *ProfileService) Update(userID uint, req UpdateProfileRequest) *response.BusinessError {
	u, err := s.findUser(userID)
	if err != nil {
		return err
	}

	if req.FirstName != nil {
		u.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		u.LastName = *req.LastName
	}
	if req.Bio != nil {
		u.Bio = req.Bio
	}
	if req.ProfilePicture != nil {
		u.ProfilePicture = req.ProfilePicture
	}
	if req.Domain != nil {
		u.Domain = req.Domain
	}
	if req.Skills != nil {
		u.Skills = req.Skills
	}
	if req.ExperienceYears != nil {
		u.ExperienceYears = req.ExperienceYears
	}
	if req.PortfolioLink != nil {
		u.PortfolioLink = req.PortfolioLink
	}
	if req.ResumeLink != nil {
		u.ResumeLink = req.ResumeLink
	}

	if err := database.PostgresDB.Save(u).Error; err != nil {
		return response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("更新档案失败"),
		)
	}

	return nil
}

// SwitchRole 切换自身角色，受 features.allow_role_switch 开关控制
func (s *ProfileService) SwitchRole(userID uint, newRole string) (string, *response.BusinessError) {
	if !config.Conf.Features.RoleSwitchEnabled() {
		return "", response.NewBusinessError(
			response.WithErrorCode(response.Forbidden),
			response.WithErrorMessage("角色切换已禁用"),
		)
	}

	if !userModel.ValidRole(newRole) {
		return "", response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("无效的角色"),
		)
	}

	u, err := s.findUser(userID)
	if err != nil {
		return "", err
	}

	if dbErr := database.PostgresDB.Model(u).Update("role", newRole).Error; dbErr != nil {
		return "", response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("更新角色失败"),
		)
	}

	return newRole, nil
}

func (s *ProfileService) findUser(userID uint) (*userModel.User, *response.BusinessError) {
	var u userModel.User
	if err := database.PostgresDB.First(&u, userID).Error; err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.NotFound),
			response.WithErrorMessage("用户不存在"),
		)
	}
	return &u, nil
}
