package signup

import (
	"regexp"

	"golang.org/x/crypto/bcrypt"

	"collabhub/internal/database"
	userModel "collabhub/internal/model/user"
	"collabhub/internal/pkg"
	"collabhub/pkg/response"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type SignupService struct{}

// Signup 账号密码注册，成功后直接签发访问令牌
func (s *SignupService) Signup(req SignupRequest) (SignupResponse, *response.BusinessError) {
	// 1. 参数校验
	if err := s.validateRequest(&req); err != nil {
		return SignupResponse{}, err
	}

	// 2. 检查邮箱和用户名是否已被占用
	var existing userModel.User
	if err := database.PostgresDB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return SignupResponse{}, response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("邮箱已被注册"),
		)
	}
	if err := database.PostgresDB.Where("username = ?", req.Username).First(&existing).Error; err == nil {
		return SignupResponse{}, response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("用户名已存在"),
		)
	}

	// 3. 密码加密
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return SignupResponse{}, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("密码加密失败"),
		)
	}

	// 4. 创建用户
	newUser := userModel.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         req.Role,
	}

	if err := database.PostgresDB.Create(&newUser).Error; err != nil {
		return SignupResponse{}, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("用户创建失败"),
		)
	}

	// 5. 签发访问令牌
	accessToken, err := pkg.GenerateAccessToken(newUser.ID, newUser.Username, newUser.Email, newUser.Role)
	if err != nil {
		return SignupResponse{}, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("生成访问令牌失败"),
		)
	}

	return SignupResponse{
		AccessToken: accessToken,
		User:        newUser.ToProfile(),
	}, nil
}

// validateRequest 参数校验，同时填充默认角色
func (s *SignupService) validateRequest(req *SignupRequest) *response.BusinessError {
	if req.Role == "" {
		req.Role = userModel.RoleStudent
	}
	if !userModel.ValidRole(req.Role) {
		return response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("无效的角色"),
		)
	}

	if !emailRegex.MatchString(req.Email) {
		return response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("邮箱格式不正确"),
		)
	}

	if len(req.Password) < 6 {
		return response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("密码长度不能少于6个字符"),
		)
	}

	return nil
}
