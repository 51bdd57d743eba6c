package login

import (
	"golang.org/x/crypto/bcrypt"

	"collabhub/internal/database"
	userModel "collabhub/internal/model/user"
	"collabhub/internal/pkg"
	"collabhub/pkg/response"
)

type LoginService struct{}

// Login 邮箱密码登录
func (s *LoginService) Login(req LoginRequest) (LoginResponse, *response.BusinessError) {
	// 1. 查找用户
	var u userModel.User
	if err := database.PostgresDB.Where("email = ?", req.Email).First(&u).Error; err != nil {
		return LoginResponse{}, invalidCredentials()
	}

	// 2. 校验密码
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return LoginResponse{}, invalidCredentials()
	}

	// 3. 签发访问令牌
	accessToken, err := pkg.GenerateAccessToken(u.ID, u.Username, u.Email, u.Role)
	if err != nil {
		return LoginResponse{}, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("生成访问令牌失败"),
		)
	}

	return LoginResponse{
		AccessToken: accessToken,
		User:        u.ToProfile(),
	}, nil
}

// 登录失败统一返回，不暴露用户是否存在
func invalidCredentials() *response.BusinessError {
	return response.NewBusinessError(
		response.WithErrorCode(response.Unauthorized),
		response.WithErrorMessage("邮箱或密码错误"),
	)
}
