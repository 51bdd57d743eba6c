package password

import (
	"fmt"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"collabhub/config"
	"collabhub/internal/database"
	"collabhub/internal/model/passwordreset"
	userModel "collabhub/internal/model/user"
	"collabhub/internal/pkg"
	"collabhub/pkg/email"
	"collabhub/pkg/response"
)

// 重置令牌有效期（小时）
const resetTokenExpireHours = 1

type PasswordService struct{}

// Forgot 生成重置令牌并发送邮件
func (s *PasswordService) Forgot(req ForgotPasswordRequest) *response.BusinessError {
	// 1. 查找用户
	var u userModel.User
	if err := database.PostgresDB.Where("email = ?", req.Email).First(&u).Error; err != nil {
		return response.NewBusinessError(
			response.WithErrorCode(response.NotFound),
			response.WithErrorMessage("邮箱未注册"),
		)
	}

	// 2. 生成单次使用的重置令牌
	token, err := pkg.GenerateRandomToken()
	if err != nil {
		return response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("生成重置令牌失败"),
		)
	}

	record := passwordreset.PasswordReset{
		UserID:    u.ID,
		Token:     token,
		ExpiresAt: time.Now().Add(resetTokenExpireHours * time.Hour),
	}
	if err := database.PostgresDB.Create(&record).Error; err != nil {
		return response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("创建重置记录失败"),
		)
	}

	// 3. 发送重置邮件，失败不回滚已落库的令牌
	resetURL := fmt.Sprintf("%s/reset-password.html?token=%s", config.Conf.Frontend.URL, token)
	client := email.NewClient(&config.Conf.Smtp)
	if err := client.SendResetPasswordLink(u.Email, resetURL, resetTokenExpireHours); err != nil {
		log.Printf("发送重置邮件失败 email=%s: %v", u.Email, err)
		return response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("发送重置邮件失败"),
		)
	}

	return nil
}

// Reset 校验令牌并更新密码，令牌消费后立即失效
func (s *PasswordService) Reset(req ResetPasswordRequest) *response.BusinessError {
	if len(req.Password) < 6 {
		return response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("密码长度不能少于6个字符"),
		)
	}

	err := database.PostgresDB.Transaction(func(tx *gorm.DB) error {
		// 1. 查找未使用的重置记录
		var record passwordreset.PasswordReset
		if err := tx.Where("token = ? AND used = ?", req.Token, false).First(&record).Error; err != nil {
			return response.NewBusinessError(
				response.WithErrorCode(response.InvalidParameter),
				response.WithErrorMessage("无效或已使用的令牌"),
			)
		}

		// 2. 检查有效期
		if record.ExpiresAt.Before(time.Now()) {
			return response.NewBusinessError(
				response.WithErrorCode(response.InvalidParameter),
				response.WithErrorMessage("令牌已过期"),
			)
		}

		// 3. 先消费令牌，写入条件带上 used=false
		// 并发重置时只有一方能命中，保证单次消费
		res := tx.Model(&passwordreset.PasswordReset{}).
			Where("id = ? AND used = ?", record.ID, false).
			Update("used", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return response.NewBusinessError(
				response.WithErrorCode(response.InvalidParameter),
				response.WithErrorMessage("无效或已使用的令牌"),
			)
		}

		// 4. 更新用户密码
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return response.NewBusinessError(
				response.WithErrorCode(response.Fail),
				response.WithErrorMessage("密码加密失败"),
			)
		}
		return tx.Model(&userModel.User{}).
			Where("id = ?", record.UserID).
			Update("password_hash", string(hashedPassword)).Error
	})

	if err != nil {
		if be, ok := err.(*response.BusinessError); ok {
			return be
		}
		return response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("重置密码失败"),
			response.WithError(err),
		)
	}

	return nil
}
