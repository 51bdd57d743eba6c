package pkg

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"collabhub/config"
)

func setupJWTConfig() {
	config.Conf = &config.AppConfig{
		JWT: config.JWTConfig{
			Secret:     "test-secret-key-for-testing-only",
			ExpireTime: 1,
		},
	}
}

// TestGenerateAndParseAccessToken 令牌签发与解析往返
func TestGenerateAndParseAccessToken(t *testing.T) {
	setupJWTConfig()

	token, err := GenerateAccessToken(42, "alice", "alice@example.com", "student")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ParseAccessToken(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "student", claims.Role)
}

// TestParseAccessTokenInvalid 非法令牌解析失败
func TestParseAccessTokenInvalid(t *testing.T) {
	setupJWTConfig()

	tests := []struct {
		name  string
		token string
	}{
		{"空字符串", ""},
		{"乱码", "not-a-jwt"},
		{"签名被篡改", func() string {
			token, _ := GenerateAccessToken(1, "a", "a@example.com", "student")
			return token + "x"
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAccessToken(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

// TestParseAccessTokenExpired 过期令牌返回专用错误
func TestParseAccessTokenExpired(t *testing.T) {
	setupJWTConfig()

	claims := &Claims{
		UserID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(config.Conf.JWT.Secret))
	assert.NoError(t, err)

	_, err = ParseAccessToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

// TestParseAccessTokenWrongAlgorithm 拒绝非 HMAC 签名算法
func TestParseAccessTokenWrongAlgorithm(t *testing.T) {
	setupJWTConfig()

	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: 1}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	assert.NoError(t, err)

	_, err = ParseAccessToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
