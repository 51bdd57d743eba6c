package pkg

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// tokenBytes 令牌熵长度，48 字节编码后 64 个字符
const tokenBytes = 48

// GenerateRandomToken 生成用于重置链接的随机令牌
// 使用无填充的 URL 安全编码，令牌可以直接拼进链接的查询参数
func GenerateRandomToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("生成随机令牌失败: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(b), nil
}
