package testutils

import (
	"testing"

	"collabhub/config"
)

// SetupTestConfig 填充测试用全局配置，避免依赖磁盘上的 config.yaml
func SetupTestConfig(t *testing.T) {
	t.Helper()

	allowSwitch := true
	config.Conf = &config.AppConfig{
		JWT: config.JWTConfig{
			Secret:     "test-secret-key-for-testing-only",
			ExpireTime: 1,
		},
		Upload: config.UploadConfig{
			Dir:     t.TempDir(),
			MaxSize: 1 << 20,
		},
		Features: config.FeatureConfig{AllowRoleSwitch: &allowSwitch},
		Frontend: config.FrontendConfig{URL: "http://localhost:3000"},
	}
}
