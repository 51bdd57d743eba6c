package config

import (
	"time"

	"collabhub/pkg/email"
)

// AppConfig 应用配置结构
type AppConfig struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Log      LogConfig      `koanf:"log"`
	JWT      JWTConfig      `koanf:"jwt"`
	Smtp     email.Config   `koanf:"smtp"`
	Upload   UploadConfig   `koanf:"upload"`
	Features FeatureConfig  `koanf:"features"`
	Frontend FrontendConfig `koanf:"frontend"`
}

type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	Mode         string        `koanf:"mode"` // debug, release
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
}

type DatabaseConfig struct {
	Driver       string `koanf:"driver"`
	Host         string `koanf:"host"`
	Port         int    `koanf:"port"`
	Username     string `koanf:"username"`
	Password     string `koanf:"password"`
	Database     string `koanf:"database"`
	SSLMode      bool   `koanf:"sslmode"`
	LogLevel     string `koanf:"log_level"` // 数据库日志级别
	MaxOpenConns int    `koanf:"max_open_conns"`
	MaxIdleConns int    `koanf:"max_idle_conns"`
	MaxLifetime  int    `koanf:"max_lifetime"` // 秒
}

type LogConfig struct {
	Level  string `koanf:"level"`  // debug, info, warn, error
	Format string `koanf:"format"` // json, text
	Output string `koanf:"output"` // stdout, file
	Path   string `koanf:"path"`   // 日志文件路径
}

type JWTConfig struct {
	Secret     string `koanf:"secret"`
	ExpireTime int    `koanf:"expire_time"` // 小时
}

// UploadConfig 文件上传配置
type UploadConfig struct {
	Dir     string `koanf:"dir"`      // 上传目录，默认 uploads
	MaxSize int64  `koanf:"max_size"` // 单文件大小上限（字节），超出直接拒绝
}

// FeatureConfig 功能开关
type FeatureConfig struct {
	// 允许用户自行切换角色（开发便利功能），生产环境应关闭
	AllowRoleSwitch *bool `koanf:"allow_role_switch"`
}

// RoleSwitchEnabled 角色切换默认开启
func (f FeatureConfig) RoleSwitchEnabled() bool {
	if f.AllowRoleSwitch == nil {
		return true
	}
	return *f.AllowRoleSwitch
}

// FrontendConfig 前端地址，用于 CORS 和重置密码链接
type FrontendConfig struct {
	URL string `koanf:"url"`
}
