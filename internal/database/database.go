package database

import (
	"time"

	"gorm.io/gorm"

	"collabhub/config"
	"collabhub/internal/model"
	"collabhub/pkg/database"
)

var (
	PostgresDB *gorm.DB
)

func InitDatabase() {
	initPostgres()
}

func initPostgres() {
	databaseConf := config.Conf.Database

	logLevel := databaseConf.LogLevel
	if logLevel == "" {
		logLevel = "info"
	}

	var err error
	PostgresDB, err = database.InitPostgres(
		&database.PostgresConfig{
			ServiceName:     "collabhub",
			Username:        databaseConf.Username,
			Password:        databaseConf.Password,
			Host:            databaseConf.Host,
			Port:            databaseConf.Port,
			Database:        databaseConf.Database,
			SSLMode:         databaseConf.SSLMode,
			LogLevel:        logLevel,
			MaxIdleConns:    databaseConf.MaxIdleConns,
			MaxOpenConns:    databaseConf.MaxOpenConns,
			ConnMaxLifetime: time.Duration(databaseConf.MaxLifetime) * time.Second,
		},
	)

	if err != nil {
		panic(err)
	}

	// 初始化数据库表
	if err := model.InitTable(PostgresDB); err != nil {
		panic(err)
	}
}

// GetDB 获取数据库实例
func GetDB() *gorm.DB {
	return PostgresDB
}
