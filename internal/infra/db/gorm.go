package db

import (
	"fmt"
	"time"

	"restbucks/internal/config"
	"restbucks/internal/domain/model"

	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect はDBに接続して *gorm.DB を返す。
func Connect(cfg config.Config) (*gorm.DB, error) {
	gormDB, err := gorm.Open(postgres.Open(DSN(cfg)), &gorm.Config{
		Logger: newLogger(cfg),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxOpenConns / 2)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	return gormDB, nil
}

// DSN は DATABASE_URL を最優先、なければ POSTGRES_* から組み立てる
func DSN(cfg config.Config) string {
	if cfg.DatabaseURL != "" {
		return cfg.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.PostgresHost, cfg.PostgresPort, cfg.PostgresUser, cfg.PostgresPassword, cfg.PostgresDB, cfg.PostgresSSLMode,
	)
}

// Migrate はテーブルを作成・更新する
func Migrate(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(
		&model.Product{},
		&model.Customization{},
		&model.Order{},
		&model.OrderItem{},
	)
}

// SQL ログは logrus に流す
func newLogger(cfg config.Config) logger.Interface {
	level := logger.Warn
	if cfg.GoEnv == "dev" {
		level = logger.Info
	}
	return logger.New(log.WithField("component", "gorm"), logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
	})
}
