package configsdatabase

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"kartichka.link/configs"
	"kartichka.link/configs/configslog"
)

var db *gorm.DB

// InitDB отваря връзката към Postgres през GORM.
func InitDB() {
	cfg := configs.GetConfig()

	logLevel := gormlogger.Warn
	if cfg.AppEnv == "development" {
		logLevel = gormlogger.Info
	}

	gormDB, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		configslog.Log.Fatal("Връзката с базата данни не можа да бъде установена", zap.Error(err))
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		configslog.Log.Fatal("Достъпът до *sql.DB не е възможен", zap.Error(err))
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	db = gormDB
	configslog.SLog.Info("Връзката с базата данни е установена.")
}

// GetDB връща глобалната GORM връзка (InitDB трябва да е извикан).
func GetDB() *gorm.DB {
	return db
}

// CloseDB затваря връзката (за defer в main).
func CloseDB() {
	if db == nil {
		return
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
