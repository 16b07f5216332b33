package configslog

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log е структурираният логер, SLog е sugared вариантът му.
// Инициализират се веднъж при стартиране чрез InitLogger.
var (
	Log  *zap.Logger
	SLog *zap.SugaredLogger
)

// InitLogger настройва zap според APP_ENV (production -> JSON, иначе console).
func InitLogger() {
	var cfg zap.Config
	if os.Getenv("APP_ENV") == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.EncoderConfig.TimeKey = "time"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build(zap.AddCallerSkip(0))
	if err != nil {
		// Без логер няма смисъл да продължаваме.
		panic("логерът не можа да бъде инициализиран: " + err.Error())
	}

	Log = logger
	SLog = logger.Sugar()
}

// SyncLogger изпразва буферите на логера (за defer в main).
func SyncLogger() {
	if Log != nil {
		_ = Log.Sync()
	}
}
