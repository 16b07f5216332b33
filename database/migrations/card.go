package migrations

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"kartichka.link/configs/configslog"
	"kartichka.link/models"
)

func MigrateCardsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating cards table...")
	if err := db.AutoMigrate(&models.Card{}); err != nil {
		configslog.Log.Error("Failed to migrate cards table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Cards table migrated successfully")
	return nil
}
