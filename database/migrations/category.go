package migrations

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"kartichka.link/configs/configslog"
	"kartichka.link/models"
)

func MigrateCategoriesTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating categories table...")
	if err := db.AutoMigrate(&models.Category{}); err != nil {
		configslog.Log.Error("Failed to migrate categories table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Categories table migrated successfully")
	return nil
}
