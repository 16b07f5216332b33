package database

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"kartichka.link/configs/configslog"
	"kartichka.link/database/migrations"
	"kartichka.link/database/seeders"
)

// Initialize изпълнява миграции и/или seeder-и в една транзакция.
func Initialize(db *gorm.DB, migrate bool, seed bool) {
	if !migrate && !seed {
		configslog.SLog.Info("Нито migrate, нито seed флаг е подаден — нищо за правене.")
		return
	}

	tx := db.Begin()
	if tx.Error != nil {
		configslog.Log.Fatal("Транзакцията не може да бъде започната", zap.Error(tx.Error))
		return
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			configslog.Log.Fatal("Инициализацията се провали (panic)", zap.Any("panic_info", r))
		}
	}()

	if migrate {
		configslog.SLog.Info("Миграциите се изпълняват...")
		if err := RunMigrationsInOrder(tx); err != nil {
			tx.Rollback()
			configslog.Log.Error("Миграция се провали", zap.Error(err))
			return
		}
		configslog.SLog.Info("Миграциите завършиха.")
	}

	if seed {
		configslog.SLog.Info("Seeder-ите се изпълняват...")
		if err := RunSeeders(tx); err != nil {
			tx.Rollback()
			configslog.Log.Error("Seeding се провали", zap.Error(err))
			return
		}
		configslog.SLog.Info("Seeder-ите завършиха.")
	}

	if err := tx.Commit().Error; err != nil {
		configslog.Log.Error("Commit се провали", zap.Error(err))
		return
	}
	configslog.SLog.Info("Инициализацията на базата завърши успешно.")
}

// RunMigrationsInOrder изпълнява миграциите в ред, който уважава
// външните ключове: категории -> шаблони -> картички.
func RunMigrationsInOrder(db *gorm.DB) error {
	if err := migrations.MigrateCategoriesTable(db); err != nil {
		return err
	}
	if err := migrations.MigrateTemplatesTable(db); err != nil {
		return err
	}
	if err := migrations.MigrateCardsTable(db); err != nil {
		return err
	}
	return nil
}

// RunSeeders изпълнява идемпотентните seeder-и.
func RunSeeders(db *gorm.DB) error {
	if err := seeders.SeedCategories(db); err != nil {
		return err
	}
	if err := seeders.SeedTemplates(db); err != nil {
		return err
	}
	return nil
}
