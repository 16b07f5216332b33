package seeders

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"kartichka.link/configs/configslog"
	"kartichka.link/models"
)

// SeedCategories създава началните категории, ако ги няма.
func SeedCategories(db *gorm.DB) error {
	categories := []models.Category{
		{Name: "Празници", Description: "Официални и народни празници"},
		{Name: "Лични поводи", Description: "Рождени и имени дни"},
		{Name: "Универсални", Description: "Картички за всеки повод"},
	}

	for _, category := range categories {
		var existing models.Category
		result := db.Where("name = ?", category.Name).First(&existing)
		if result.Error == nil {
			configslog.SLog.Debugf("Категория '%s' вече съществува, пропуска се.", category.Name)
			continue
		}
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			configslog.Log.Error("Грешка при проверка на категория",
				zap.String("name", category.Name), zap.Error(result.Error))
			return result.Error
		}
		if err := db.Create(&category).Error; err != nil {
			configslog.Log.Error("Категорията не можа да бъде създадена",
				zap.String("name", category.Name), zap.Error(err))
			return err
		}
		configslog.SLog.Infof("Категория '%s' е създадена (ID: %d).", category.Name, category.ID)
	}
	return nil
}

// SeedTemplates създава началните шаблони, ако ги няма.
func SeedTemplates(db *gorm.DB) error {
	var holidays, personal, universal models.Category
	if err := db.Where("name = ?", "Празници").First(&holidays).Error; err != nil {
		return err
	}
	if err := db.Where("name = ?", "Лични поводи").First(&personal).Error; err != nil {
		return err
	}
	if err := db.Where("name = ?", "Универсални").First(&universal).Error; err != nil {
		return err
	}

	templates := []models.Template{
		{Name: "Рожден ден — балони", Type: models.TemplateTypeBirthday, PreviewURL: "/templates/birthday-balloons.png", CategoryID: personal.ID},
		{Name: "Рожден ден — торта", Type: models.TemplateTypeBirthday, PreviewURL: "/templates/birthday-cake.png", CategoryID: personal.ID},
		{Name: "Имен ден — цветя", Type: models.TemplateTypeNameDay, PreviewURL: "/templates/nameday-flowers.png", CategoryID: personal.ID},
		{Name: "Коледа — снежинки", Type: models.TemplateTypeHoliday, PreviewURL: "/templates/christmas-snow.png", CategoryID: holidays.ID},
		{Name: "Баба Марта", Type: models.TemplateTypeHoliday, PreviewURL: "/templates/baba-marta.png", CategoryID: holidays.ID},
		{Name: "Класика", Type: models.TemplateTypeUniversal, PreviewURL: "/templates/classic.png", CategoryID: universal.ID},
	}

	for _, template := range templates {
		var existing models.Template
		result := db.Where("name = ?", template.Name).First(&existing)
		if result.Error == nil {
			configslog.SLog.Debugf("Шаблон '%s' вече съществува, пропуска се.", template.Name)
			continue
		}
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			configslog.Log.Error("Грешка при проверка на шаблон",
				zap.String("name", template.Name), zap.Error(result.Error))
			return result.Error
		}
		if err := db.Create(&template).Error; err != nil {
			configslog.Log.Error("Шаблонът не можа да бъде създаден",
				zap.String("name", template.Name), zap.Error(err))
			return err
		}
		configslog.SLog.Infof("Шаблон '%s' е създаден (ID: %d).", template.Name, template.ID)
	}
	return nil
}
