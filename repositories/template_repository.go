// repositories/template_repository.go
package repositories

import (
	"context"

	"gorm.io/gorm"

	"kartichka.link/models"
	"kartichka.link/pkg/queryparams"
)

// ITemplateRepository е интерфейсът за четене на шаблони.
type ITemplateRepository interface {
	FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Template, int64, error)
}

// TemplateRepository имплементира ITemplateRepository върху GORM.
type TemplateRepository struct {
	db *gorm.DB
}

// NewTemplateRepository създава ново хранилище за шаблони.
func NewTemplateRepository(db *gorm.DB) ITemplateRepository {
	return &TemplateRepository{db: db}
}

// FindAllPaginated листва шаблони по limit/skip, по избор филтрирани по тип.
func (r *TemplateRepository) FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Template, int64, error) {
	var results []models.Template
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Template{})
	if params.Type != "" {
		query = query.Where("type = ?", params.Type)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return results, 0, nil
	}

	err := query.Order("templates.id asc").
		Limit(params.Limit).
		Offset(params.Skip).
		Find(&results).Error
	return results, total, err
}

// Проверка за съответствие с интерфейса
var _ ITemplateRepository = (*TemplateRepository)(nil)
