// repositories/category_repository.go
package repositories

import (
	"context"

	"gorm.io/gorm"

	"kartichka.link/models"
)

// ICategoryRepository е интерфейсът за четене на категории.
type ICategoryRepository interface {
	FindAllCategories(ctx context.Context) ([]models.Category, error)
}

// CategoryRepository имплементира ICategoryRepository върху GORM.
type CategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository създава ново хранилище за категории.
func NewCategoryRepository(db *gorm.DB) ICategoryRepository {
	return &CategoryRepository{db: db}
}

// FindAllCategories връща всички категории, подредени по име.
func (r *CategoryRepository) FindAllCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.WithContext(ctx).Order("name asc").Find(&categories).Error
	return categories, err
}

// Проверка за съответствие с интерфейса
var _ ICategoryRepository = (*CategoryRepository)(nil)
