// services/template_service.go
package services

import (
	"context"

	"go.uber.org/zap"

	"kartichka.link/configs/configslog"
	"kartichka.link/models"
	"kartichka.link/pkg/queryparams"
	"kartichka.link/repositories"
)

// TemplateListing е отговорът на листинг заявката към /card/create.
type TemplateListing struct {
	Templates   []models.Template `json:"templates"`
	Categories  []models.Category `json:"categories"`
	Total       int64             `json:"total"`
	CurrentPage int               `json:"currentPage"`
	PageSize    int               `json:"pageSize"`
}

// ITemplateService е интерфейсът за листинг на шаблони и категории.
type ITemplateService interface {
	ListTemplates(ctx context.Context, params queryparams.ListParams) (*TemplateListing, error)
}

// TemplateService имплементира ITemplateService.
type TemplateService struct {
	templateRepo repositories.ITemplateRepository
	categoryRepo repositories.ICategoryRepository
}

// NewTemplateService създава нов TemplateService.
func NewTemplateService(templateRepo repositories.ITemplateRepository, categoryRepo repositories.ICategoryRepository) ITemplateService {
	return &TemplateService{templateRepo: templateRepo, categoryRepo: categoryRepo}
}

// ListTemplates връща страница шаблони (по избор по тип) плюс всички
// категории за филтъра.
func (s *TemplateService) ListTemplates(ctx context.Context, params queryparams.ListParams) (*TemplateListing, error) {
	params.Validate()

	templates, total, err := s.templateRepo.FindAllPaginated(ctx, params)
	if err != nil {
		configslog.Log.Error("TemplateService.ListTemplates: шаблоните не се четат", zap.Error(err))
		return nil, err
	}

	categories, err := s.categoryRepo.FindAllCategories(ctx)
	if err != nil {
		configslog.Log.Error("TemplateService.ListTemplates: категориите не се четат", zap.Error(err))
		return nil, err
	}

	return &TemplateListing{
		Templates:   templates,
		Categories:  categories,
		Total:       total,
		CurrentPage: params.CurrentPage(),
		PageSize:    params.Limit,
	}, nil
}

// Проверка за съответствие с интерфейса
var _ ITemplateService = (*TemplateService)(nil)
