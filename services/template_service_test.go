package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kartichka.link/models"
	"kartichka.link/pkg/queryparams"
	"kartichka.link/repositories"
)

type mockTemplateRepo struct {
	templates  []models.Template
	err        error
	lastParams queryparams.ListParams
}

func (m *mockTemplateRepo) FindAllPaginated(_ context.Context, params queryparams.ListParams) ([]models.Template, int64, error) {
	m.lastParams = params
	if m.err != nil {
		return nil, 0, m.err
	}
	return m.templates, int64(len(m.templates)), nil
}

type mockCategoryRepo struct {
	categories []models.Category
	err        error
}

func (m *mockCategoryRepo) FindAllCategories(_ context.Context) ([]models.Category, error) {
	return m.categories, m.err
}

func TestListTemplates(t *testing.T) {
	templateRepo := &mockTemplateRepo{templates: []models.Template{
		{Name: "Класика", Type: models.TemplateTypeUniversal},
		{Name: "Балони", Type: models.TemplateTypeBirthday},
	}}
	categoryRepo := &mockCategoryRepo{categories: []models.Category{{Name: "Универсални"}}}
	svc := NewTemplateService(templateRepo, categoryRepo)

	t.Run("returns templates, categories and paging info", func(t *testing.T) {
		listing, err := svc.ListTemplates(context.Background(), queryparams.ListParams{Limit: 10, Skip: 10})
		require.NoError(t, err)

		assert.Len(t, listing.Templates, 2)
		assert.Len(t, listing.Categories, 1)
		assert.Equal(t, int64(2), listing.Total)
		assert.Equal(t, 2, listing.CurrentPage)
		assert.Equal(t, 10, listing.PageSize)
	})

	t.Run("normalizes out-of-range params before querying", func(t *testing.T) {
		_, err := svc.ListTemplates(context.Background(), queryparams.ListParams{Limit: -1, Skip: -5, Type: "BIRTHDAY"})
		require.NoError(t, err)

		assert.Equal(t, queryparams.DefaultLimit, templateRepo.lastParams.Limit)
		assert.Equal(t, 0, templateRepo.lastParams.Skip)
		assert.Equal(t, "BIRTHDAY", templateRepo.lastParams.Type)
	})

	t.Run("propagates repository errors", func(t *testing.T) {
		broken := NewTemplateService(&mockTemplateRepo{err: errors.New("db down")}, categoryRepo)
		_, err := broken.ListTemplates(context.Background(), queryparams.ListParams{})
		assert.Error(t, err)
	})
}

// Компилаторна проверка, че mock-овете изпълняват интерфейсите.
var (
	_ repositories.ITemplateRepository = (*mockTemplateRepo)(nil)
	_ repositories.ICategoryRepository = (*mockCategoryRepo)(nil)
)
