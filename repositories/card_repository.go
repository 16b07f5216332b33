// repositories/card_repository.go
package repositories

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"kartichka.link/configs/configslog"
	"kartichka.link/models"
)

// ICardRepository е интерфейсът за работа с картички в базата.
type ICardRepository interface {
	CreateCard(ctx context.Context, card *models.Card) error
	FindCardBySlug(ctx context.Context, slug string) (*models.Card, error)
}

// CardRepository имплементира ICardRepository върху GORM.
type CardRepository struct {
	db *gorm.DB
}

// NewCardRepository създава ново хранилище за картички.
func NewCardRepository(db *gorm.DB) ICardRepository {
	return &CardRepository{db: db}
}

// CreateCard записва финализирана картичка. Нарушен външен ключ към
// шаблона се връща като ErrTemplateReference.
func (r *CardRepository) CreateCard(ctx context.Context, card *models.Card) error {
	err := r.db.WithContext(ctx).Create(card).Error
	if err != nil {
		err = classifyConstraintError(err)
		if !errors.Is(err, ErrTemplateReference) {
			configslog.Log.Error("CardRepository.CreateCard: DB error",
				zap.String("card_uuid", card.CardUUID), zap.Error(err))
		}
		return err
	}
	return nil
}

// FindCardBySlug намира картичка по публичния ѝ slug (с шаблона).
func (r *CardRepository) FindCardBySlug(ctx context.Context, slug string) (*models.Card, error) {
	var card models.Card
	err := r.db.WithContext(ctx).Preload("Template").Where("slug = ?", slug).First(&card).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		configslog.Log.Error("CardRepository.FindCardBySlug: DB error",
			zap.String("slug", slug), zap.Error(err))
		return nil, err
	}
	return &card, nil
}

// Проверка за съответствие с интерфейса
var _ ICardRepository = (*CardRepository)(nil)
