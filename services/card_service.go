// services/card_service.go
package services

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"go.uber.org/zap"

	"kartichka.link/configs/configslog"
	"kartichka.link/models"
	"kartichka.link/pkg/validation"
	"kartichka.link/repositories"
)

// Локализирани съобщения на потока за изпращане.
const (
	MsgMissingIntroFields = "Моля, попълнете всички полета."
	MsgMissingTemplate    = "Моля, изберете шаблон за картичката."
	MsgTemplateGone       = "Избраният шаблон не съществува. Моля, изберете валиден шаблон."
	MsgCreationFailed     = "Възникна грешка при създаването на картичката."
)

// SubmissionFailure е структуриран неуспех на изпращането: HTTP клас,
// локализирано съобщение и (за валидационни грешки) стъпката, на която
// потребителят трябва да бъде върнат.
type SubmissionFailure struct {
	Status    int    `json:"-"`
	Message   string `json:"error"`
	ErrorStep int    `json:"errorStep,omitempty"`
}

func (f *SubmissionFailure) Error() string { return f.Message }

// CardMeta е сериализираната мета информация от формата (ключ "card").
type CardMeta struct {
	Title       string  `json:"title"`
	Sender      string  `json:"sender"`
	Receiver    string  `json:"receiver"`
	Description string  `json:"description"`
	TemplateID  int     `json:"templateId"`
	Slug        string  `json:"slug"`
	AudioURL    *string `json:"audioUrl"`
	CardUUID    string  `json:"cardUuid"`
}

// PhysicalCopyRequest са данните на заявителя на физическо копие.
type PhysicalCopyRequest struct {
	Name    string
	Email   string
	Phone   string
	Address string
	Comment string
}

// SubmissionInput е целият вход на финалното изпращане.
type SubmissionInput struct {
	Meta CardMeta

	// Audio е прикаченият запис; nil, ако няма такъв.
	Audio     io.Reader
	AudioSize int64

	// PhysicalCopy е non-nil само когато формата изрично е заявила
	// физическо копие (поле physical-copy-requested-value == "true").
	PhysicalCopy *PhysicalCopyRequest

	// Origin е схемата+хостът на заявката, от които се строи публичният линк.
	Origin string
}

// ICardService е интерфейсът на потока за създаване на картички.
type ICardService interface {
	CreateCard(ctx context.Context, input SubmissionInput) (*models.Card, error)
	GetCardBySlug(ctx context.Context, slug string) (*models.Card, error)
}

// CardService имплементира ICardService.
type CardService struct {
	repo    repositories.ICardRepository
	storage IStorageService
	mail    IMailService
}

// NewCardService създава нов CardService. Зависимостите се подават
// явно, за да може слоят да се тества с mock-ове.
func NewCardService(repo repositories.ICardRepository, storage IStorageService, mail IMailService) ICardService {
	return &CardService{repo: repo, storage: storage, mail: mail}
}

// CreateCard изпълнява финалното изпращане: валидация на границата на
// доверие, качване на записа (ако има), запис в базата и — само при
// заявено физическо копие — известие по имейл.
//
// Редът е строг: качването предхожда записа (за да влезе финалният URL
// в реда), записът предхожда писмото (писмо без създадена картичка няма
// смисъл). Провал на писмото НЕ проваля изпращането — картичката вече е
// трайно създадена.
func (s *CardService) CreateCard(ctx context.Context, input SubmissionInput) (*models.Card, error) {
	meta := input.Meta

	// Повторни проверки на стъпка 1 и 2 на границата на доверие.
	// Същите функции като в wizard-а, за да няма разминаване на правилата.
	if result := validation.ValidateIntroStep(validation.IntroStepData{
		Receiver:    meta.Receiver,
		Sender:      meta.Sender,
		Title:       meta.Title,
		Description: meta.Description,
	}); !result.Success {
		return nil, &SubmissionFailure{Status: fiber.StatusBadRequest, Message: MsgMissingIntroFields, ErrorStep: 1}
	}
	if result := validation.ValidateDesignStep(validation.DesignStepData{TemplateID: meta.TemplateID}); !result.Success {
		return nil, &SubmissionFailure{Status: fiber.StatusBadRequest, Message: MsgMissingTemplate, ErrorStep: 2}
	}

	// Сървърът допълва идентификаторите, ако клиентът не ги е пратил.
	if meta.CardUUID == "" {
		meta.CardUUID = uuid.NewString()
	}
	if meta.Slug == "" {
		suffix := meta.CardUUID
		if len(suffix) > 8 {
			suffix = suffix[:8]
		}
		meta.Slug = slug.Make(meta.Title) + "-" + suffix
	}

	card := &models.Card{
		Title:       strings.TrimSpace(meta.Title),
		Sender:      strings.TrimSpace(meta.Sender),
		Receiver:    strings.TrimSpace(meta.Receiver),
		Description: strings.TrimSpace(meta.Description),
		Slug:        meta.Slug,
		AudioURL:    meta.AudioURL,
		CardUUID:    meta.CardUUID,
		TemplateID:  uint(meta.TemplateID),
	}

	// Качването строго предхожда записа в базата.
	if input.Audio != nil {
		stored, err := s.storage.Store(ctx, StoreInput{
			File:     input.Audio,
			Size:     input.AudioSize,
			MimeType: AudioMimeType,
			UUID:     meta.CardUUID,
		})
		if err != nil {
			// Без записа не създаваме частична картичка.
			configslog.Log.Error("CardService.CreateCard: качването на записа се провали",
				zap.String("card_uuid", meta.CardUUID), zap.Error(err))
			return nil, &SubmissionFailure{Status: fiber.StatusInternalServerError, Message: MsgCreationFailed}
		}
		card.AudioURL = &stored.URL
	}

	if err := s.repo.CreateCard(ctx, card); err != nil {
		if errors.Is(err, repositories.ErrTemplateReference) {
			return nil, &SubmissionFailure{Status: fiber.StatusBadRequest, Message: MsgTemplateGone}
		}
		configslog.Log.Error("CardService.CreateCard: записът в базата се провали",
			zap.String("card_uuid", meta.CardUUID), zap.Error(err))
		return nil, &SubmissionFailure{Status: fiber.StatusInternalServerError, Message: MsgCreationFailed}
	}

	// Известие — само при изрично заявено физическо копие.
	if input.PhysicalCopy != nil {
		cardURL := strings.TrimRight(input.Origin, "/") + "/card/" + card.Slug
		if _, err := s.mail.SendCardNotification(ctx, CardNotification{
			To:            input.PhysicalCopy.Email,
			RecipientName: card.Receiver,
			SenderName:    card.Sender,
			Title:         card.Title,
			Description:   card.Description,
			CardURL:       cardURL,
			Phone:         input.PhysicalCopy.Phone,
			Address:       input.PhysicalCopy.Address,
			Comment:       input.PhysicalCopy.Comment,
		}); err != nil {
			// Fire-and-forget: картичката вече е създадена, грешката само се логва.
			configslog.Log.Error("CardService.CreateCard: известието не беше изпратено",
				zap.String("card_uuid", card.CardUUID), zap.Error(err))
		}
	}

	configslog.SLog.Infof("Картичка %s е създадена успешно (slug: %s)", card.CardUUID, card.Slug)
	return card, nil
}

// GetCardBySlug връща картичка за публичната ѝ страница.
func (s *CardService) GetCardBySlug(ctx context.Context, slug string) (*models.Card, error) {
	return s.repo.FindCardBySlug(ctx, slug)
}

// Проверка за съответствие с интерфейса
var _ ICardService = (*CardService)(nil)
