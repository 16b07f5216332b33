// handlers/card_handler.go
package handlers

import (
	"encoding/json"
	"errors"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"kartichka.link/configs/configslog"
	"kartichka.link/pkg/queryparams"
	"kartichka.link/pkg/wizard"
	"kartichka.link/repositories"
	"kartichka.link/services"
)

// Ключове на multipart формата на финалното изпращане.
const (
	formKeyCard             = "card"
	formKeyRecord           = "record"
	formKeyPhysicalRequest  = "physical-copy-requested-value"
	formKeyPhysicalName     = "physical-copy-name"
	formKeyPhysicalEmail    = "physical-copy-email"
	formKeyPhysicalPhone    = "physical-copy-phone"
	formKeyPhysicalAddress  = "physical-copy-address"
	formKeyPhysicalComment  = "physical-copy-comment"
	physicalRequestedMarker = "true"
)

// CardHandler обслужва потока за създаване и публичния изглед на картички.
type CardHandler struct {
	cardService     services.ICardService
	templateService services.ITemplateService
	wizardStore     *wizard.Store
}

// NewCardHandler създава нов CardHandler.
func NewCardHandler(cardService services.ICardService, templateService services.ITemplateService, wizardStore *wizard.Store) *CardHandler {
	return &CardHandler{
		cardService:     cardService,
		templateService: templateService,
		wizardStore:     wizardStore,
	}
}

// ListTemplates връща страницата с данни за стъпка 2: шаблони (по избор
// по тип), категории, общ брой и текуща страница.
func (h *CardHandler) ListTemplates(c *fiber.Ctx) error {
	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		configslog.Log.Warn("ListTemplates: неуспешен разбор на query параметрите", zap.Error(err))
		params = queryparams.ListParams{}
	}

	listing, err := h.templateService.ListTemplates(c.UserContext(), params)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Шаблоните не могат да бъдат заредени.",
		})
	}
	return c.JSON(listing)
}

// CreateCard е финалното изпращане на wizard-а: multipart форма с мета
// данни, опционален аудио запис и опционална заявка за физическо копие.
func (h *CardHandler) CreateCard(c *fiber.Ctx) error {
	rawMeta := c.FormValue(formKeyCard)

	var meta services.CardMeta
	if err := json.Unmarshal([]byte(rawMeta), &meta); err != nil {
		configslog.Log.Warn("CreateCard: неуспешен разбор на мета данните", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Невалидни данни на формата.",
		})
	}

	// Флагът за изпращане живее в състоянието на сесията и се вдига за
	// цялата операция, успешна или не.
	state, stateErr := h.wizardStore.Load(c)
	if stateErr == nil {
		state.Stepper.IsSubmitting = true
		_ = h.wizardStore.Save(c, state)
	}
	clearSubmitting := func() {
		if stateErr != nil {
			return
		}
		state.Stepper.IsSubmitting = false
		_ = h.wizardStore.Save(c, state)
	}

	input := services.SubmissionInput{Meta: meta, Origin: c.BaseURL()}

	if fileHeader, err := c.FormFile(formKeyRecord); err == nil && fileHeader != nil {
		file, openErr := fileHeader.Open()
		if openErr != nil {
			clearSubmitting()
			configslog.Log.Error("CreateCard: записът не може да бъде отворен", zap.Error(openErr))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"cardMeta": meta,
				"error":    services.MsgCreationFailed,
			})
		}
		defer func(f multipart.File) { _ = f.Close() }(file)
		input.Audio = file
		input.AudioSize = fileHeader.Size
	}

	if c.FormValue(formKeyPhysicalRequest) == physicalRequestedMarker {
		input.PhysicalCopy = &services.PhysicalCopyRequest{
			Name:    c.FormValue(formKeyPhysicalName),
			Email:   c.FormValue(formKeyPhysicalEmail),
			Phone:   c.FormValue(formKeyPhysicalPhone),
			Address: c.FormValue(formKeyPhysicalAddress),
			Comment: c.FormValue(formKeyPhysicalComment),
		}
	}

	card, err := h.cardService.CreateCard(c.UserContext(), input)
	if err != nil {
		clearSubmitting()

		var failure *services.SubmissionFailure
		if errors.As(err, &failure) {
			if failure.ErrorStep > 0 && stateErr == nil {
				state.Stepper.CurrentStep = failure.ErrorStep
				_ = h.wizardStore.Save(c, state)
			}
			body := fiber.Map{"cardMeta": meta, "error": failure.Message}
			if failure.ErrorStep > 0 {
				body["errorStep"] = failure.ErrorStep
			}
			return c.Status(failure.Status).JSON(body)
		}

		configslog.Log.Error("CreateCard: неочаквана грешка", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"cardMeta": meta,
			"error":    services.MsgCreationFailed,
		})
	}

	// Успех: черновата е изчерпана, сесийното състояние се нулира.
	_ = h.wizardStore.Clear(c)

	return c.JSON(fiber.Map{"success": true, "card": card})
}

// ShowCard връща картичка по публичния ѝ slug.
func (h *CardHandler) ShowCard(c *fiber.Ctx) error {
	slug := c.Params("slug")

	card, err := h.cardService.GetCardBySlug(c.UserContext(), slug)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Картичката не е намерена.",
			})
		}
		configslog.Log.Error("ShowCard: грешка при четене", zap.String("slug", slug), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Картичката не може да бъде заредена.",
		})
	}

	return c.JSON(fiber.Map{"success": true, "card": card})
}
