// handlers/wizard_handler.go
package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"kartichka.link/configs/configslog"
	"kartichka.link/pkg/validation"
	"kartichka.link/pkg/wizard"
)

// WizardHandler обслужва сесийното състояние на wizard-а: четене,
// обновяване на черновата и stepper транзиции.
type WizardHandler struct {
	store *wizard.Store
}

// NewWizardHandler създава нов WizardHandler.
func NewWizardHandler(store *wizard.Store) *WizardHandler {
	return &WizardHandler{store: store}
}

// stepRequest е тялото на POST /api/wizard/step.
type stepRequest struct {
	Event        string                       `json:"event"`
	PhysicalCopy *validation.PhysicalCopyData `json:"physicalCopy"`
}

// draftUpdateRequest е тялото на PUT /api/wizard/draft. Указателите
// различават "не е подадено" от празна стойност.
type draftUpdateRequest struct {
	Title       *string `json:"title"`
	Sender      *string `json:"sender"`
	Receiver    *string `json:"receiver"`
	Description *string `json:"description"`
	TemplateID  *int    `json:"templateId"`
	Slug        *string `json:"slug"`
	AudioURL    *string `json:"audioUrl"`
	CardUUID    *string `json:"cardUuid"`
	IsRendering *bool   `json:"isRendering"`
}

// GetState връща текущото състояние, създавайки ново при първа заявка.
func (h *WizardHandler) GetState(c *fiber.Ctx) error {
	state, err := h.store.Load(c)
	if err != nil {
		return h.stateError(c, err)
	}
	if err := h.store.Save(c, state); err != nil {
		return h.stateError(c, err)
	}
	return c.JSON(state)
}

// UpdateDraft слива подадените полета в черновата на сесията.
func (h *WizardHandler) UpdateDraft(c *fiber.Ctx) error {
	var req draftUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Невалидни данни на формата.",
		})
	}

	state, err := h.store.Load(c)
	if err != nil {
		return h.stateError(c, err)
	}

	if req.Title != nil {
		state.Card.Title = *req.Title
	}
	if req.Sender != nil {
		state.Card.Sender = *req.Sender
	}
	if req.Receiver != nil {
		state.Card.Receiver = *req.Receiver
	}
	if req.Description != nil {
		state.Card.Description = *req.Description
	}
	if req.TemplateID != nil {
		state.Card.TemplateID = *req.TemplateID
	}
	if req.Slug != nil {
		state.Card.Slug = *req.Slug
	}
	if req.AudioURL != nil {
		state.Card.AudioURL = req.AudioURL
	}
	if req.CardUUID != nil {
		state.Card.CardUUID = *req.CardUUID
	}
	if req.IsRendering != nil {
		state.Stepper.IsRendering = *req.IsRendering
	}

	if err := h.store.Save(c, state); err != nil {
		return h.stateError(c, err)
	}
	return c.JSON(state)
}

// HandleStepEvent изпълнява "next"/"prev"/"submit" върху състоянието.
func (h *WizardHandler) HandleStepEvent(c *fiber.Ctx) error {
	var req stepRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Невалидни данни на формата.",
		})
	}

	state, err := h.store.Load(c)
	if err != nil {
		return h.stateError(c, err)
	}

	result, err := wizard.HandleStepEvent(state, req.Event, state.Stepper.Steps, state.Stepper.InitialStep, req.PhysicalCopy)
	if err != nil {
		if errors.Is(err, wizard.ErrUnknownStepEvent) {
			// Нарушение на програмния контракт — логва се шумно.
			configslog.Log.Error("HandleStepEvent: непознато събитие",
				zap.String("event", req.Event), zap.Error(err))
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   fmt.Sprintf("Wrong event: %s", req.Event),
			})
		}
		return h.stateError(c, err)
	}

	if err := h.store.Save(c, state); err != nil {
		return h.stateError(c, err)
	}

	return c.JSON(fiber.Map{
		"success":          result.Success,
		"validationResult": result.ValidationResult,
		"errorMessage":     result.ErrorMessage,
		"state":            state,
	})
}

// ResetState нулира wizard-а (изоставен поток).
func (h *WizardHandler) ResetState(c *fiber.Ctx) error {
	if err := h.store.Clear(c); err != nil {
		return h.stateError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

func (h *WizardHandler) stateError(c *fiber.Ctx, err error) error {
	configslog.Log.Error("WizardHandler: грешка в сесийното състояние", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Състоянието на формата не е достъпно.",
	})
}
