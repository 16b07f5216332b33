package routes

import (
	"github.com/gofiber/fiber/v2"

	"kartichka.link/handlers"
)

// registerCardRoutes свързва потока за създаване и публичния изглед.
func registerCardRoutes(app *fiber.App, h *handlers.CardHandler) {
	card := app.Group("/card")

	// Данни за стъпка 2 (шаблони, категории, странициране).
	card.Get("/create", h.ListTemplates)
	// Финално изпращане на wizard-а (multipart).
	card.Post("/create", h.CreateCard)
	// Публичната страница на картичка. След /create, за да не го засенчи.
	card.Get("/:slug", h.ShowCard)
}
