package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"

	"kartichka.link/handlers"
)

// Handlers групира всички handler-и, които router-ът свързва.
type Handlers struct {
	Card    *handlers.CardHandler
	Wizard  *handlers.WizardHandler
	Consent *handlers.CookieConsentHandler
}

// SetupRoutes регистрира всички маршрути и общите middleware-и.
func SetupRoutes(app *fiber.App, h Handlers) {
	app.Use(recoverMiddleware.New()) // Прихващане на panic
	app.Use(logger.New())            // Лог на заявките

	registerCardRoutes(app, h.Card)
	registerAPIRoutes(app, h.Wizard, h.Consent)

	// Неизвестните маршрути се отговарят последни.
	app.Use(notFoundHandler)
}

func notFoundHandler(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Ресурсът не е намерен"})
}
