package routes

import (
	"github.com/gofiber/fiber/v2"

	"kartichka.link/handlers"
)

// registerAPIRoutes свързва сесийния wizard API и cookie consent.
func registerAPIRoutes(app *fiber.App, wizardHandler *handlers.WizardHandler, consentHandler *handlers.CookieConsentHandler) {
	api := app.Group("/api")

	wizardGroup := api.Group("/wizard")
	wizardGroup.Get("/", wizardHandler.GetState)
	wizardGroup.Put("/draft", wizardHandler.UpdateDraft)
	wizardGroup.Post("/step", wizardHandler.HandleStepEvent)
	wizardGroup.Delete("/", wizardHandler.ResetState)

	api.Get("/cookie-consent", consentHandler.GetConsent)
	api.Post("/cookie-consent", consentHandler.SetConsent)
}
