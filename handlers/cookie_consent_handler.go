// handlers/cookie_consent_handler.go
package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	consentCookieName   = "cookieConsent"
	consentAccepted     = "accepted"
	consentCookieMaxAge = 365 * 24 * time.Hour
)

// CookieConsentHandler пази избора на потребителя за бисквитки.
type CookieConsentHandler struct{}

// NewCookieConsentHandler създава нов CookieConsentHandler.
func NewCookieConsentHandler() *CookieConsentHandler {
	return &CookieConsentHandler{}
}

// GetConsent връща дали потребителят вече е приел бисквитките.
func (h *CookieConsentHandler) GetConsent(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"cookieConsent": c.Cookies(consentCookieName) == consentAccepted,
	})
}

// SetConsent записва приет consent като httpOnly бисквитка за една година.
func (h *CookieConsentHandler) SetConsent(c *fiber.Ctx) error {
	if c.FormValue("consent") == consentAccepted {
		c.Cookie(&fiber.Cookie{
			Name:     consentCookieName,
			Value:    consentAccepted,
			Path:     "/",
			HTTPOnly: true,
			Secure:   true,
			SameSite: "Lax",
			Expires:  time.Now().Add(consentCookieMaxAge),
		})
	}
	return c.JSON(fiber.Map{"success": true})
}
