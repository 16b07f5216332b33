package configs

import (
	"time"

	"github.com/gofiber/fiber/v2/middleware/session"
)

var sessionStore *session.Store

// SetupSession създава session store-а на приложението.
// Сесията носи състоянието на wizard-а и cookie consent флага,
// затова expiry-то е достатъчно дълго за една започната картичка.
func SetupSession() *session.Store {
	if sessionStore != nil {
		return sessionStore
	}
	sessionStore = session.New(session.Config{
		Expiration:     24 * time.Hour,
		KeyLookup:      "cookie:kartichka_session",
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})
	return sessionStore
}
