package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConsentTestApp() *fiber.App {
	app := fiber.New()
	h := NewCookieConsentHandler()
	app.Get("/api/cookie-consent", h.GetConsent)
	app.Post("/api/cookie-consent", h.SetConsent)
	return app
}

func TestCookieConsent(t *testing.T) {
	app := newConsentTestApp()

	t.Run("accepted consent sets a long-lived cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/cookie-consent",
			strings.NewReader("consent=accepted"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var consentCookie *http.Cookie
		for _, cookie := range resp.Cookies() {
			if cookie.Name == "cookieConsent" {
				consentCookie = cookie
			}
		}
		require.NotNil(t, consentCookie)
		assert.Equal(t, "accepted", consentCookie.Value)
		assert.True(t, consentCookie.HttpOnly)
	})

	t.Run("other values do not set the cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/cookie-consent",
			strings.NewReader("consent=rejected"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		for _, cookie := range resp.Cookies() {
			assert.NotEqual(t, "cookieConsent", cookie.Name)
		}
	})

	t.Run("state endpoint reflects the cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/cookie-consent", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		parsed := decodeBody(t, resp)
		assert.Equal(t, false, parsed["cookieConsent"])

		req = httptest.NewRequest(http.MethodGet, "/api/cookie-consent", nil)
		req.AddCookie(&http.Cookie{Name: "cookieConsent", Value: "accepted"})
		resp, err = app.Test(req)
		require.NoError(t, err)
		parsed = decodeBody(t, resp)
		assert.Equal(t, true, parsed["cookieConsent"])
	})
}
