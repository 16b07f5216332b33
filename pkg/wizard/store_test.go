package wizard

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// тестово приложение, което чете/мести/нулира състоянието през Store.
func newStoreTestApp(t *testing.T) *fiber.App {
	t.Helper()

	store := NewStore(session.New())
	app := fiber.New()

	app.Get("/state", func(c *fiber.Ctx) error {
		st, err := store.Load(c)
		require.NoError(t, err)
		require.NoError(t, store.Save(c, st))
		return c.JSON(st)
	})
	app.Post("/advance", func(c *fiber.Ctx) error {
		st, err := store.Load(c)
		require.NoError(t, err)
		st.Card.Title = "Поздрав"
		st.Stepper.CurrentStep++
		require.NoError(t, store.Save(c, st))
		return c.JSON(st)
	})
	app.Post("/reset", func(c *fiber.Ctx) error {
		require.NoError(t, store.Clear(c))
		return c.SendStatus(fiber.StatusNoContent)
	})
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, target string, cookies []*http.Cookie) *http.Response {
	t.Helper()

	req := httptest.NewRequest(method, target, nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func TestStoreRoundTrip(t *testing.T) {
	app := newStoreTestApp(t)

	// Първата заявка създава прясно състояние и сесийна бисквитка.
	resp := doRequest(t, app, http.MethodGet, "/state", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	cookies := resp.Cookies()
	require.NotEmpty(t, cookies)

	// Промяната се пази между заявките в същата сесия.
	resp = doRequest(t, app, http.MethodPost, "/advance", cookies)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doRequest(t, app, http.MethodGet, "/state", cookies)
	var st State
	decodeJSON(t, resp, &st)
	assert.Equal(t, 2, st.Stepper.CurrentStep)
	assert.Equal(t, "Поздрав", st.Card.Title)

	// Друга сесия не вижда нищо от първата.
	resp = doRequest(t, app, http.MethodGet, "/state", nil)
	var other State
	decodeJSON(t, resp, &other)
	assert.Equal(t, StepIntro, other.Stepper.CurrentStep)
	assert.Empty(t, other.Card.Title)

	// Clear връща началното състояние.
	doRequest(t, app, http.MethodPost, "/reset", cookies)
	resp = doRequest(t, app, http.MethodGet, "/state", cookies)
	decodeJSON(t, resp, &st)
	assert.Equal(t, StepIntro, st.Stepper.CurrentStep)
	assert.Empty(t, st.Card.Title)
}
