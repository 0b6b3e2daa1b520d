package routes

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estate-desk/contact_intake/internal/config"
	"github.com/estate-desk/contact_intake/internal/logging"
	"github.com/estate-desk/contact_intake/web"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New(fiber.Config{Views: web.NewEngine()})
	err := Setup(app, Deps{Cfg: config.Config{AppEnv: "test"}, Logger: logging.Discard()})
	require.NoError(t, err)
	return app
}

func request(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, string) {
	t.Helper()
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestSetupRequiresBackingServicesOutsideDev(t *testing.T) {
	app := fiber.New()
	err := Setup(app, Deps{Cfg: config.Config{AppEnv: "production"}, Logger: logging.Discard()})
	require.ErrorContains(t, err, "database is required")
}

func TestHealthWithoutBackingServices(t *testing.T) {
	app := newTestApp(t)

	resp, body := request(t, app, httptest.NewRequest(fiber.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var payload struct {
		Status map[string]string `json:"status"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &payload))
	assert.Equal(t, statusDisabled, payload.Status["postgres"])
	assert.Equal(t, statusDisabled, payload.Status["redis"])
}

func TestPingEchoesRequestID(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(fiber.MethodGet, "/api/v1/ping", nil)
	req.Header.Set("X-Request-ID", "ping-1")
	resp, body := request(t, app, req)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `"request_id":"ping-1"`)
}

func TestSubmitSearchAndMetrics(t *testing.T) {
	app := newTestApp(t)

	form := url.Values{
		"first_name": {"Jane"},
		"last_name":  {"Doe"},
		"email":      {"jane@doe.com"},
		"mobile":     {"9876543210"},
		"location":   {"Austin"},
	}
	req := httptest.NewRequest(fiber.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	resp, _ := request(t, app, req)
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	form.Set("first_name", "J4ne")
	req = httptest.NewRequest(fiber.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	resp, body := request(t, app, req)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, body, "First name should not contain numbers.")

	// The original listing route accepted POST as well.
	resp, body = request(t, app, httptest.NewRequest(fiber.MethodPost, "/data?search=DOE", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "jane@doe.com")
	assert.Equal(t, 1, strings.Count(body, "jane@doe.com"))

	_, body = request(t, app, httptest.NewRequest(fiber.MethodGet, "/metrics", nil))
	assert.Contains(t, body, `contact_submissions_total{outcome="stored"} 1`)
	assert.Contains(t, body, `contact_submissions_total{outcome="first_name_digits"} 1`)
	assert.Contains(t, body, "contact_searches_total 1")
}
