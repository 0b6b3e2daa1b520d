package contact

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

	"github.com/estate-desk/contact_intake/web"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	h := NewHandler(NewService(NewMemoryRepository(), nil))

	app := fiber.New(fiber.Config{Views: web.NewEngine()})
	app.Get("/", h.ShowForm)
	app.Post("/", h.SubmitForm)
	app.Get("/data", h.ShowListing)
	app.Get("/api/v1/contacts", h.List)
	app.Post("/api/v1/contacts", h.Create)
	return app
}

func formBody(in Input) string {
	return url.Values{
		"first_name": {in.FirstName},
		"last_name":  {in.LastName},
		"email":      {in.Email},
		"mobile":     {in.Mobile},
		"location":   {in.Location},
	}.Encode()
}

func do(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, string) {
	t.Helper()
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func postForm(t *testing.T, app *fiber.App, in Input) (*http.Response, string) {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodPost, "/", strings.NewReader(formBody(in)))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	return do(t, app, req)
}

func TestShowForm(t *testing.T) {
	app := newTestApp(t)

	resp, body := do(t, app, httptest.NewRequest(fiber.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `name="first_name"`)
	assert.NotContains(t, body, `class="error"`)
}

func TestSubmitFormRedirectsAndLists(t *testing.T) {
	app := newTestApp(t)

	resp, _ := postForm(t, app, validInput())
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/data", resp.Header.Get(fiber.HeaderLocation))

	resp, body := do(t, app, httptest.NewRequest(fiber.MethodGet, "/data", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "jane@doe.com")
	assert.Contains(t, body, "9876543210")

	resp, body = do(t, app, httptest.NewRequest(fiber.MethodGet, "/data?search=doe", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "jane@doe.com")
	assert.Contains(t, body, `value="doe"`)

	_, body = do(t, app, httptest.NewRequest(fiber.MethodGet, "/data?search=zzz", nil))
	assert.NotContains(t, body, "jane@doe.com")
	assert.Contains(t, body, "No records found.")
}

func TestSubmitFormShowsValidationError(t *testing.T) {
	app := newTestApp(t)

	in := validInput()
	in.FirstName = "J4ne"
	resp, body := postForm(t, app, in)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, body, "First name should not contain numbers.")

	_, body = do(t, app, httptest.NewRequest(fiber.MethodGet, "/data", nil))
	assert.Contains(t, body, "No records found.")
}

func TestSubmitFormMissingFields(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(fiber.MethodPost, "/", strings.NewReader("first_name=Jane"))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	resp, body := do(t, app, req)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, body, "All fields are required.")
}

func TestAPICreateAndList(t *testing.T) {
	app := newTestApp(t)

	payload, err := json.Marshal(validInput())
	require.NoError(t, err)
	req := httptest.NewRequest(fiber.MethodPost, "/api/v1/contacts", strings.NewReader(string(payload)))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, body := do(t, app, req)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created Contact
	require.NoError(t, json.Unmarshal([]byte(body), &created))
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "Jane", created.FirstName)

	resp, body = do(t, app, httptest.NewRequest(fiber.MethodGet, "/api/v1/contacts?search=AUSTIN", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var listed struct {
		Contacts []Contact `json:"contacts"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &listed))
	assert.Equal(t, []Contact{created}, listed.Contacts)
}

func TestAPICreateValidationError(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(fiber.MethodPost, "/api/v1/contacts",
		strings.NewReader(`{"first_name":"Jane","last_name":"Doe","email":"jane@doe.com","mobile":"12345","location":"Austin"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, body := do(t, app, req)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.JSONEq(t, `{"error":"Mobile number must be exactly 10 digits."}`, body)
}

func TestSubmitFormKeepsEarlierRecordsIntact(t *testing.T) {
	app := newTestApp(t)

	resp, _ := postForm(t, app, validInput())
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	other := Input{FirstName: "Xxxx", LastName: "Yyy", Email: "qqqq@qqq.qqq", Mobile: "1111111111", Location: "Zzzzzz"}
	for i := 0; i < 5; i++ {
		resp, _ := postForm(t, app, other)
		require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	}

	resp, body := do(t, app, httptest.NewRequest(fiber.MethodGet, "/api/v1/contacts", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var listed struct {
		Contacts []Contact `json:"contacts"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &listed))
	require.Len(t, listed.Contacts, 6)
	assert.Equal(t, Contact{
		ID:        1,
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@doe.com",
		Mobile:    "9876543210",
		Location:  "Austin",
	}, listed.Contacts[0])

	_, body = do(t, app, httptest.NewRequest(fiber.MethodGet, "/data?search=austin", nil))
	assert.Contains(t, body, "jane@doe.com")
}
