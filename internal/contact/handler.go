package contact

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

const (
	formView    = "form"
	listingView = "data"
	listingPath = "/data"
)

// Handler exposes the contact form, the listing page and the JSON API.
type Handler struct {
	service *Service
}

// NewHandler constructs a contact HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// ShowForm renders the empty submission form.
func (h *Handler) ShowForm(c *fiber.Ctx) error {
	return c.Render(formView, fiber.Map{"Error": ""})
}

// SubmitForm stores a valid submission and redirects to the listing, or
// re-renders the form with the validation message.
func (h *Handler) SubmitForm(c *fiber.Ctx) error {
	var in Input
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	_, err := h.service.Submit(c.UserContext(), in)
	var verr ValidationError
	if errors.As(err, &verr) {
		return c.Status(http.StatusUnprocessableEntity).Render(formView, fiber.Map{"Error": verr.Message})
	}
	if err != nil {
		return err
	}
	return c.Redirect(listingPath, http.StatusSeeOther)
}

// ShowListing renders stored contacts, filtered by the search query parameter when present.
func (h *Handler) ShowListing(c *fiber.Ctx) error {
	term := c.Query("search")
	contacts, err := h.service.Search(c.UserContext(), term)
	if err != nil {
		return err
	}
	return c.Render(listingView, fiber.Map{"Contacts": contacts, "Search": term})
}

type errorResponse struct {
	Error string `json:"error"`
}

// Create accepts a JSON submission.
func (h *Handler) Create(c *fiber.Ctx) error {
	var in Input
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	contact, err := h.service.Submit(c.UserContext(), in)
	var verr ValidationError
	if errors.As(err, &verr) {
		return c.Status(http.StatusUnprocessableEntity).JSON(errorResponse{Error: verr.Message})
	}
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(contact)
}

// List returns stored contacts as JSON, honouring the search query parameter.
func (h *Handler) List(c *fiber.Ctx) error {
	contacts, err := h.service.Search(c.UserContext(), c.Query("search"))
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"contacts": contacts})
}
