package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/estate-desk/contact_intake/internal/contact"
)

// RegisterContactPages wires the HTML form and listing pages.
func RegisterContactPages(r fiber.Router, h *contact.Handler) {
	r.Get("/", h.ShowForm)
	r.Post("/", h.SubmitForm)
	r.Get("/data", h.ShowListing)
	r.Post("/data", h.ShowListing)
}

// RegisterContactAPI wires the JSON contact endpoints.
func RegisterContactAPI(r fiber.Router, h *contact.Handler) {
	r.Get("/contacts", h.List)
	r.Post("/contacts", h.Create)
}
