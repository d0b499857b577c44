package contact

import (
	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/contacts", h.getContacts)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Put("/api/v1/contacts", h.putContacts)
}

func (h *Handler) getContacts(c *fiber.Ctx) error {
	return c.JSON(h.service.Get())
}

func (h *Handler) putContacts(c *fiber.Ctx) error {
	info := new(Info)
	if err := c.BodyParser(info); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if err := h.service.Set(*info); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(info)
}
