package message

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/v1/messages", h.submitMessage)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/v1/messages", h.getMessages)
}

func (h *Handler) submitMessage(c *fiber.Ctx) error {
	m := new(Message)
	if err := c.BodyParser(m); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	created, err := h.service.Submit(c.UserContext(), *m)
	switch {
	case errors.Is(err, ErrEmptyMessage), errors.Is(err, ErrInvalidPhone):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	case err != nil && created.ID != 0:
		// stored but the channel forward failed; single notice, manual retry
		return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
			"message": "stored, but forwarding to the channel failed",
			"stored":  created,
		})
	case err != nil:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) getMessages(c *fiber.Ctx) error {
	return c.JSON(h.service.List())
}
