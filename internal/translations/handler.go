package translations

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
	app.Get("/api/v1/translations", h.getTranslations)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Put("/api/v1/translations", h.putTranslations)
}

func (h *Handler) getTranslations(c *fiber.Ctx) error {
	if lang := c.Query("lang"); lang != "" {
		strs, err := h.service.GetLang(lang)
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "unknown language"})
		}
		return c.JSON(strs)
	}
	return c.JSON(h.service.Get())
}

func (h *Handler) putTranslations(c *fiber.Ctx) error {
	b := Bundle{}
	if err := c.BodyParser(&b); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	if err := h.service.Replace(b); err != nil {
		if errors.Is(err, ErrKeyMismatch) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(b)
}
