package sitedata

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/premiumparfumes/storefront-backend/internal/translations"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/site-data", h.getSiteData)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Put("/api/v1/site-data", h.putSiteData)
}

func (h *Handler) getSiteData(c *fiber.Ctx) error {
	return c.JSON(h.service.Load(c.Context()))
}

func (h *Handler) putSiteData(c *fiber.Ctx) error {
	snap := new(Snapshot)
	if err := c.BodyParser(snap); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	saved, err := h.service.Save(c.Context(), *snap)
	switch {
	case errors.Is(err, ErrStaleRevision):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "snapshot is stale, reload and retry"})
	case errors.Is(err, translations.ErrKeyMismatch):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": err.Error()})
	case err != nil:
		// local state is saved; only the remote push failed. single notice,
		// no automatic retry — resending the snapshot is idempotent.
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"message":  "remote sync failed, changes are visible for this session only",
			"snapshot": saved,
		})
	}
	return c.JSON(saved)
}
