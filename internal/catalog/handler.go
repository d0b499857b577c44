package catalog

import (
	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/perfumes", h.getPerfumes)
	app.Get("/api/v1/perfumes/:id", h.getPerfume)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/v1/perfumes", h.createPerfume)
	app.Put("/api/v1/perfumes/:id", h.updatePerfume)
	app.Delete("/api/v1/perfumes/:id", h.deletePerfume)
}

func (h *Handler) getPerfumes(c *fiber.Ctx) error {
	if q := c.Query("q"); q != "" {
		return c.JSON(h.service.Search(q))
	}
	return c.JSON(h.service.List())
}

func (h *Handler) getPerfume(c *fiber.Ctx) error {
	p, err := h.service.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("Perfume not found")
	}
	return c.JSON(p)
}

// validatePerfumePayload only checks the category enum. Name and description
// may be empty: the admin editor creates placeholder items and fills them in
// afterwards.
func validatePerfumePayload(p *Perfume) map[string]string {
	errs := map[string]string{}
	if p.Category != "" {
		valid := false
		for _, c := range AllowedCategories {
			if p.Category == c {
				valid = true
				break
			}
		}
		if !valid {
			errs["category"] = "invalid category"
		}
	}
	return errs
}

func (h *Handler) createPerfume(c *fiber.Ctx) error {
	p := new(Perfume)
	if err := c.BodyParser(p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	if ves := validatePerfumePayload(p); len(ves) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ves})
	}

	created, err := h.service.Create(*p)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) updatePerfume(c *fiber.Ctx) error {
	p := new(Perfume)
	if err := c.BodyParser(p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	if ves := validatePerfumePayload(p); len(ves) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ves})
	}

	updated, err := h.service.Update(c.Params("id"), *p)
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("Perfume not found")
	}
	return c.JSON(updated)
}

func (h *Handler) deletePerfume(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Params("id")); err != nil {
		return c.Status(fiber.StatusNotFound).SendString("Perfume not found")
	}
	return c.SendString("Perfume deleted")
}
