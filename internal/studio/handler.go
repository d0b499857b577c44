package studio

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/premiumparfumes/storefront-backend/internal/genai"
	"github.com/premiumparfumes/storefront-backend/internal/videojob"
)

type Handler struct {
	service *Service
}

type imageRequest struct {
	Prompt      string `json:"prompt"`
	AspectRatio string `json:"aspectRatio"`
	ImageSize   string `json:"imageSize"`
}

type editRequest struct {
	ImageData string `json:"imageData"`
	Prompt    string `json:"prompt"`
}

type videoRequest struct {
	Prompt      string `json:"prompt"`
	ImageData   string `json:"imageData"`
	AspectRatio string `json:"aspectRatio"`
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/v1/studio/image", h.generateImage)
	app.Post("/api/v1/studio/image/edit", h.editImage)
	app.Post("/api/v1/studio/video", h.generateVideo)
}

func (h *Handler) generateImage(c *fiber.Ctx) error {
	req := new(imageRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	url, err := h.service.GenerateImage(c.UserContext(), req.Prompt, req.AspectRatio, req.ImageSize)
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"imageUrl": url})
}

func (h *Handler) editImage(c *fiber.Ctx) error {
	req := new(editRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	url, err := h.service.EditImage(c.UserContext(), req.ImageData, req.Prompt)
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"imageUrl": url})
}

func (h *Handler) generateVideo(c *fiber.Ctx) error {
	req := new(videoRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	url, err := h.service.GenerateVideo(c.UserContext(), req.Prompt, req.ImageData, req.AspectRatio)
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"videoUrl": url})
}

func (h *Handler) errorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ErrEmptyPrompt), errors.Is(err, ErrBadImageData):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	case errors.Is(err, videojob.ErrTimedOut):
		// distinct from a job-reported failure
		return c.Status(fiber.StatusGatewayTimeout).JSON(fiber.Map{"kind": "timed_out", "message": err.Error()})
	case errors.Is(err, genai.ErrKeyNotFound):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"kind": "key_not_found", "message": err.Error()})
	default:
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"kind": "failed", "message": err.Error()})
	}
}
