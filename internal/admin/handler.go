package admin

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

type Handler struct {
	service   *Service
	jwtSecret string
}

type signInRequest struct {
	Passphrase string `json:"passphrase"`
}

func NewHandler(service *Service, jwtSecret string) *Handler {
	return &Handler{service: service, jwtSecret: jwtSecret}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/v1/admin/sign-in", h.signIn)
}

func (h *Handler) signIn(c *fiber.Ctx) error {
	payload := new(signInRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	if err := h.service.Authenticate(payload.Passphrase); err != nil {
		if err == ErrNotConfigured {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"message": "admin access is not configured"})
		}
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid passphrase"})
	}

	claims := jwt.MapClaims{
		"role": "admin",
		"exp":  time.Now().Add(72 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(h.jwtSecret))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to generate token"})
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"token":   signed,
	})
}
