package advisor

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/premiumparfumes/storefront-backend/internal/genai"
	"github.com/valyala/fasthttp"
)

type Handler struct {
	service *Service
}

type askRequest struct {
	SessionID string `json:"sessionId"`
	Lang      string `json:"lang"`
	Message   string `json:"message"`
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/v1/advisor/sessions", h.createSession)
	app.Get("/api/v1/advisor/sessions/:id", h.getSession)
	app.Post("/api/v1/advisor/recommend", h.recommend)
	app.Post("/api/v1/advisor/chat", h.chat)
	app.Post("/api/v1/advisor/concierge", h.concierge)
}

func (h *Handler) createSession(c *fiber.Ctx) error {
	lang := normalizeLang(c.Query("lang"))
	id := h.service.Transcripts.Create()
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"sessionId": id,
		"greeting":  h.service.Greeting(lang),
	})
}

func (h *Handler) getSession(c *fiber.Ctx) error {
	t, err := h.service.Transcripts.Get(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "session not found"})
	}
	return c.JSON(t)
}

func (h *Handler) recommend(c *fiber.Ctx) error {
	req := new(askRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	lang := normalizeLang(req.Lang)

	text, err := h.service.Recommend(c.UserContext(), lang, req.Message)
	if err != nil {
		return h.errorResponse(c, lang, err)
	}
	return c.JSON(fiber.Map{"text": text})
}

func (h *Handler) concierge(c *fiber.Ctx) error {
	req := new(askRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	lang := normalizeLang(req.Lang)

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = h.service.Transcripts.Create()
	}

	entry, err := h.service.Concierge(c.UserContext(), sessionID, lang, req.Message)
	if err != nil {
		return h.errorResponse(c, lang, err)
	}
	return c.JSON(fiber.Map{
		"sessionId": sessionID,
		"text":      entry.Text,
		"citations": entry.Citations,
	})
}

// chat streams the model reply as server-sent events, one delta per event,
// in emission order, followed by a done event with the full text.
func (h *Handler) chat(c *fiber.Ctx) error {
	req := new(askRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	lang := normalizeLang(req.Lang)

	// reject before the SSE response starts; inside the stream the status
	// line is already written
	if strings.TrimSpace(req.Message) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "message is required"})
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = h.service.Transcripts.Create()
	}

	service := h.service
	message := req.Message

	c.Set("Content-Type", "text/event-stream")
	c.Set("Cache-Control", "no-cache")
	c.Set("Connection", "keep-alive")
	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		entry, err := service.Chat(ctx, sessionID, lang, message, func(delta string) error {
			if err := writeEvent(w, "delta", fiber.Map{"text": delta}); err != nil {
				return err
			}
			return w.Flush()
		})
		if err != nil {
			kind := "error"
			if errors.Is(err, genai.ErrKeyNotFound) {
				kind = "key_not_found"
			}
			writeEvent(w, kind, fiber.Map{"message": err.Error()})
			w.Flush()
			return
		}
		writeEvent(w, "done", fiber.Map{"sessionId": sessionID, "text": entry.Text})
		w.Flush()
	}))
	return nil
}

func (h *Handler) errorResponse(c *fiber.Ctx, lang string, err error) error {
	switch {
	case errors.Is(err, ErrEmptyMessage):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "message is required"})
	case errors.Is(err, ErrStreamBusy):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": err.Error()})
	case errors.Is(err, ErrSessionNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "session not found"})
	case errors.Is(err, genai.ErrKeyNotFound):
		// distinct signal: the operator must re-provision the provider key
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"kind": "key_not_found", "message": err.Error()})
	default:
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": h.service.fallbackMessage(lang)})
	}
}

func writeEvent(w *bufio.Writer, event string, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, raw)
	return err
}

func normalizeLang(lang string) string {
	if lang == "uz" {
		return "uz"
	}
	return "ru"
}
