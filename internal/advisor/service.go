package advisor

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/premiumparfumes/storefront-backend/internal/catalog"
	"github.com/premiumparfumes/storefront-backend/internal/genai"
	"github.com/premiumparfumes/storefront-backend/internal/translations"
)

var (
	ErrEmptyMessage = errors.New("message must not be empty")
)

// Generator is the slice of the provider client the advisor needs.
type Generator interface {
	Recommend(ctx context.Context, model, prompt, systemInstruction string) (string, error)
	ChatStream(ctx context.Context, model, prompt, systemInstruction string, onDelta func(delta string) error) (string, error)
	ChatGrounded(ctx context.Context, model, prompt string) (string, []genai.Citation, error)
}

// Models configures which provider model serves each operation.
type Models struct {
	Recommend string
	Chat      string
}

// Service grounds prompts in the live catalog and keeps per-session
// transcripts. Provider failures never propagate raw: they become localized
// fallback entries, except key-entitlement failures which are escalated.
type Service struct {
	gen         Generator
	models      Models
	catalog     *catalog.Service
	trans       *translations.Service
	Transcripts *TranscriptStore
}

func NewService(gen Generator, models Models, cat *catalog.Service, trans *translations.Service) *Service {
	return &Service{
		gen:         gen,
		models:      models,
		catalog:     cat,
		trans:       trans,
		Transcripts: NewTranscriptStore(),
	}
}

// systemInstruction builds the advisor persona with the current arsenal
// inlined, answering in the requested language.
func (s *Service) systemInstruction(lang string) string {
	perfumes := s.catalog.List()
	lines := make([]string, 0, len(perfumes))
	for _, p := range perfumes {
		lines = append(lines, fmt.Sprintf("%s %s: %s", p.Brand, p.Name, p.Description))
	}

	language := "Russian"
	if lang == "uz" {
		language = "Uzbek"
	}

	return fmt.Sprintf(`You are a world-class luxury perfume advisor for "Premium Parfumes". `+
		`Your tone is sophisticated, masculine, and helpful. `+
		`Current Arsenal (Perfumes you can recommend): %s. `+
		`Answer in %s. `+
		`Focus on matching the user's mood, occasion, or preference with one of the perfumes from the Arsenal.`,
		strings.Join(lines, "; "), language)
}

// fallbackMessage returns the localized inline error copy for the language.
func (s *Service) fallbackMessage(lang string) string {
	if strs, err := s.trans.GetLang(lang); err == nil {
		if msg, ok := strs["chatError"]; ok {
			return msg
		}
	}
	return "Error connection..."
}

// Greeting returns the localized opening line for a new session.
func (s *Service) Greeting(lang string) string {
	if strs, err := s.trans.GetLang(lang); err == nil {
		if msg, ok := strs["chatGreeting"]; ok {
			return msg
		}
	}
	return "Welcome."
}

// Recommend is the single-shot advisor call.
func (s *Service) Recommend(ctx context.Context, lang, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", ErrEmptyMessage
	}
	return s.gen.Recommend(ctx, s.models.Recommend, message, s.systemInstruction(lang))
}

// Chat streams a reply into the session transcript, invoking onDelta per
// delta in emission order. Provider failures (other than key entitlement)
// are converted into a localized fallback entry and reported via the
// returned final entry rather than an error.
func (s *Service) Chat(ctx context.Context, sessionID, lang, message string, onDelta func(delta string) error) (Entry, error) {
	if strings.TrimSpace(message) == "" {
		return Entry{}, ErrEmptyMessage
	}
	if err := s.Transcripts.BeginStream(sessionID); err != nil {
		return Entry{}, err
	}
	defer s.Transcripts.EndStream(sessionID)

	if err := s.Transcripts.Append(sessionID, Entry{Role: "user", Text: message}); err != nil {
		return Entry{}, err
	}
	// the model entry grows delta by delta
	if err := s.Transcripts.Append(sessionID, Entry{Role: "model", Text: ""}); err != nil {
		return Entry{}, err
	}

	full, err := s.gen.ChatStream(ctx, s.models.Chat, message, s.systemInstruction(lang), func(delta string) error {
		if err := s.Transcripts.AppendDelta(sessionID, delta); err != nil {
			return err
		}
		if onDelta != nil {
			return onDelta(delta)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, genai.ErrKeyNotFound) {
			return Entry{}, err
		}
		log.Printf("advisor: chat stream failed: %v", err)
		fallback := s.fallbackMessage(lang)
		s.Transcripts.AppendDelta(sessionID, fallback)
		return Entry{Role: "model", Text: fallback}, nil
	}
	return Entry{Role: "model", Text: full}, nil
}

// Concierge is the grounded variant: search retrieval enabled, citations
// attached to the transcript entry.
func (s *Service) Concierge(ctx context.Context, sessionID, lang, message string) (Entry, error) {
	if strings.TrimSpace(message) == "" {
		return Entry{}, ErrEmptyMessage
	}
	if err := s.Transcripts.Append(sessionID, Entry{Role: "user", Text: message}); err != nil {
		return Entry{}, err
	}

	text, citations, err := s.gen.ChatGrounded(ctx, s.models.Chat, message)
	if err != nil {
		if errors.Is(err, genai.ErrKeyNotFound) {
			return Entry{}, err
		}
		log.Printf("advisor: grounded chat failed: %v", err)
		entry := Entry{Role: "model", Text: s.fallbackMessage(lang)}
		s.Transcripts.Append(sessionID, entry)
		return entry, nil
	}

	entry := Entry{Role: "model", Text: text, Citations: citations}
	if err := s.Transcripts.Append(sessionID, entry); err != nil {
		return Entry{}, err
	}
	return entry, nil
}
