package message

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"
)

// Notifier pushes a formatted notification to the shop's chat channel.
type Notifier interface {
	Send(ctx context.Context, text string) error
}

type Service struct {
	repo     Repository
	notifier Notifier // nil when no bot is configured
}

func NewService(repo Repository, notifier Notifier) *Service {
	return &Service{repo: repo, notifier: notifier}
}

func (s *Service) List() []Message {
	return s.repo.List()
}

// Submit validates, persists, and forwards the message. Validation happens
// before any network call; a notifier failure is reported but the message is
// already stored.
func (s *Service) Submit(ctx context.Context, m Message) (Message, error) {
	if strings.TrimSpace(m.Text) == "" {
		return Message{}, ErrEmptyMessage
	}
	phone, err := NormalizePhone(m.Phone)
	if err != nil {
		return Message{}, err
	}
	m.Phone = phone
	m.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	created, err := s.repo.Create(m)
	if err != nil {
		return Message{}, err
	}

	if s.notifier != nil {
		if err := s.notifier.Send(ctx, formatNotification(created)); err != nil {
			return created, err
		}
	}
	return created, nil
}

// formatNotification renders the bilingual HTML notification. User-supplied
// fields are escaped so markup cannot be injected into the channel.
func formatNotification(m Message) string {
	return fmt.Sprintf(
		"🤵 <b>Yangi Buyurtma / Новый Заказ</b> ✨\n\n"+
			"👤 <b>Ism / Имя:</b> %s\n"+
			"📞 <b>Tel / Тел:</b> <code>%s</code>\n"+
			"💬 <b>Xabar / Сообщение:</b>\n<i>%s</i>\n\n"+
			"📅 <b>Sana:</b> %s",
		html.EscapeString(m.Name),
		html.EscapeString(m.Phone),
		html.EscapeString(m.Text),
		m.CreatedAt,
	)
}
