package message

import (
	"errors"
	"strings"
)

var (
	ErrNotFound     = errors.New("message not found")
	ErrEmptyMessage = errors.New("message text is required")
	ErrInvalidPhone = errors.New("phone must start with the +998 prefix")
)

// Message is a user-composed order request forwarded to the shop's chat
// channel. JSON tags follow the camelCase convention used elsewhere.
type Message struct {
	ID        int    `json:"messageId"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Text      string `json:"text"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// phonePrefix is the fixed international prefix every stored phone number
// must carry.
const phonePrefix = "+998"

// NormalizePhone strips formatting and enforces the international prefix.
// "998 99 ..." is accepted and normalized; anything else without the prefix
// is rejected before persisting.
func NormalizePhone(raw string) (string, error) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '(', ')':
			return -1
		}
		return r
	}, strings.TrimSpace(raw))

	if strings.HasPrefix(cleaned, "998") {
		cleaned = "+" + cleaned
	}
	if !strings.HasPrefix(cleaned, phonePrefix) {
		return "", ErrInvalidPhone
	}
	for _, r := range cleaned[1:] {
		if r < '0' || r > '9' {
			return "", ErrInvalidPhone
		}
	}
	return cleaned, nil
}
