package message

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// TelegramConfig configures the bot API connection. The token comes from the
// environment, never from client-deliverable code.
type TelegramConfig struct {
	BotToken string
	ChatID   string
	// BaseURL overrides the bot API host (tests); empty means api.telegram.org.
	BaseURL string
}

// TelegramClient forwards notifications through the Telegram bot API.
type TelegramClient struct {
	cfg    TelegramConfig
	base   string
	client *http.Client
}

func NewTelegramClient(cfg TelegramConfig) *TelegramClient {
	base := cfg.BaseURL
	if base == "" {
		base = "https://api.telegram.org"
	}
	return &TelegramClient{
		cfg:    cfg,
		base:   strings.TrimRight(base, "/"),
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// Send posts an HTML-formatted message to the configured chat.
func (c *TelegramClient) Send(ctx context.Context, text string) error {
	body, err := json.Marshal(sendMessageRequest{
		ChatID:    c.cfg.ChatID,
		Text:      text,
		ParseMode: "HTML",
	})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", c.base, c.cfg.BotToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("telegram: send: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("telegram: HTTP %d: %s", resp.StatusCode, string(b))
	}
	return nil
}
