package config

import (
	"os"
	"strconv"
	"time"
)

// Config carries everything the app reads from the environment. Secrets
// (admin password hash, bot token, provider key) live here and are never
// embedded in client-deliverable code.
type Config struct {
	Addr        string
	DatabaseURL string
	DataDir     string

	JWTSecret         string
	AdminPasswordHash string

	// Remote document store (spreadsheet web-app proxy) for site data sync.
	SheetAPIURL        string
	SheetFireAndForget bool

	GeminiAPIKey  string
	GeminiBaseURL string

	RecommendModel string
	ChatModel      string
	ImageModel     string
	ImageEditModel string
	VideoModel     string

	VideoPollInterval time.Duration
	VideoMaxPolls     int

	TelegramBotToken string
	TelegramChatID   string
}

func Load() Config {
	cfg := Config{
		Addr:        getenv("ADDR", ":8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		DataDir:     getenv("DATA_DIR", "./data"),

		JWTSecret:         os.Getenv("JWT_SECRET"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),

		SheetAPIURL:        os.Getenv("SHEET_API_URL"),
		SheetFireAndForget: os.Getenv("SHEET_FIRE_AND_FORGET") == "1",

		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		GeminiBaseURL: getenv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com"),

		RecommendModel: getenv("RECOMMEND_MODEL", "gemini-3-pro-preview"),
		ChatModel:      getenv("CHAT_MODEL", "gemini-3-flash-preview"),
		ImageModel:     getenv("IMAGE_MODEL", "gemini-3-pro-image-preview"),
		ImageEditModel: getenv("IMAGE_EDIT_MODEL", "gemini-2.5-flash-image"),
		VideoModel:     getenv("VIDEO_MODEL", "veo-3.1-fast-generate-preview"),

		VideoPollInterval: 10 * time.Second,
		VideoMaxPolls:     60,

		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramChatID:   os.Getenv("TELEGRAM_CHAT_ID"),
	}

	if v := os.Getenv("VIDEO_POLL_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.VideoPollInterval = d
		}
	}
	if v := os.Getenv("VIDEO_MAX_POLLS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.VideoMaxPolls = n
		}
	}

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
