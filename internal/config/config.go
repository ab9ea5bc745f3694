package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the configuration for the application.
type Config struct {
	DatabasePath string
	JWTSecret    string
	SessionTTL   time.Duration

	// Telegram Config
	TelegramBotToken   string
	TelegramWebhookURL string
	// TelegramAccounts maps an allowed Telegram user ID to the email of
	// the fournil account it operates as.
	TelegramAccounts map[int64]string
}

// NewFromEnv creates a new Config object from environment variables.
func NewFromEnv() (*Config, error) {
	jwtSecret := os.Getenv("FOURNIL_JWT_SECRET")
	if jwtSecret == "" {
		return nil, fmt.Errorf("FOURNIL_JWT_SECRET environment variable not set")
	}

	dbPath := os.Getenv("FOURNIL_DB_PATH")
	if dbPath == "" {
		dbPath = "data/fournil.db"
	}

	sessionTTL := 30 * 24 * time.Hour
	if ttlStr := os.Getenv("FOURNIL_SESSION_TTL_HOURS"); ttlStr != "" {
		hours, err := strconv.Atoi(ttlStr)
		if err != nil || hours <= 0 {
			return nil, fmt.Errorf("invalid FOURNIL_SESSION_TTL_HOURS value %q", ttlStr)
		}
		sessionTTL = time.Duration(hours) * time.Hour
	}

	// Telegram Config (Optional for CLI, required for Bot)
	telegramAccounts, err := parseTelegramAccounts(os.Getenv("TELEGRAM_ACCOUNTS"))
	if err != nil {
		return nil, err
	}

	return &Config{
		DatabasePath:       dbPath,
		JWTSecret:          jwtSecret,
		SessionTTL:         sessionTTL,
		TelegramBotToken:   os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramWebhookURL: os.Getenv("TELEGRAM_WEBHOOK_URL"),
		TelegramAccounts:   telegramAccounts,
	}, nil
}

// parseTelegramAccounts parses "id=email" pairs separated by commas,
// e.g. "12345=marie@fournil.fr,67890=paul@fournil.fr".
func parseTelegramAccounts(raw string) (map[int64]string, error) {
	accounts := make(map[int64]string)
	if raw == "" {
		return accounts, nil
	}

	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		parts := strings.SplitN(pair, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid TELEGRAM_ACCOUNTS entry %q: expected id=email", pair)
		}
		id, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid TELEGRAM_ACCOUNTS user ID in %q: %w", pair, err)
		}
		accounts[id] = strings.TrimSpace(parts[1])
	}
	return accounts, nil
}
