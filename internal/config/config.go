package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// Core
	BotToken          string `env:"TELEGRAM_BOT_TOKEN,required"`
	PaystackSecretKey string `env:"PAYSTACK_SECRET_KEY,required"`
	TelegramGroupID   string `env:"TELEGRAM_GROUP_ID,required"`
	DatabaseURL       string `env:"DATABASE_URL,required"`

	// Fallback invite link shown in user-facing copy when issuance is unavailable
	InviteLink string `env:"TELEGRAM_INVITE_LINK" envDefault:"https://t.me/+IqItzc6RRcVmNDdk"`

	// Admin
	AdminIDs []int64 `env:"ADMIN_USER_IDS" envSeparator:","`

	// Dashboard session cookie
	SessionSecret string `env:"SESSION_SECRET"`

	// Server
	Port int `env:"PORT" envDefault:"5000"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// WebhookPath is the bot update endpoint. It embeds the bot token so the
// path is not guessable.
func (c *Config) WebhookPath() string {
	return "/webhook/" + c.BotToken
}

func (c *Config) IsAdmin(telegramID int64) bool {
	for _, id := range c.AdminIDs {
		if id == telegramID {
			return true
		}
	}
	return false
}
