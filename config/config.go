package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Cloudinary CloudinaryConfig
	Telegram   TelegramConfig
	Finance    FinanceConfig
	Admin      AdminConfig
}

type ServerConfig struct {
	Port         string
	Env          string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	DSN             string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
}

type TelegramConfig struct {
	BotToken string
	// AdminChatID receives the out-of-band notification when a payment
	// proof lands. Zero disables notifications.
	AdminChatID int64
	// LoginMaxAge bounds auth_date freshness for the login widget check.
	LoginMaxAge time.Duration
}

type FinanceConfig struct {
	// ReservePercent of gross held back from net payout (0..1).
	ReservePercent float64
}

type AdminConfig struct {
	// Token guards the /api/admin endpoints (X-Admin-Token header).
	Token string
	// PersonalLinkTemplate is the fallback community link when a user has
	// no group_link configured. {user_id} is replaced with the Telegram
	// user id; without the placeholder the template is used as a static
	// link.
	PersonalLinkTemplate string
}

// Load builds the config from the environment, falling back to local
// development defaults. A .env file is honored when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			Env:          getEnv("APP_ENV", "development"),
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		Database: DatabaseConfig{
			// Production injects a postgres:// DATABASE_URL; the default is
			// the local mysql instance.
			DSN:             getEnv("DATABASE_URL", "buymyshop:buymyshop@tcp(localhost:3306)/buymyshop?charset=utf8mb4&parseTime=True&loc=Local"),
			MaxIdleConns:    10,
			MaxOpenConns:    100,
			ConnMaxLifetime: time.Hour,
		},
		Cloudinary: CloudinaryConfig{
			CloudName: getEnv("CLOUDINARY_CLOUD_NAME", ""),
			APIKey:    getEnv("CLOUDINARY_API_KEY", ""),
			APISecret: getEnv("CLOUDINARY_API_SECRET", ""),
		},
		Telegram: TelegramConfig{
			BotToken:    getEnv("BOT_TOKEN", ""),
			AdminChatID: getEnvInt64("ADMIN_CHAT_ID", 0),
			LoginMaxAge: 24 * time.Hour,
		},
		Finance: FinanceConfig{
			ReservePercent: getEnvFloat("RESERVE_PERCENT", 0.49),
		},
		Admin: AdminConfig{
			Token:                getEnv("ADMIN_TOKEN", ""),
			PersonalLinkTemplate: getEnv("PERSONAL_LINK_TEMPLATE", "https://t.me/buymyshop_community?start={user_id}"),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 && f <= 1 {
			return f
		}
	}
	return def
}
