package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	ServerPort          string
	TemplateSheetID     string
	ServiceAccountEmail string
	PrivateKey          string
	APITimeout          time.Duration
	JWTSecret           string
	JWTExpiryHours      int
}

func Load() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("⚠️  No .env file found, using system environment variables")
	}

	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("GOOGLE_TEMPLATE_SHEET_ID", "")
	v.SetDefault("GOOGLE_SERVICE_ACCOUNT_EMAIL", "")
	v.SetDefault("GOOGLE_PRIVATE_KEY", "")
	v.SetDefault("SHEETS_API_TIMEOUT", "10s")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_EXPIRY_HOURS", 24)
	return v
}

// FromViper builds a Config from already-resolved settings.
func FromViper(v *viper.Viper) *Config {
	timeout := v.GetDuration("SHEETS_API_TIMEOUT")
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Config{
		ServerPort:          v.GetString("SERVER_PORT"),
		TemplateSheetID:     strings.TrimSpace(v.GetString("GOOGLE_TEMPLATE_SHEET_ID")),
		ServiceAccountEmail: v.GetString("GOOGLE_SERVICE_ACCOUNT_EMAIL"),
		// keys pasted into a single-line env var carry escaped newlines
		PrivateKey:     strings.ReplaceAll(v.GetString("GOOGLE_PRIVATE_KEY"), `\n`, "\n"),
		APITimeout:     timeout,
		JWTSecret:      v.GetString("JWT_SECRET"),
		JWTExpiryHours: v.GetInt("JWT_EXPIRY_HOURS"),
	}
}

// SessionsEnabled reports whether member session tokens are issued and required.
func (c *Config) SessionsEnabled() bool {
	return c.JWTSecret != ""
}
