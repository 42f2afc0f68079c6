package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultPort            = "8080"
	defaultJWTSecret       = "change-me-jwt-secret"
	defaultJWTTTL          = "24h"
	defaultLeadsAPIURL     = "http://localhost:5000/api"
	defaultLeadsAPITimeout = "15s"
	defaultEmailProvider   = "mailgun"
	defaultAppURL          = "http://localhost:3000"
)

type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string
	JWTTTL      time.Duration

	LeadsAPIURL     string
	LeadsAPITimeout time.Duration

	EmailProvider string
	MailgunDomain string
	MailgunAPIKey string
	ResendAPIKey  string
	FromEmail     string
	AppURL        string
}

func Load() (*Config, error) {
	cfg := &Config{}

	cfg.DatabaseURL = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is empty")
	}

	cfg.Port = strings.TrimSpace(getEnv("PORT", defaultPort))
	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))

	var err error
	cfg.JWTTTL, err = parseDurationEnv("JWT_TTL", defaultJWTTTL)
	if err != nil {
		return nil, err
	}

	cfg.LeadsAPIURL = strings.TrimRight(strings.TrimSpace(getEnv("LEADS_API_URL", defaultLeadsAPIURL)), "/")
	cfg.LeadsAPITimeout, err = parseDurationEnv("LEADS_API_TIMEOUT", defaultLeadsAPITimeout)
	if err != nil {
		return nil, err
	}

	cfg.EmailProvider = strings.ToLower(strings.TrimSpace(getEnv("EMAIL_PROVIDER", defaultEmailProvider)))
	if cfg.EmailProvider != "mailgun" && cfg.EmailProvider != "resend" {
		return nil, fmt.Errorf("EMAIL_PROVIDER must be one of: mailgun, resend")
	}

	cfg.MailgunDomain = strings.TrimSpace(os.Getenv("MAILGUN_DOMAIN"))
	cfg.MailgunAPIKey = strings.TrimSpace(os.Getenv("MAILGUN_API_KEY"))
	cfg.ResendAPIKey = strings.TrimSpace(os.Getenv("RESEND_API_KEY"))
	cfg.FromEmail = strings.TrimSpace(os.Getenv("FROM_EMAIL"))
	cfg.AppURL = strings.TrimRight(strings.TrimSpace(getEnv("APP_URL", defaultAppURL)), "/")

	return cfg, nil
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be > 0", name)
	}
	return d, nil
}

func getEnv(name, fallback string) string {
	if v, ok := os.LookupEnv(name); ok && strings.TrimSpace(v) != "" {
		return v
	}
	return fallback
}
