package config

import (
	"fmt"

	pkgconfig "github.com/Bilal-Raza-SWE/AutoMERNate/pkg/config"
)

// Config holds all configuration for the notification service.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	Port        int    `env:"NOTIFICATION_SERVICE_PORT" envDefault:"5005"`

	// SendGrid transport. With an empty API key the service logs deliveries
	// instead of sending them, which keeps local stacks bootable.
	SendGridAPIKey string `env:"SENDGRID_API_KEY"`
	FromAddress    string `env:"EMAIL_FROM" envDefault:"noreply@automernate.local"`
	FromName       string `env:"EMAIL_FROM_NAME" envDefault:"AutoMERNate"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"http://localhost:3000,http://localhost:3001" envSeparator:","`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := pkgconfig.Load(cfg); err != nil {
		return nil, fmt.Errorf("load notification config: %w", err)
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port: %d", cfg.Port)
	}
	if cfg.Environment != "development" && cfg.SendGridAPIKey == "" {
		return nil, fmt.Errorf("SENDGRID_API_KEY is required in %s environment", cfg.Environment)
	}
	return cfg, nil
}
