package config

import (
	"fmt"

	pkgconfig "github.com/Bilal-Raza-SWE/AutoMERNate/pkg/config"
)

// Config holds all configuration for the API gateway.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	Port        int    `env:"API_GATEWAY_PORT" envDefault:"5000"`

	// Backend service base URLs
	ProductServiceURL      string `env:"PRODUCT_SERVICE_URL" envDefault:"http://localhost:5001"`
	UserServiceURL         string `env:"USER_SERVICE_URL" envDefault:"http://localhost:5002"`
	OrderServiceURL        string `env:"ORDER_SERVICE_URL" envDefault:"http://localhost:5003"`
	PaymentServiceURL      string `env:"PAYMENT_SERVICE_URL" envDefault:"http://localhost:5004"`
	NotificationServiceURL string `env:"NOTIFICATION_SERVICE_URL" envDefault:"http://localhost:5005"`

	// CORS: fixed set of allowed front-end origins, credentials on.
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"http://localhost:3000,http://localhost:3001" envSeparator:","`

	// Rate limiting
	RateLimitRPS   int `env:"RATE_LIMIT_RPS" envDefault:"100"`
	RateLimitBurst int `env:"RATE_LIMIT_BURST" envDefault:"200"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := pkgconfig.Load(cfg); err != nil {
		return nil, fmt.Errorf("load gateway config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate checks configuration invariants.
func (c *Config) validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.RateLimitRPS < 1 {
		return fmt.Errorf("invalid rate limit rps: %d", c.RateLimitRPS)
	}
	return nil
}
