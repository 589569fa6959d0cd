package config

import (
	"fmt"

	pkgconfig "github.com/Bilal-Raza-SWE/AutoMERNate/pkg/config"
)

// Config holds all configuration for the order service.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	Port        int    `env:"ORDER_SERVICE_PORT" envDefault:"5003"`

	// MongoDB
	MongoURI string `env:"MONGO_URI_ORDER" envDefault:"mongodb://localhost:27017"`
	MongoDB  string `env:"ORDER_DB_NAME" envDefault:"orders"`

	// Session tokens are validated locally with the shared secret.
	JWTSecret string `env:"JWT_SECRET" envDefault:"your-secret-key"`

	// UserServiceURL is the base URL for order enrichment lookups.
	UserServiceURL string `env:"USER_SERVICE_URL" envDefault:"http://localhost:5002"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"http://localhost:3000,http://localhost:3001" envSeparator:","`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := pkgconfig.Load(cfg); err != nil {
		return nil, fmt.Errorf("load order config: %w", err)
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port: %d", cfg.Port)
	}
	if cfg.Environment != "development" && cfg.JWTSecret == "your-secret-key" {
		return nil, fmt.Errorf("JWT_SECRET must be changed from default value in %s environment", cfg.Environment)
	}
	return cfg, nil
}
