package config

import (
	"fmt"
	"time"

	pkgconfig "github.com/Bilal-Raza-SWE/AutoMERNate/pkg/config"
)

// Config holds all configuration for the user service.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	Port        int    `env:"USER_SERVICE_PORT" envDefault:"5002"`

	// MongoDB
	MongoURI string `env:"MONGO_URI_USER" envDefault:"mongodb://localhost:27017"`
	MongoDB  string `env:"USER_DB_NAME" envDefault:"users"`

	// Session tokens
	JWTSecret     string        `env:"JWT_SECRET" envDefault:"your-secret-key"`
	SessionExpiry time.Duration `env:"SESSION_EXPIRY" envDefault:"720h"`

	// Password reset
	FrontendURL            string `env:"FRONTEND_URL" envDefault:"http://localhost:3000"`
	NotificationServiceURL string `env:"NOTIFICATION_SERVICE_URL" envDefault:"http://localhost:5005"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"http://localhost:3000,http://localhost:3001" envSeparator:","`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := pkgconfig.Load(cfg); err != nil {
		return nil, fmt.Errorf("load user config: %w", err)
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
	if c.Environment != "development" && c.JWTSecret == "your-secret-key" {
		return fmt.Errorf("JWT_SECRET must be changed from default value in %s environment", c.Environment)
	}
	return nil
}
