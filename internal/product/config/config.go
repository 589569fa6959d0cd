package config

import (
	"fmt"

	pkgconfig "github.com/Bilal-Raza-SWE/AutoMERNate/pkg/config"
)

// Config holds all configuration for the product service.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	Port        int    `env:"PRODUCT_SERVICE_PORT" envDefault:"5001"`

	// MongoDB
	MongoURI string `env:"MONGO_URI_PRODUCT" envDefault:"mongodb://localhost:27017"`
	MongoDB  string `env:"PRODUCT_DB_NAME" envDefault:"products"`

	// UploadDir is where uploaded product images are stored and served from.
	UploadDir string `env:"UPLOAD_DIR" envDefault:"uploads"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"http://localhost:3000,http://localhost:3001" envSeparator:","`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := pkgconfig.Load(cfg); err != nil {
		return nil, fmt.Errorf("load product config: %w", err)
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port: %d", cfg.Port)
	}
	return cfg, nil
}
