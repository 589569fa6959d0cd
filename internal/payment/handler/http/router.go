package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Bilal-Raza-SWE/AutoMERNate/pkg/health"
	"github.com/Bilal-Raza-SWE/AutoMERNate/pkg/middleware"
)

// RouterConfig holds the dependencies for building the payment service router.
type RouterConfig struct {
	Handler       *PaymentHandler
	HealthHandler *health.Handler
	Logger        *slog.Logger
	CORS          middleware.CORSConfig
}

// NewRouter builds the chi router for the payment service.
func NewRouter(cfg RouterConfig) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.CORS(cfg.CORS))
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(chimiddleware.Compress(5))
	r.Use(middleware.RequestLogging(cfg.Logger))
	r.Use(middleware.PrometheusMetrics("payment"))
	r.Use(middleware.RequestLogger(cfg.Logger))

	r.Get("/health", cfg.HealthHandler.ServeHTTP)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/v1/payment", func(r chi.Router) {
		r.Get("/key", cfg.Handler.GetKey)
		r.Post("/razorpay", cfg.Handler.CreateOrder)
		r.Post("/validate", cfg.Handler.Validate)
	})

	return r
}
