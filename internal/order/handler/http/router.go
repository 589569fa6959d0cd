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

// RouterConfig holds the dependencies for building the order service router.
type RouterConfig struct {
	Handler       *OrderHandler
	ValidateToken middleware.TokenValidator
	HealthHandler *health.Handler
	Logger        *slog.Logger
	CORS          middleware.CORSConfig
}

// NewRouter builds the chi router for the order service. Every order route
// requires the session cookie; admin routes additionally require the admin
// flag carried in the session claims.
func NewRouter(cfg RouterConfig) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.CORS(cfg.CORS))
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(chimiddleware.Compress(5))
	r.Use(middleware.RequestLogging(cfg.Logger))
	r.Use(middleware.PrometheusMetrics("order"))
	r.Use(middleware.RequestLogger(cfg.Logger))

	r.Get("/health", cfg.HealthHandler.ServeHTTP)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/v1/orders", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.ValidateToken))

		r.Post("/", cfg.Handler.Create)
		r.Get("/my-orders", cfg.Handler.ListMine)
		r.Get("/{id}", cfg.Handler.GetByID)
		r.Put("/{id}/pay", cfg.Handler.MarkPaid)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin)
			r.Get("/", cfg.Handler.ListAll)
			r.Put("/{id}/deliver", cfg.Handler.MarkDelivered)
		})
	})

	return r
}
