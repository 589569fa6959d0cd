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

// RouterConfig holds the dependencies for building the product service router.
type RouterConfig struct {
	Handler       *ProductHandler
	Upload        *UploadHandler
	HealthHandler *health.Handler
	Logger        *slog.Logger
	CORS          middleware.CORSConfig
}

// NewRouter builds the chi router for the product service.
func NewRouter(cfg RouterConfig) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.CORS(cfg.CORS))
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(chimiddleware.Compress(5))
	r.Use(middleware.RequestLogging(cfg.Logger))
	r.Use(middleware.PrometheusMetrics("product"))
	r.Use(middleware.RequestLogger(cfg.Logger))

	r.Get("/health", cfg.HealthHandler.ServeHTTP)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/v1/products", func(r chi.Router) {
		r.Get("/", cfg.Handler.List)
		r.Post("/", cfg.Handler.Create)
		r.Get("/top", cfg.Handler.ListTop)
		r.Post("/reviews/{id}", cfg.Handler.CreateReview)
		r.Get("/{id}", cfg.Handler.GetByID)
		r.Put("/{id}", cfg.Handler.Update)
		r.Delete("/{id}", cfg.Handler.Delete)
	})

	r.Post("/api/v1/upload", cfg.Upload.Upload)
	r.Handle("/uploads/*", cfg.Upload.Static("/uploads/"))

	return r
}
