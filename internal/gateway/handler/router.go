package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	gwmiddleware "github.com/Bilal-Raza-SWE/AutoMERNate/internal/gateway/middleware"
	"github.com/Bilal-Raza-SWE/AutoMERNate/internal/gateway/config"
	"github.com/Bilal-Raza-SWE/AutoMERNate/internal/gateway/proxy"
	"github.com/Bilal-Raza-SWE/AutoMERNate/pkg/health"
	"github.com/Bilal-Raza-SWE/AutoMERNate/pkg/httputil"
	pkgmiddleware "github.com/Bilal-Raza-SWE/AutoMERNate/pkg/middleware"
)

// availableRoutes is the fixed prefix list reported on unmatched paths.
var availableRoutes = []string{
	"/api/v1/products",
	"/api/v1/users",
	"/api/v1/orders",
	"/api/v1/payment",
	"/api/v1/notifications",
}

// NewRouter creates a chi router with global middleware, the health endpoint,
// and the static prefix-to-backend proxy table.
func NewRouter(cfg *config.Config, sp *proxy.ServiceProxy, healthHandler *health.Handler, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(pkgmiddleware.CORS(pkgmiddleware.CORSConfig{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowCredentials: true,
		Environment:      cfg.Environment,
	}))
	r.Use(gwmiddleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst, logger))
	r.Use(pkgmiddleware.Recovery(logger))
	r.Use(chimw.Compress(5))
	r.Use(pkgmiddleware.RequestLogging(logger))
	r.Use(pkgmiddleware.PrometheusMetrics("gateway"))
	r.Use(pkgmiddleware.RequestLogger(logger))

	r.Get("/health", healthHandler.ServeHTTP)
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	// Static prefix-to-backend table. The gateway does not authenticate;
	// each backend enforces its own auth.
	mount := func(prefix, service string) {
		r.Handle(prefix, sp.Handler(service))
		r.Handle(prefix+"/*", sp.Handler(service))
	}

	mount("/api/v1/products", "product")
	mount("/api/v1/users", "user")
	mount("/api/v1/orders", "order")
	mount("/api/v1/payment", "payment")
	mount("/api/v1/notifications", "notification")

	// Upload endpoints and static assets are served by the product service.
	mount("/api/v1/upload", "product")
	mount("/uploads", "product")

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		httputil.WriteJSON(w, http.StatusNotFound, map[string]any{
			"error":           "Not Found",
			"message":         "Route " + req.URL.Path + " not found",
			"availableRoutes": availableRoutes,
		})
	})

	return r
}
