package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Bilal-Raza-SWE/AutoMERNate/internal/user/auth"
	"github.com/Bilal-Raza-SWE/AutoMERNate/pkg/health"
	"github.com/Bilal-Raza-SWE/AutoMERNate/pkg/middleware"
)

// RouterConfig holds the dependencies for building the user service router.
type RouterConfig struct {
	Handler       *UserHandler
	Tokens        *auth.Manager
	HealthHandler *health.Handler
	Logger        *slog.Logger
	CORS          middleware.CORSConfig
}

// NewRouter builds the chi router for the user service.
func NewRouter(cfg RouterConfig) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.CORS(cfg.CORS))
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(chimiddleware.Compress(5))
	r.Use(middleware.RequestLogging(cfg.Logger))
	r.Use(middleware.PrometheusMetrics("user"))
	r.Use(middleware.RequestLogger(cfg.Logger))

	r.Get("/health", cfg.HealthHandler.ServeHTTP)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	authn := middleware.Auth(func(token string) (*middleware.Claims, error) {
		claims, err := cfg.Tokens.ValidateSessionToken(token)
		if err != nil {
			return nil, err
		}
		return &middleware.Claims{UserID: claims.UserID, IsAdmin: claims.IsAdmin}, nil
	})

	r.Route("/api/v1/users", func(r chi.Router) {
		r.Post("/", cfg.Handler.Register)
		r.Post("/login", cfg.Handler.Login)
		r.Post("/logout", cfg.Handler.Logout)
		r.Post("/reset-password/request", cfg.Handler.RequestPasswordReset)
		r.Post("/reset-password/reset", cfg.Handler.ResetPassword)

		r.Group(func(r chi.Router) {
			r.Use(authn)
			r.Get("/profile", cfg.Handler.GetProfile)
			r.Put("/profile", cfg.Handler.UpdateProfile)
		})

		r.Group(func(r chi.Router) {
			r.Use(authn, middleware.RequireAdmin)
			r.Get("/", cfg.Handler.ListUsers)
			r.Get("/admins", cfg.Handler.ListAdmins)
			r.Put("/{id}", cfg.Handler.AdminUpdate)
			r.Delete("/{id}", cfg.Handler.Delete)
		})

		// Unauthenticated: consumed by the order service for enrichment.
		r.Get("/{id}", cfg.Handler.GetByID)
	})

	return r
}
