package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/Bilal-Raza-SWE/AutoMERNate/internal/payment/config"
	paymenthttp "github.com/Bilal-Raza-SWE/AutoMERNate/internal/payment/handler/http"
	"github.com/Bilal-Raza-SWE/AutoMERNate/internal/payment/provider/razorpay"
	"github.com/Bilal-Raza-SWE/AutoMERNate/internal/payment/service"
	"github.com/Bilal-Raza-SWE/AutoMERNate/pkg/health"
	"github.com/Bilal-Raza-SWE/AutoMERNate/pkg/httpclient"
	"github.com/Bilal-Raza-SWE/AutoMERNate/pkg/httputil"
	"github.com/Bilal-Raza-SWE/AutoMERNate/pkg/middleware"
)

// App wires together all dependencies and runs the payment service. The
// service is stateless; there is no database.
type App struct {
	cfg        *config.Config
	logger     *slog.Logger
	httpServer *http.Server
}

// NewApp creates a new application instance.
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	httputil.IncludeStack = cfg.Environment != "production"

	gateway := razorpay.New(cfg.RazorpayKeyID, cfg.RazorpayKeySecret, httpclient.New(httpclient.Config{
		Timeout: 30 * time.Second,
	}))
	svc := service.NewPaymentService(gateway, cfg.RazorpayKeyID, cfg.RazorpayKeySecret, logger)
	handler := paymenthttp.NewPaymentHandler(svc, logger)

	healthHandler := health.NewHandler("Payment Service", cfg.Port)

	router := paymenthttp.NewRouter(paymenthttp.RouterConfig{
		Handler:       handler,
		HealthHandler: healthHandler,
		Logger:        logger,
		CORS: middleware.CORSConfig{
			AllowedOrigins:   cfg.CORSAllowedOrigins,
			AllowCredentials: true,
			Environment:      cfg.Environment,
		},
	})

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return &App{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpServer,
	}, nil
}

// Run starts the HTTP server and blocks until the context is canceled.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("starting HTTP server",
			slog.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.Shutdown()
}

// Shutdown gracefully stops the HTTP server, draining in-flight requests.
func (a *App) Shutdown() error {
	a.logger.Info("shutting down application...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.logger.Error("http server shutdown error", slog.String("error", err.Error()))
		return err
	}

	a.logger.Info("application shutdown complete")
	return nil
}
