package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/Bilal-Raza-SWE/AutoMERNate/internal/gateway/config"
	"github.com/Bilal-Raza-SWE/AutoMERNate/internal/gateway/handler"
	"github.com/Bilal-Raza-SWE/AutoMERNate/internal/gateway/proxy"
	"github.com/Bilal-Raza-SWE/AutoMERNate/pkg/health"
	"github.com/Bilal-Raza-SWE/AutoMERNate/pkg/httputil"
)

// App wires together all dependencies and runs the API gateway.
type App struct {
	cfg        *config.Config
	logger     *slog.Logger
	httpServer *http.Server
}

// NewApp creates a new application instance, initializing the reverse proxy
// and HTTP router. The gateway has no database dependency.
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	httputil.IncludeStack = cfg.Environment != "production"

	sp := proxy.NewServiceProxy(cfg, logger)

	healthHandler := health.NewHandler("API Gateway", cfg.Port)
	healthHandler.Register("downstream", func(ctx context.Context) error {
		u, err := url.Parse(cfg.ProductServiceURL)
		if err != nil {
			return fmt.Errorf("parse product service URL: %w", err)
		}
		d := net.Dialer{Timeout: 2 * time.Second}
		conn, err := d.DialContext(ctx, "tcp", u.Host)
		if err != nil {
			return fmt.Errorf("downstream unreachable: %w", err)
		}
		_ = conn.Close()
		return nil
	})

	router := handler.NewRouter(cfg, sp, healthHandler, logger)

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
