package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Bilal-Raza-SWE/AutoMERNate/internal/order/auth"
	"github.com/Bilal-Raza-SWE/AutoMERNate/internal/order/client"
	"github.com/Bilal-Raza-SWE/AutoMERNate/internal/order/config"
	orderhttp "github.com/Bilal-Raza-SWE/AutoMERNate/internal/order/handler/http"
	ordermongo "github.com/Bilal-Raza-SWE/AutoMERNate/internal/order/repository/mongodb"
	"github.com/Bilal-Raza-SWE/AutoMERNate/internal/order/service"
	"github.com/Bilal-Raza-SWE/AutoMERNate/pkg/health"
	"github.com/Bilal-Raza-SWE/AutoMERNate/pkg/httpclient"
	"github.com/Bilal-Raza-SWE/AutoMERNate/pkg/httputil"
	"github.com/Bilal-Raza-SWE/AutoMERNate/pkg/middleware"
	"github.com/Bilal-Raza-SWE/AutoMERNate/pkg/mongodb"
)

// App wires together all dependencies and runs the order service.
type App struct {
	cfg         *config.Config
	logger      *slog.Logger
	mongoClient *mongo.Client
	httpServer  *http.Server
}

// NewApp creates a new application instance, connecting to MongoDB and
// building the HTTP router.
func NewApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	httputil.IncludeStack = cfg.Environment != "production"

	mongoCfg := mongodb.DefaultConfig()
	mongoCfg.URI = cfg.MongoURI
	mongoCfg.Database = cfg.MongoDB

	mongoClient, err := mongodb.Connect(ctx, mongoCfg, logger)
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}
	db := mongoClient.Database(cfg.MongoDB)

	repo := ordermongo.NewOrderRepository(db)
	users := client.NewUserClient(cfg.UserServiceURL, httpclient.New(httpclient.Config{}))
	svc := service.NewOrderService(repo, users, logger)
	handler := orderhttp.NewOrderHandler(svc, logger)

	healthHandler := health.NewHandler("Order Service", cfg.Port)
	healthHandler.Register("mongodb", mongodb.PingChecker(mongoClient))

	router := orderhttp.NewRouter(orderhttp.RouterConfig{
		Handler:       handler,
		ValidateToken: auth.NewTokenValidator(cfg.JWTSecret),
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
		cfg:         cfg,
		logger:      logger,
		mongoClient: mongoClient,
		httpServer:  httpServer,
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

// Shutdown gracefully stops the HTTP server and closes the MongoDB client.
func (a *App) Shutdown() error {
	a.logger.Info("shutting down application...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.logger.Error("http server shutdown error", slog.String("error", err.Error()))
	}

	if err := mongodb.Disconnect(a.mongoClient, 5*time.Second); err != nil {
		a.logger.Error("mongodb disconnect error", slog.String("error", err.Error()))
		return err
	}

	a.logger.Info("application shutdown complete")
	return nil
}
