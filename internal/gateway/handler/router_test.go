package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bilal-Raza-SWE/AutoMERNate/internal/gateway/config"
	"github.com/Bilal-Raza-SWE/AutoMERNate/internal/gateway/proxy"
	"github.com/Bilal-Raza-SWE/AutoMERNate/pkg/health"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

// newTestRouter builds a gateway router whose product backend is the given
// URL and whose remaining backends point at a dead address.
func newTestRouter(t *testing.T, productURL string) http.Handler {
	t.Helper()

	dead := "http://127.0.0.1:1"
	cfg := &config.Config{
		Environment:            "development",
		Port:                   5000,
		ProductServiceURL:      productURL,
		UserServiceURL:         dead,
		OrderServiceURL:        dead,
		PaymentServiceURL:      dead,
		NotificationServiceURL: dead,
		CORSAllowedOrigins:     []string{"http://localhost:3000"},
		RateLimitRPS:           1000,
		RateLimitBurst:         1000,
	}

	logger := testLogger()
	sp := proxy.NewServiceProxy(cfg, logger)
	return NewRouter(cfg, sp, health.NewHandler("API Gateway", cfg.Port), logger)
}

func TestRouterHealth(t *testing.T) {
	router := newTestRouter(t, "http://127.0.0.1:1")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body health.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "API Gateway", body.Service)
	assert.Equal(t, "healthy", body.Status)
}

func TestRouterUnknownRoute(t *testing.T) {
	router := newTestRouter(t, "http://127.0.0.1:1")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/unknown", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)

	var body struct {
		Error           string   `json:"error"`
		Message         string   `json:"message"`
		AvailableRoutes []string `json:"availableRoutes"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Not Found", body.Error)
	assert.Equal(t, "Route /api/v1/unknown not found", body.Message)
	assert.Contains(t, body.AvailableRoutes, "/api/v1/products")
	assert.Contains(t, body.AvailableRoutes, "/api/v1/orders")
}

func TestRouterProxiesToBackend(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/products/top", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`[{"name":"Airpods"}]`))
	}))
	defer backend.Close()

	router := newTestRouter(t, backend.URL)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/products/top", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"name":"Airpods"}]`, rec.Body.String())
}

func TestRouterBackendDown(t *testing.T) {
	router := newTestRouter(t, "http://127.0.0.1:1")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/users/login", nil))

	require.Equal(t, http.StatusBadGateway, rec.Code)

	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Bad Gateway", body.Error)
	assert.Equal(t, "Failed to connect to backend service", body.Message)
}
