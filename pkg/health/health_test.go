package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeHTTP_NoCheckers(t *testing.T) {
	h := NewHandler("Payment Service", 5004)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Payment Service", resp.Service)
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, 5004, resp.Port)
	assert.False(t, resp.Timestamp.IsZero())
	assert.Nil(t, resp.Checks)
}

func TestServeHTTP_HealthyChecker(t *testing.T) {
	h := NewHandler("User Service", 5002)
	h.Register("mongodb", func(ctx context.Context) error { return nil })

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "up", resp.Checks["mongodb"])
}

func TestServeHTTP_FailingChecker(t *testing.T) {
	h := NewHandler("User Service", 5002)
	h.Register("mongodb", func(ctx context.Context) error {
		return errors.New("server selection timeout")
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "unhealthy", resp.Status)
	assert.Equal(t, "server selection timeout", resp.Checks["mongodb"])
}
