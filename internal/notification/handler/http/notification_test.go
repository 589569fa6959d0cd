package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bilal-Raza-SWE/AutoMERNate/internal/notification/sender"
	"github.com/Bilal-Raza-SWE/AutoMERNate/pkg/health"
	"github.com/Bilal-Raza-SWE/AutoMERNate/pkg/middleware"
)

type stubSender struct {
	last sender.Email
	err  error
}

func (s *stubSender) Send(ctx context.Context, email sender.Email) error {
	s.last = email
	return s.err
}

func newTestRouter(s sender.Sender) chi.Router {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	handler := NewNotificationHandler(s, logger)

	return NewRouter(RouterConfig{
		Handler:       handler,
		HealthHandler: health.NewHandler("Notification Service", 5005),
		Logger:        logger,
		CORS:          middleware.CORSConfig{Environment: "development"},
	})
}

func TestSendEmail_Success(t *testing.T) {
	stub := &stubSender{}
	router := newTestRouter(stub)

	payload := `{"to":"john@example.com","subject":"Password Reset","text":"click here","html":"<p>click here</p>"}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/notifications/email", strings.NewReader(payload))
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Email sent successfully", body["message"])

	assert.Equal(t, "john@example.com", stub.last.To)
	assert.Equal(t, "Password Reset", stub.last.Subject)
	assert.Equal(t, "<p>click here</p>", stub.last.HTML)
}

func TestSendEmail_TransportFailure(t *testing.T) {
	router := newTestRouter(&stubSender{err: errors.New("sendgrid rejected message: status 401")})

	payload := `{"to":"john@example.com","subject":"Hi","text":"hello"}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/notifications/email", strings.NewReader(payload))
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Failed to send email", body["message"])
}

func TestSendEmail_InvalidRecipient(t *testing.T) {
	stub := &stubSender{}
	router := newTestRouter(stub)

	payload := `{"to":"not-an-email","subject":"Hi"}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/notifications/email", strings.NewReader(payload))
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, stub.last.To)
}

func TestSendEmail_MissingSubject(t *testing.T) {
	router := newTestRouter(&stubSender{})

	payload := `{"to":"john@example.com"}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/notifications/email", strings.NewReader(payload))
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
