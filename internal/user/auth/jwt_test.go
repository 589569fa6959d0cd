package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bilal-Raza-SWE/AutoMERNate/pkg/middleware"
)

func newTestManager() *Manager {
	return NewManager("test-secret-key-for-testing", time.Hour, false)
}

func TestSessionToken_RoundTrip(t *testing.T) {
	m := newTestManager()

	token, err := m.GenerateSessionToken("user-1", true)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.ValidateSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.True(t, claims.IsAdmin)
	assert.Equal(t, "user-service", claims.Issuer)
}

func TestSessionToken_WrongSecret(t *testing.T) {
	m := newTestManager()
	other := NewManager("completely-different-secret", time.Hour, false)

	token, err := m.GenerateSessionToken("user-1", false)
	require.NoError(t, err)

	_, err = other.ValidateSessionToken(token)
	assert.Error(t, err)
}

func TestSessionToken_Expired(t *testing.T) {
	m := NewManager("test-secret-key-for-testing", -time.Minute, false)

	token, err := m.GenerateSessionToken("user-1", false)
	require.NoError(t, err)

	_, err = m.ValidateSessionToken(token)
	assert.Error(t, err)
}

func TestResetToken_RoundTrip(t *testing.T) {
	m := newTestManager()

	token, err := m.GenerateResetToken("user-1", "john@example.com")
	require.NoError(t, err)

	claims, err := m.ValidateResetToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "john@example.com", claims.Email)
}

func TestResetToken_Garbage(t *testing.T) {
	m := newTestManager()

	_, err := m.ValidateResetToken("not.a.token")
	assert.Error(t, err)
}

func TestSessionCookie_SetAndClear(t *testing.T) {
	m := newTestManager()

	rec := httptest.NewRecorder()
	m.SetSessionCookie(rec, "signed-token")

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, middleware.SessionCookieName, cookie.Name)
	assert.Equal(t, "signed-token", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, "/", cookie.Path)

	rec = httptest.NewRecorder()
	m.ClearSessionCookie(rec)

	cookies = rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	assert.Equal(t, -1, cookies[0].MaxAge)
}
