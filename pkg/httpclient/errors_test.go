package httpclient

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/Bilal-Raza-SWE/AutoMERNate/pkg/errors"
)

func fakeResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestParseResponseError_StatusMapping(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		sentinel error
	}{
		{"not found", http.StatusNotFound, apperrors.ErrNotFound},
		{"bad request", http.StatusBadRequest, apperrors.ErrInvalidInput},
		{"conflict", http.StatusConflict, apperrors.ErrAlreadyExists},
		{"unauthorized", http.StatusUnauthorized, apperrors.ErrUnauthorized},
		{"forbidden", http.StatusForbidden, apperrors.ErrForbidden},
		{"server error", http.StatusInternalServerError, apperrors.ErrBadGateway},
		{"bad gateway", http.StatusBadGateway, apperrors.ErrBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ParseResponseError(fakeResponse(tt.status, `{"message":"boom"}`), "user service")
			assert.ErrorIs(t, err, tt.sentinel)
		})
	}
}

func TestParseResponseError_PreservesMessage(t *testing.T) {
	err := ParseResponseError(fakeResponse(http.StatusNotFound, `{"message":"User not found!"}`), "user service")

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "user service: User not found!", appErr.Message)
	assert.Equal(t, http.StatusNotFound, appErr.Status)
}

func TestParseResponseError_NonJSONBody(t *testing.T) {
	err := ParseResponseError(fakeResponse(http.StatusBadGateway, "upstream timed out"), "payment service")

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "payment service: upstream timed out", appErr.Message)
}

func TestParseResponseError_UnmappedStatus(t *testing.T) {
	err := ParseResponseError(fakeResponse(http.StatusTeapot, `{"message":"odd"}`), "user service")

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "DOWNSTREAM_ERROR", appErr.Code)
	assert.Equal(t, http.StatusTeapot, appErr.Status)
}
