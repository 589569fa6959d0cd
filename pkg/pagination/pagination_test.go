package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromRequest_Defaults(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/v1/products", nil)

	p := FromRequest(req)

	assert.Equal(t, int64(DefaultLimit), p.Limit)
	assert.Equal(t, int64(0), p.Skip)
	assert.Empty(t, p.Search)
}

func TestFromRequest_Explicit(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/v1/products?limit=20&skip=40&search=airpods", nil)

	p := FromRequest(req)

	assert.Equal(t, int64(20), p.Limit)
	assert.Equal(t, int64(40), p.Skip)
	assert.Equal(t, "airpods", p.Search)
}

func TestFromRequest_InvalidValuesFallBack(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"non-numeric", "/api/v1/products?limit=abc&skip=xyz"},
		{"negative", "/api/v1/products?limit=-5&skip=-1"},
		{"zero limit", "/api/v1/products?limit=0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := FromRequest(httptest.NewRequest("GET", tt.url, nil))
			assert.Equal(t, int64(DefaultLimit), p.Limit)
			assert.Equal(t, int64(0), p.Skip)
		})
	}
}

func TestFromRequest_OversizedLimitClamps(t *testing.T) {
	p := FromRequest(httptest.NewRequest("GET", "/api/v1/products?limit=5000", nil))
	assert.Equal(t, int64(MaxLimit), p.Limit)

	p = FromRequest(httptest.NewRequest("GET", "/api/v1/products?limit=100", nil))
	assert.Equal(t, int64(MaxLimit), p.Limit)
}
