package pagination

import (
	"net/http"
	"strconv"
)

// DefaultLimit is the page size used when the client does not send one.
const DefaultLimit = 8

// MaxLimit caps the page size a client may request.
const MaxLimit = 100

// Params holds the limit/skip/search triple the catalog endpoints accept.
type Params struct {
	Limit  int64  `json:"limit"`
	Skip   int64  `json:"skip"`
	Search string `json:"search"`
}

// DefaultParams returns the defaults: first page of 8, no search filter.
func DefaultParams() Params {
	return Params{Limit: DefaultLimit, Skip: 0, Search: ""}
}

// FromRequest extracts limit, skip, and search from the request query string.
// Invalid values fall back to the defaults; a limit above MaxLimit is
// clamped to MaxLimit.
func FromRequest(r *http.Request) Params {
	p := DefaultParams()
	q := r.URL.Query()

	if limit := q.Get("limit"); limit != "" {
		if v, err := strconv.ParseInt(limit, 10, 64); err == nil && v > 0 {
			p.Limit = min(v, MaxLimit)
		}
	}

	if skip := q.Get("skip"); skip != "" {
		if v, err := strconv.ParseInt(skip, 10, 64); err == nil && v >= 0 {
			p.Skip = v
		}
	}

	p.Search = q.Get("search")
	return p
}
