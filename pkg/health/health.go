package health

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"
)

// Checker is a function that checks the health of a dependency.
type Checker func(ctx context.Context) error

// Response is the JSON response returned by the health endpoint.
type Response struct {
	Service   string            `json:"service"`
	Status    string            `json:"status"`
	Port      int               `json:"port"`
	Timestamp time.Time         `json:"timestamp"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// Handler serves the uniform /health probe every service exposes.
type Handler struct {
	service string
	port    int

	mu       sync.RWMutex
	checkers map[string]Checker
}

// NewHandler creates a health handler for the named service.
func NewHandler(service string, port int) *Handler {
	return &Handler{
		service:  service,
		port:     port,
		checkers: make(map[string]Checker),
	}
}

// Register adds a named health checker.
func (h *Handler) Register(name string, checker Checker) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.checkers[name] = checker
}

// ServeHTTP runs all registered checkers and reports the service status.
// A failing dependency flips the status to "unhealthy" with a 503; the
// service name, port, and timestamp are always included.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	h.mu.RLock()
	checkers := make(map[string]Checker, len(h.checkers))
	for k, v := range h.checkers {
		checkers[k] = v
	}
	h.mu.RUnlock()

	status := "healthy"
	var checks map[string]string
	if len(checkers) > 0 {
		checks = make(map[string]string, len(checkers))
		for name, checker := range checkers {
			if err := checker(ctx); err != nil {
				checks[name] = err.Error()
				status = "unhealthy"
			} else {
				checks[name] = "up"
			}
		}
	}

	resp := Response{
		Service:   h.service,
		Status:    status,
		Port:      h.port,
		Timestamp: time.Now().UTC(),
		Checks:    checks,
	}

	w.Header().Set("Content-Type", "application/json")
	if status != "healthy" {
		w.WriteHeader(http.StatusServiceUnavailable)
	} else {
		w.WriteHeader(http.StatusOK)
	}
	_ = json.NewEncoder(w).Encode(resp)
}
