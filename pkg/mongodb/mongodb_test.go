package mongodb

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestIsUnavailable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"client disconnected", mongo.ErrClientDisconnected, true},
		{"wrapped disconnect", fmt.Errorf("count products: %w", mongo.ErrClientDisconnected), true},
		{"context deadline", context.DeadlineExceeded, true},
		{"network labeled command error", mongo.CommandError{Labels: []string{"NetworkError"}}, true},
		{"plain query error", errors.New("cursor decode failed"), false},
		{"command error", mongo.CommandError{Code: 11000, Message: "duplicate key"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsUnavailable(tt.err))
		})
	}
}

func TestRetryBackoff_Doubles(t *testing.T) {
	for attempt, base := range []time.Duration{time.Second, 2 * time.Second, 4 * time.Second} {
		wait := retryBackoff(attempt)
		assert.InDelta(t, float64(base), float64(wait), float64(base)*retryJitterFraction,
			"attempt %d", attempt)
	}
}
