package repository

import (
	"context"

	"github.com/Bilal-Raza-SWE/AutoMERNate/internal/user/domain"
)

// UserRepository defines the interface for user persistence operations.
type UserRepository interface {
	// Create inserts a new user. Returns a Conflict error when the email is
	// already registered.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their identifier hex string.
	GetByID(ctx context.Context, id string) (*domain.User, error)

	// GetByEmail retrieves a user by their email address.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// ListByAdminFlag returns all users with the given administrator flag.
	ListByAdminFlag(ctx context.Context, isAdmin bool) ([]domain.User, error)

	// Update replaces the mutable fields of an existing user.
	Update(ctx context.Context, user *domain.User) error

	// Delete removes a user by their identifier hex string.
	Delete(ctx context.Context, id string) error
}
