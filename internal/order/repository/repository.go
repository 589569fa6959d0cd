package repository

import (
	"context"

	"github.com/Bilal-Raza-SWE/AutoMERNate/internal/order/domain"
)

// OrderRepository defines persistence operations for orders.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
	ListAll(ctx context.Context) ([]domain.Order, error)
	MarkPaid(ctx context.Context, order *domain.Order) error
	MarkDelivered(ctx context.Context, order *domain.Order) error
}
