package repository

import (
	"context"

	"github.com/Bilal-Raza-SWE/AutoMERNate/internal/product/domain"
	"github.com/Bilal-Raza-SWE/AutoMERNate/pkg/pagination"
)

// ProductRepository defines persistence operations for products.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context, params pagination.Params) ([]domain.Product, int64, error)
	ListTop(ctx context.Context, limit int64) ([]domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id string) error
	AppendReview(ctx context.Context, product *domain.Product) error
}
