package service

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Bilal-Raza-SWE/AutoMERNate/internal/product/domain"
	"github.com/Bilal-Raza-SWE/AutoMERNate/internal/product/repository"
	apperrors "github.com/Bilal-Raza-SWE/AutoMERNate/pkg/errors"
	"github.com/Bilal-Raza-SWE/AutoMERNate/pkg/mongodb"
	"github.com/Bilal-Raza-SWE/AutoMERNate/pkg/pagination"
)

const topProductsLimit = 3

// ProductService implements the business logic for catalog operations.
type ProductService struct {
	repo   repository.ProductRepository
	logger *slog.Logger
}

// NewProductService creates a new product service.
func NewProductService(repo repository.ProductRepository, logger *slog.Logger) *ProductService {
	return &ProductService{repo: repo, logger: logger}
}

// CreateInput holds the parameters for creating a product.
type CreateInput struct {
	User         string
	Name         string
	Image        string
	Description  string
	Brand        string
	Category     string
	Price        float64
	CountInStock int
}

// UpdateInput holds the parameters for a partial catalog update. Zero-valued
// fields are left unchanged.
type UpdateInput struct {
	Name         string
	Image        string
	Description  string
	Brand        string
	Category     string
	Price        float64
	CountInStock int
}

// ReviewInput holds the parameters for appending a review.
type ReviewInput struct {
	User    string
	Name    string
	Rating  float64
	Comment string
}

// List returns a page of products and the total catalog count. When the
// store is unreachable the error carries the StoreUnavailable code so the
// handler can degrade to an empty page instead of failing outright. Query
// failures against a reachable store surface as plain errors.
func (s *ProductService) List(ctx context.Context, params pagination.Params) ([]domain.Product, int64, error) {
	products, total, err := s.repo.List(ctx, params)
	if err != nil {
		if mongodb.IsUnavailable(err) {
			s.logger.ErrorContext(ctx, "product store unreachable",
				slog.String("error", err.Error()),
			)
			return nil, 0, apperrors.StoreUnavailable(err)
		}
		return nil, 0, err
	}
	return products, total, nil
}

// ListTop returns the three highest-rated products.
func (s *ProductService) ListTop(ctx context.Context) ([]domain.Product, error) {
	return s.repo.ListTop(ctx, topProductsLimit)
}

// GetByID returns a product by id, failing with NotFound when absent.
func (s *ProductService) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// Create inserts a new product. An absent user ref defaults to the zero
// ObjectID so unowned seed data remains representable.
func (s *ProductService) Create(ctx context.Context, input CreateInput) (*domain.Product, error) {
	user := input.User
	if user == "" {
		user = primitive.NilObjectID.Hex()
	}

	product := &domain.Product{
		User:         user,
		Name:         input.Name,
		Image:        input.Image,
		Description:  input.Description,
		Brand:        input.Brand,
		Category:     input.Category,
		Price:        input.Price,
		CountInStock: input.CountInStock,
		Reviews:      []domain.Review{},
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "product created",
		slog.String("product_id", product.ID.Hex()),
		slog.String("name", product.Name),
	)
	return product, nil
}

// Update applies a partial catalog update, keeping existing values for
// zero-valued input fields.
func (s *ProductService) Update(ctx context.Context, id string, input UpdateInput) (*domain.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		product.Name = input.Name
	}
	if input.Image != "" {
		product.Image = input.Image
	}
	if input.Description != "" {
		product.Description = input.Description
	}
	if input.Brand != "" {
		product.Brand = input.Brand
	}
	if input.Category != "" {
		product.Category = input.Category
	}
	if input.Price != 0 {
		product.Price = input.Price
	}
	if input.CountInStock != 0 {
		product.CountInStock = input.CountInStock
	}

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete removes a product, failing with NotFound when absent.
func (s *ProductService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// AddReview appends a review to the product and recomputes the rating
// aggregates in the same document write.
func (s *ProductService) AddReview(ctx context.Context, productID string, input ReviewInput) (*domain.Product, error) {
	product, err := s.repo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	review := domain.Review{
		ID:        primitive.NewObjectID(),
		User:      input.User,
		Name:      input.Name,
		Rating:    input.Rating,
		Comment:   input.Comment,
		CreatedAt: time.Now().UTC(),
	}
	product.Reviews = append(product.Reviews, review)
	product.RecomputeAggregates()

	if err := s.repo.AppendReview(ctx, product); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "review added",
		slog.String("product_id", product.ID.Hex()),
		slog.Int("num_reviews", product.NumReviews),
	)
	return product, nil
}
