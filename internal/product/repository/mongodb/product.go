package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Bilal-Raza-SWE/AutoMERNate/internal/product/domain"
	apperrors "github.com/Bilal-Raza-SWE/AutoMERNate/pkg/errors"
	"github.com/Bilal-Raza-SWE/AutoMERNate/pkg/pagination"
)

// ProductRepository is the MongoDB implementation of repository.ProductRepository.
type ProductRepository struct {
	collection *mongo.Collection
}

// NewProductRepository creates a repository over the products collection.
func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{collection: db.Collection("products")}
}

// Create inserts a new product, stamping createdAt/updatedAt.
func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) error {
	now := time.Now().UTC()
	product.CreatedAt = now
	product.UpdatedAt = now
	if product.ID.IsZero() {
		product.ID = primitive.NewObjectID()
	}
	if product.Reviews == nil {
		product.Reviews = []domain.Review{}
	}

	if _, err := r.collection.InsertOne(ctx, product); err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID retrieves a product by its identifier hex string.
func (r *ProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.NotFound("Product not found!")
	}

	var product domain.Product
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&product); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.NotFound("Product not found!")
		}
		return nil, fmt.Errorf("find product by id: %w", err)
	}
	return &product, nil
}

// List returns a page of products matching the search term together with the
// total collection count. The search is a case-insensitive substring match on
// the product name.
func (r *ProductRepository) List(ctx context.Context, params pagination.Params) ([]domain.Product, int64, error) {
	total, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	filter := bson.M{
		"name": bson.M{"$regex": params.Search, "$options": "i"},
	}
	opts := options.Find().SetLimit(params.Limit).SetSkip(params.Skip)

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	defer cursor.Close(ctx)

	products := []domain.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, 0, fmt.Errorf("decode products: %w", err)
	}
	return products, total, nil
}

// ListTop returns the highest-rated products, rating descending.
func (r *ProductRepository) ListTop(ctx context.Context, limit int64) ([]domain.Product, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "rating", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list top products: %w", err)
	}
	defer cursor.Close(ctx)

	products := []domain.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("decode top products: %w", err)
	}
	return products, nil
}

// Update replaces the mutable catalog fields of an existing product and bumps
// updatedAt.
func (r *ProductRepository) Update(ctx context.Context, product *domain.Product) error {
	product.UpdatedAt = time.Now().UTC()

	update := bson.M{"$set": bson.M{
		"name":         product.Name,
		"image":        product.Image,
		"description":  product.Description,
		"brand":        product.Brand,
		"category":     product.Category,
		"price":        product.Price,
		"countInStock": product.CountInStock,
		"updatedAt":    product.UpdatedAt,
	}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": product.ID}, update)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if result.MatchedCount == 0 {
		return apperrors.NotFound("Product not found!")
	}
	return nil
}

// Delete removes a product by its identifier hex string.
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.NotFound("Product not found!")
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if result.DeletedCount == 0 {
		return apperrors.NotFound("Product not found!")
	}
	return nil
}

// AppendReview persists the product's review list and recomputed aggregates
// in a single document write so the aggregates can never drift from the
// reviews they summarize.
func (r *ProductRepository) AppendReview(ctx context.Context, product *domain.Product) error {
	product.UpdatedAt = time.Now().UTC()

	update := bson.M{"$set": bson.M{
		"reviews":    product.Reviews,
		"numReviews": product.NumReviews,
		"rating":     product.Rating,
		"updatedAt":  product.UpdatedAt,
	}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": product.ID}, update)
	if err != nil {
		return fmt.Errorf("append review: %w", err)
	}
	if result.MatchedCount == 0 {
		return apperrors.NotFound("Product not found!")
	}
	return nil
}
