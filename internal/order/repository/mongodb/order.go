package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Bilal-Raza-SWE/AutoMERNate/internal/order/domain"
	apperrors "github.com/Bilal-Raza-SWE/AutoMERNate/pkg/errors"
)

// OrderRepository is the MongoDB implementation of repository.OrderRepository.
type OrderRepository struct {
	collection *mongo.Collection
}

// NewOrderRepository creates a repository over the orders collection.
func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{collection: db.Collection("orders")}
}

// Create inserts a new order, stamping createdAt/updatedAt.
func (r *OrderRepository) Create(ctx context.Context, order *domain.Order) error {
	now := time.Now().UTC()
	order.CreatedAt = now
	order.UpdatedAt = now
	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}

	if _, err := r.collection.InsertOne(ctx, order); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByID retrieves an order by its identifier hex string.
func (r *OrderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.NotFound("Order not found!")
	}

	var order domain.Order
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&order); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.NotFound("Order not found!")
		}
		return nil, fmt.Errorf("find order by id: %w", err)
	}
	return &order, nil
}

// ListByUser returns all orders placed by the given user.
func (r *OrderRepository) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"user": userID})
	if err != nil {
		return nil, fmt.Errorf("list orders by user: %w", err)
	}
	defer cursor.Close(ctx)

	var orders []domain.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}
	return orders, nil
}

// ListAll returns every order.
func (r *OrderRepository) ListAll(ctx context.Context) ([]domain.Order, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer cursor.Close(ctx)

	var orders []domain.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}
	return orders, nil
}

// MarkPaid persists the paid transition and payment result.
func (r *OrderRepository) MarkPaid(ctx context.Context, order *domain.Order) error {
	order.UpdatedAt = time.Now().UTC()

	update := bson.M{"$set": bson.M{
		"isPaid":        order.IsPaid,
		"paidAt":        order.PaidAt,
		"paymentResult": order.PaymentResult,
		"updatedAt":     order.UpdatedAt,
	}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": order.ID}, update)
	if err != nil {
		return fmt.Errorf("mark order paid: %w", err)
	}
	if result.MatchedCount == 0 {
		return apperrors.NotFound("Order not found!")
	}
	return nil
}

// MarkDelivered persists the delivered transition.
func (r *OrderRepository) MarkDelivered(ctx context.Context, order *domain.Order) error {
	order.UpdatedAt = time.Now().UTC()

	update := bson.M{"$set": bson.M{
		"isDelivered": order.IsDelivered,
		"deliveredAt": order.DeliveredAt,
		"updatedAt":   order.UpdatedAt,
	}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": order.ID}, update)
	if err != nil {
		return fmt.Errorf("mark order delivered: %w", err)
	}
	if result.MatchedCount == 0 {
		return apperrors.NotFound("Order not found!")
	}
	return nil
}
