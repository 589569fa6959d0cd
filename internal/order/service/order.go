package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Bilal-Raza-SWE/AutoMERNate/internal/order/client"
	"github.com/Bilal-Raza-SWE/AutoMERNate/internal/order/domain"
	"github.com/Bilal-Raza-SWE/AutoMERNate/internal/order/repository"
	apperrors "github.com/Bilal-Raza-SWE/AutoMERNate/pkg/errors"
)

// OrderService implements the business logic for order operations.
type OrderService struct {
	repo   repository.OrderRepository
	users  *client.UserClient
	logger *slog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(repo repository.OrderRepository, users *client.UserClient, logger *slog.Logger) *OrderService {
	return &OrderService{repo: repo, users: users, logger: logger}
}

// CartItem is a cart line captured at checkout. ID is the catalog product
// it was taken from and becomes the order item's product ref.
type CartItem struct {
	ID    string  `json:"_id"`
	Name  string  `json:"name"`
	Qty   int     `json:"qty"`
	Image string  `json:"image"`
	Price float64 `json:"price"`
}

// CreateInput holds the parameters for placing an order.
type CreateInput struct {
	UserID          string
	CartItems       []CartItem
	ShippingAddress domain.ShippingAddress
	PaymentMethod   string
	ItemsPrice      float64
	TaxPrice        float64
	ShippingPrice   float64
	TotalPrice      float64
}

// PaymentInput holds the provider confirmation recorded when an order is
// marked paid.
type PaymentInput struct {
	ID         string
	Status     string
	UpdateTime string
	Email      string
}

// Create places a new order bound to the caller, snapshotting the cart
// items. An empty cart fails with InvalidInput.
func (s *OrderService) Create(ctx context.Context, input CreateInput) (*domain.Order, error) {
	if len(input.CartItems) == 0 {
		return nil, apperrors.InvalidInput("No order items.")
	}

	items := make([]domain.OrderItem, 0, len(input.CartItems))
	for _, item := range input.CartItems {
		items = append(items, domain.OrderItem{
			Name:    item.Name,
			Qty:     item.Qty,
			Image:   item.Image,
			Price:   item.Price,
			Product: item.ID,
		})
	}

	order := &domain.Order{
		User:            input.UserID,
		OrderItems:      items,
		ShippingAddress: input.ShippingAddress,
		PaymentMethod:   input.PaymentMethod,
		ItemsPrice:      input.ItemsPrice,
		TaxPrice:        input.TaxPrice,
		ShippingPrice:   input.ShippingPrice,
		TotalPrice:      input.TotalPrice,
	}

	if err := s.repo.Create(ctx, order); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "order placed",
		slog.String("order_id", order.ID.Hex()),
		slog.String("user_id", order.User),
		slog.Float64("total", order.TotalPrice),
	)
	return order, nil
}

// ListMine returns the caller's orders, failing with NotFound when none.
func (s *OrderService) ListMine(ctx context.Context, userID string) ([]domain.Order, error) {
	orders, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, apperrors.NotFound("No orders found for the logged-in user.")
	}
	return orders, nil
}

// GetByID returns an order with its user ref resolved against the user
// service. An enrichment failure fails the whole request.
func (s *OrderService) GetByID(ctx context.Context, id string) (*domain.EnrichedOrder, error) {
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetUser(ctx, order.User)
	if err != nil {
		return nil, fmt.Errorf("enrich order %s: %w", order.ID.Hex(), err)
	}

	return &domain.EnrichedOrder{
		Order: *order,
		User: domain.EnrichedUser{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		},
	}, nil
}

// ListAll returns every order for admins, failing with NotFound when none.
// Each row is enriched with the user's id and name; a failed lookup leaves
// the raw ref in place rather than failing the listing.
func (s *OrderService) ListAll(ctx context.Context) ([]domain.EnrichedOrder, error) {
	orders, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, apperrors.NotFound("Orders not found!")
	}

	enriched := make([]domain.EnrichedOrder, 0, len(orders))
	for _, order := range orders {
		user, err := s.users.GetUser(ctx, order.User)
		if err != nil {
			s.logger.WarnContext(ctx, "order enrichment skipped",
				slog.String("order_id", order.ID.Hex()),
				slog.String("user_ref", order.User),
				slog.String("error", err.Error()),
			)
			enriched = append(enriched, domain.EnrichedOrder{Order: order, User: order.User})
			continue
		}
		enriched = append(enriched, domain.EnrichedOrder{
			Order: order,
			User:  domain.EnrichedUser{ID: user.ID, Name: user.Name},
		})
	}
	return enriched, nil
}

// MarkPaid transitions the order to paid, recording the provider
// confirmation. The transition is monotonic: a paid order stays paid and
// keeps its original paidAt.
func (s *OrderService) MarkPaid(ctx context.Context, id string, payment PaymentInput) (*domain.Order, error) {
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !order.IsPaid {
		now := time.Now().UTC()
		order.IsPaid = true
		order.PaidAt = &now
	}
	order.PaymentResult = &domain.PaymentResult{
		ID:           payment.ID,
		Status:       payment.Status,
		UpdateTime:   payment.UpdateTime,
		EmailAddress: payment.Email,
	}

	if err := s.repo.MarkPaid(ctx, order); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "order paid",
		slog.String("order_id", order.ID.Hex()),
	)
	return order, nil
}

// MarkDelivered transitions the order to delivered. The transition is
// monotonic: a delivered order keeps its original deliveredAt.
func (s *OrderService) MarkDelivered(ctx context.Context, id string) (*domain.Order, error) {
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !order.IsDelivered {
		now := time.Now().UTC()
		order.IsDelivered = true
		order.DeliveredAt = &now
	}

	if err := s.repo.MarkDelivered(ctx, order); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "order delivered",
		slog.String("order_id", order.ID.Hex()),
	)
	return order, nil
}
