package service

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Bilal-Raza-SWE/AutoMERNate/internal/order/client"
	"github.com/Bilal-Raza-SWE/AutoMERNate/internal/order/domain"
	apperrors "github.com/Bilal-Raza-SWE/AutoMERNate/pkg/errors"
	"github.com/Bilal-Raza-SWE/AutoMERNate/pkg/httpclient"
)

// --- Mock Order Repository ---

type mockOrderRepository struct {
	mock.Mock
}

func (m *mockOrderRepository) Create(ctx context.Context, order *domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *mockOrderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *mockOrderRepository) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *mockOrderRepository) ListAll(ctx context.Context) ([]domain.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *mockOrderRepository) MarkPaid(ctx context.Context, order *domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *mockOrderRepository) MarkDelivered(ctx context.Context, order *domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

// --- Test Helpers ---

func newTestService(repo *mockOrderRepository, userServiceURL string) *OrderService {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	users := client.NewUserClient(userServiceURL, httpclient.New(httpclient.Config{Timeout: time.Second}))
	return NewOrderService(repo, users, logger)
}

// fakeUserService answers GET /api/v1/users/{id} for the listed users and
// 404s everything else.
func fakeUserService(t *testing.T, known map[string]string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Path[len("/api/v1/users/"):]
		name, ok := known[id]
		w.Header().Set("Content-Type", "application/json")
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"User not found!"}`))
			return
		}
		_, _ = w.Write([]byte(`{"_id":"` + id + `","name":"` + name + `","email":"` + name + `@example.com"}`))
	}))
}

// --- Create Tests ---

func TestCreate_EmptyCart(t *testing.T) {
	repo := new(mockOrderRepository)
	svc := newTestService(repo, "http://localhost:0")

	_, err := svc.Create(context.Background(), CreateInput{UserID: "user-1"})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "No order items.", appErr.Message)
}

func TestCreate_SnapshotsCartItems(t *testing.T) {
	repo := new(mockOrderRepository)
	svc := newTestService(repo, "http://localhost:0")
	ctx := context.Background()

	repo.On("Create", ctx, mock.AnythingOfType("*domain.Order")).Return(nil)

	productID := primitive.NewObjectID().Hex()
	order, err := svc.Create(ctx, CreateInput{
		UserID: "user-1",
		CartItems: []CartItem{
			{ID: productID, Name: "Airpods", Qty: 2, Price: 99.99},
		},
		PaymentMethod: "Razorpay",
		TotalPrice:    199.98,
	})

	require.NoError(t, err)
	assert.Equal(t, "user-1", order.User)
	require.Len(t, order.OrderItems, 1)
	assert.Equal(t, productID, order.OrderItems[0].Product)
	assert.Equal(t, 2, order.OrderItems[0].Qty)
	assert.False(t, order.IsPaid)
	assert.False(t, order.IsDelivered)
	assert.Nil(t, order.PaidAt)
}

// --- My Orders Tests ---

func TestListMine_EmptyIsNotFound(t *testing.T) {
	repo := new(mockOrderRepository)
	svc := newTestService(repo, "http://localhost:0")
	ctx := context.Background()

	repo.On("ListByUser", ctx, "user-1").Return([]domain.Order{}, nil)

	_, err := svc.ListMine(ctx, "user-1")

	require.Error(t, err)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "No orders found for the logged-in user.", appErr.Message)
}

// --- Enrichment Tests ---

func TestGetByID_EnrichesUser(t *testing.T) {
	userID := primitive.NewObjectID().Hex()
	userSrv := fakeUserService(t, map[string]string{userID: "John"})
	defer userSrv.Close()

	repo := new(mockOrderRepository)
	svc := newTestService(repo, userSrv.URL)
	ctx := context.Background()

	orderID := primitive.NewObjectID()
	repo.On("GetByID", ctx, orderID.Hex()).Return(&domain.Order{ID: orderID, User: userID}, nil)

	enriched, err := svc.GetByID(ctx, orderID.Hex())

	require.NoError(t, err)
	user, ok := enriched.User.(domain.EnrichedUser)
	require.True(t, ok)
	assert.Equal(t, userID, user.ID)
	assert.Equal(t, "John", user.Name)
	assert.Equal(t, "John@example.com", user.Email)
}

func TestGetByID_EnrichmentFailureFailsRequest(t *testing.T) {
	userSrv := fakeUserService(t, nil)
	defer userSrv.Close()

	repo := new(mockOrderRepository)
	svc := newTestService(repo, userSrv.URL)
	ctx := context.Background()

	orderID := primitive.NewObjectID()
	repo.On("GetByID", ctx, orderID.Hex()).Return(&domain.Order{
		ID:   orderID,
		User: primitive.NewObjectID().Hex(),
	}, nil)

	_, err := svc.GetByID(ctx, orderID.Hex())

	require.Error(t, err)
}

func TestListAll_SwallowsPerRowEnrichmentFailure(t *testing.T) {
	knownID := primitive.NewObjectID().Hex()
	unknownID := primitive.NewObjectID().Hex()
	userSrv := fakeUserService(t, map[string]string{knownID: "John"})
	defer userSrv.Close()

	repo := new(mockOrderRepository)
	svc := newTestService(repo, userSrv.URL)
	ctx := context.Background()

	repo.On("ListAll", ctx).Return([]domain.Order{
		{ID: primitive.NewObjectID(), User: knownID},
		{ID: primitive.NewObjectID(), User: unknownID},
	}, nil)

	enriched, err := svc.ListAll(ctx)

	require.NoError(t, err)
	require.Len(t, enriched, 2)

	user, ok := enriched[0].User.(domain.EnrichedUser)
	require.True(t, ok)
	assert.Equal(t, "John", user.Name)
	assert.Empty(t, user.Email)

	// Failed lookup keeps the raw ref.
	raw, ok := enriched[1].User.(string)
	require.True(t, ok)
	assert.Equal(t, unknownID, raw)
}

func TestListAll_EmptyIsNotFound(t *testing.T) {
	repo := new(mockOrderRepository)
	svc := newTestService(repo, "http://localhost:0")
	ctx := context.Background()

	repo.On("ListAll", ctx).Return([]domain.Order{}, nil)

	_, err := svc.ListAll(ctx)

	require.Error(t, err)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Orders not found!", appErr.Message)
}

// --- Transition Tests ---

func TestMarkPaid_SetsTimestampOnce(t *testing.T) {
	repo := new(mockOrderRepository)
	svc := newTestService(repo, "http://localhost:0")
	ctx := context.Background()

	orderID := primitive.NewObjectID()
	firstPaidAt := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	repo.On("GetByID", ctx, orderID.Hex()).Return(&domain.Order{
		ID:     orderID,
		IsPaid: true,
		PaidAt: &firstPaidAt,
	}, nil)
	repo.On("MarkPaid", ctx, mock.AnythingOfType("*domain.Order")).Return(nil)

	order, err := svc.MarkPaid(ctx, orderID.Hex(), PaymentInput{
		ID:     "pay_123",
		Status: "captured",
		Email:  "john@example.com",
	})

	require.NoError(t, err)
	assert.True(t, order.IsPaid)
	// Already-paid orders keep the original timestamp.
	assert.Equal(t, firstPaidAt, *order.PaidAt)
	assert.Equal(t, "pay_123", order.PaymentResult.ID)
}

func TestMarkPaid_FirstTransition(t *testing.T) {
	repo := new(mockOrderRepository)
	svc := newTestService(repo, "http://localhost:0")
	ctx := context.Background()

	orderID := primitive.NewObjectID()
	repo.On("GetByID", ctx, orderID.Hex()).Return(&domain.Order{ID: orderID}, nil)
	repo.On("MarkPaid", ctx, mock.AnythingOfType("*domain.Order")).Return(nil)

	order, err := svc.MarkPaid(ctx, orderID.Hex(), PaymentInput{ID: "pay_123", Status: "captured"})

	require.NoError(t, err)
	assert.True(t, order.IsPaid)
	require.NotNil(t, order.PaidAt)
	assert.WithinDuration(t, time.Now().UTC(), *order.PaidAt, 5*time.Second)
}

func TestMarkDelivered_FirstTransition(t *testing.T) {
	repo := new(mockOrderRepository)
	svc := newTestService(repo, "http://localhost:0")
	ctx := context.Background()

	orderID := primitive.NewObjectID()
	repo.On("GetByID", ctx, orderID.Hex()).Return(&domain.Order{ID: orderID}, nil)
	repo.On("MarkDelivered", ctx, mock.AnythingOfType("*domain.Order")).Return(nil)

	order, err := svc.MarkDelivered(ctx, orderID.Hex())

	require.NoError(t, err)
	assert.True(t, order.IsDelivered)
	require.NotNil(t, order.DeliveredAt)
}

func TestMarkDelivered_Missing(t *testing.T) {
	repo := new(mockOrderRepository)
	svc := newTestService(repo, "http://localhost:0")
	ctx := context.Background()

	repo.On("GetByID", ctx, "missing").Return(nil, apperrors.NotFound("Order not found!"))

	_, err := svc.MarkDelivered(ctx, "missing")

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
