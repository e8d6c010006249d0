package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/husseinfaraj7/odv-sub000/internal/models"
	"github.com/husseinfaraj7/odv-sub000/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MockOrderRepository is a mock implementation of repositories.OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) GetAll() ([]models.Order, error) {
	args := m.Called()
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByID(id string) (*models.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByStatus(status models.OrderStatus) ([]models.Order, error) {
	args := m.Called(status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepository) Create(order *models.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateStatus(id string, status models.OrderStatus) error {
	args := m.Called(id, status)
	return args.Error(0)
}

// MockNotifier is a mock implementation of services.Notifier.
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) NotifyContactReceived(ctx context.Context, msg *models.ContactMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockNotifier) NotifyOrderCreated(ctx context.Context, order *models.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockNotifier) NotifyOrderStatusChanged(ctx context.Context, order *models.Order, previous models.OrderStatus) error {
	args := m.Called(ctx, order, previous)
	return args.Error(0)
}

// MockEventPublisher is a mock implementation of services.EventPublisher.
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(exchange, routingKey string, body []byte) error {
	args := m.Called(exchange, routingKey, body)
	return args.Error(0)
}

func validOrder() *models.Order {
	return &models.Order{
		CustomerName:       "Mario Rossi",
		CustomerEmail:      "mario@example.org",
		ShippingAddress:    "Via Roma 1",
		ShippingCity:       "Milano",
		ShippingPostalCode: "20100",
		Items: []models.OrderItem{
			{ProductName: "Calendario solidale", Quantity: 2, UnitPrice: 10.50},
			{ProductName: "Tazza", Quantity: 1, UnitPrice: 8.00},
		},
	}
}

func TestOrderService_CreateOrder(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	mockNotifier := new(MockNotifier)
	mockPublisher := new(MockEventPublisher)
	service := services.NewOrderService(mockRepo, mockNotifier, mockPublisher, zap.NewNop().Sugar())

	order := validOrder()
	order.TotalAmount = 999.99 // client-supplied total must be ignored

	mockRepo.On("Create", order).Return(nil).Once()
	mockNotifier.On("NotifyOrderCreated", mock.Anything, order).Return(nil).Once()
	mockPublisher.On("Publish", "", "order_events", mock.Anything).Return(nil).Once()

	created, err := service.CreateOrder(context.Background(), order)

	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, created.Status)
	assert.InDelta(t, 29.00, created.TotalAmount, 0.001)
	mockRepo.AssertExpectations(t)
	mockNotifier.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}

func TestOrderService_CreateOrderEmailFailureIsNotFatal(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	mockNotifier := new(MockNotifier)
	service := services.NewOrderService(mockRepo, mockNotifier, nil, zap.NewNop().Sugar())

	order := validOrder()
	mockRepo.On("Create", order).Return(nil).Once()
	mockNotifier.On("NotifyOrderCreated", mock.Anything, order).Return(fmt.Errorf("brevo down")).Once()

	_, err := service.CreateOrder(context.Background(), order)

	assert.NoError(t, err)
	mockNotifier.AssertExpectations(t)
}

func TestOrderService_CreateOrderValidation(t *testing.T) {
	service := services.NewOrderService(new(MockOrderRepository), nil, nil, zap.NewNop().Sugar())

	t.Run("no items", func(t *testing.T) {
		order := validOrder()
		order.Items = nil
		_, err := service.CreateOrder(context.Background(), order)
		assert.ErrorIs(t, err, services.ErrInvalidOrder)
	})

	t.Run("zero quantity", func(t *testing.T) {
		order := validOrder()
		order.Items[0].Quantity = 0
		_, err := service.CreateOrder(context.Background(), order)
		assert.ErrorIs(t, err, services.ErrInvalidOrder)
	})

	t.Run("negative unit price", func(t *testing.T) {
		order := validOrder()
		order.Items[1].UnitPrice = -1
		_, err := service.CreateOrder(context.Background(), order)
		assert.ErrorIs(t, err, services.ErrInvalidOrder)
	})
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	mockNotifier := new(MockNotifier)
	service := services.NewOrderService(mockRepo, mockNotifier, nil, zap.NewNop().Sugar())

	existing := validOrder()
	existing.ID = "order-1"
	existing.Status = models.StatusPending

	mockRepo.On("GetByID", "order-1").Return(existing, nil).Once()
	mockRepo.On("UpdateStatus", "order-1", models.StatusConfirmed).Return(nil).Once()
	mockNotifier.On("NotifyOrderStatusChanged", mock.Anything, existing, models.StatusPending).Return(nil).Once()

	updated, err := service.UpdateOrderStatus(context.Background(), "order-1", "confirmed")

	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, updated.Status)
	mockRepo.AssertExpectations(t)
	mockNotifier.AssertExpectations(t)
}

func TestOrderService_UpdateOrderStatusRejectsUnknownValue(t *testing.T) {
	service := services.NewOrderService(new(MockOrderRepository), nil, nil, zap.NewNop().Sugar())

	_, err := service.UpdateOrderStatus(context.Background(), "order-1", "refunded")
	assert.ErrorIs(t, err, services.ErrInvalidStatus)
}

func TestOrderService_UpdateOrderStatusNotFound(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := services.NewOrderService(mockRepo, nil, nil, zap.NewNop().Sugar())

	mockRepo.On("GetByID", "missing").Return(nil, fmt.Errorf("failed to get order missing: %w", gorm.ErrRecordNotFound)).Once()

	_, err := service.UpdateOrderStatus(context.Background(), "missing", "confirmed")
	assert.ErrorIs(t, err, services.ErrOrderNotFound)
	mockRepo.AssertExpectations(t)
}

func TestOrderService_UpdateOrderStatusTerminalStates(t *testing.T) {
	cases := []struct {
		name    string
		current models.OrderStatus
		target  string
	}{
		{"delivered to shipped", models.StatusDelivered, "shipped"},
		{"delivered to cancelled", models.StatusDelivered, "cancelled"},
		{"cancelled to pending", models.StatusCancelled, "pending"},
		{"cancelled to delivered", models.StatusCancelled, "delivered"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mockRepo := new(MockOrderRepository)
			service := services.NewOrderService(mockRepo, nil, nil, zap.NewNop().Sugar())

			existing := validOrder()
			existing.ID = "order-1"
			existing.Status = tc.current
			mockRepo.On("GetByID", "order-1").Return(existing, nil).Once()

			_, err := service.UpdateOrderStatus(context.Background(), "order-1", tc.target)
			assert.ErrorIs(t, err, services.ErrStatusTerminal)
			mockRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
		})
	}
}

func TestOrderService_GetOrdersByStatus(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := services.NewOrderService(mockRepo, nil, nil, zap.NewNop().Sugar())

	expected := []models.Order{{ID: "order-1", Status: models.StatusShipped}}
	mockRepo.On("GetByStatus", models.StatusShipped).Return(expected, nil).Once()

	orders, err := service.GetOrdersByStatus(" shipped ")
	require.NoError(t, err)
	assert.Equal(t, expected, orders)
	mockRepo.AssertExpectations(t)

	_, err = service.GetOrdersByStatus("bogus")
	assert.ErrorIs(t, err, services.ErrInvalidStatus)
}
