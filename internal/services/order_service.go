package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/husseinfaraj7/odv-sub000/internal/models"
	"github.com/husseinfaraj7/odv-sub000/internal/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// EventPublisher publishes order events for back-office consumers.
// Implemented by pkg/rabbitmq.Client.
type EventPublisher interface {
	Publish(exchange, routingKey string, body []byte) error
}

// OrderService handles business logic related to orders.
type OrderService struct {
	repo      repositories.OrderRepository
	notifier  Notifier
	publisher EventPublisher
	log       *zap.SugaredLogger
}

// NewOrderService creates a new OrderService. notifier and publisher may be
// nil to disable email notifications and event publishing.
func NewOrderService(repo repositories.OrderRepository, notifier Notifier, publisher EventPublisher, log *zap.SugaredLogger) *OrderService {
	return &OrderService{
		repo:      repo,
		notifier:  notifier,
		publisher: publisher,
		log:       log,
	}
}

// GetAllOrders retrieves all orders.
func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	return s.repo.GetAll()
}

// GetOrdersByStatus retrieves orders in the given status. The status value is
// parsed case-insensitively.
func (s *OrderService) GetOrdersByStatus(statusValue string) ([]models.Order, error) {
	status, err := models.ParseOrderStatus(statusValue)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidStatus, err)
	}
	return s.repo.GetByStatus(status)
}

// GetOrderByID retrieves a single order by its ID.
func (s *OrderService) GetOrderByID(id string) (*models.Order, error) {
	order, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

// CreateOrder validates and persists a new order. The total is always
// recomputed from the line items, ignoring any client-supplied value. The
// confirmation email and order event are best effort.
func (s *OrderService) CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error) {
	if len(order.Items) == 0 {
		return nil, fmt.Errorf("%w: an order needs at least one item", ErrInvalidOrder)
	}

	var total float64
	for _, item := range order.Items {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("%w: item %q has non-positive quantity %d", ErrInvalidOrder, item.ProductName, item.Quantity)
		}
		if item.UnitPrice <= 0 {
			return nil, fmt.Errorf("%w: item %q has non-positive unit price", ErrInvalidOrder, item.ProductName)
		}
		total += item.UnitPrice * float64(item.Quantity)
	}
	order.TotalAmount = math.Round(total*100) / 100
	order.Status = models.StatusPending

	if err := s.repo.Create(order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if s.notifier != nil {
		if err := s.notifier.NotifyOrderCreated(ctx, order); err != nil {
			s.log.Warnw("failed to send order confirmation email", "order_id", order.ID, "error", err)
		}
	}
	s.publishEvent("order.created", order, "")

	return order, nil
}

// UpdateOrderStatus moves an order to a new status. The value is parsed
// case-insensitively and trimmed; transitions out of DELIVERED or CANCELLED
// are rejected.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, id string, statusValue string) (*models.Order, error) {
	status, err := models.ParseOrderStatus(statusValue)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidStatus, err)
	}

	order, err := s.GetOrderByID(id)
	if err != nil {
		return nil, err
	}

	previous := order.Status
	if !previous.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w: %s is terminal, cannot move to %s", ErrStatusTerminal, previous, status)
	}

	if err := s.repo.UpdateStatus(id, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to update status of order %s: %w", id, err)
	}
	order.Status = status

	if s.notifier != nil {
		if err := s.notifier.NotifyOrderStatusChanged(ctx, order, previous); err != nil {
			s.log.Warnw("failed to send order status email", "order_id", order.ID, "error", err)
		}
	}
	s.publishEvent("order.status_changed", order, previous)

	return order, nil
}

// publishEvent emits an order event to RabbitMQ, logging but swallowing
// failures.
func (s *OrderService) publishEvent(event string, order *models.Order, previous models.OrderStatus) {
	if s.publisher == nil {
		return
	}

	payload := map[string]interface{}{
		"event":          event,
		"order_id":       order.ID,
		"status":         order.Status,
		"total_amount":   order.TotalAmount,
		"customer_email": order.CustomerEmail,
		"occurred_at":    time.Now().UTC().Format(time.RFC3339),
	}
	if previous != "" {
		payload["previous_status"] = previous
	}

	body, err := json.Marshal(payload)
	if err != nil {
		s.log.Errorw("failed to marshal order event", "order_id", order.ID, "error", err)
		return
	}
	if err := s.publisher.Publish("", "order_events", body); err != nil {
		s.log.Warnw("failed to publish order event", "event", event, "order_id", order.ID, "error", err)
		return
	}
	s.log.Infow("published order event", "event", event, "order_id", order.ID)
}
