package repositories

import (
	"github.com/husseinfaraj7/odv-sub000/internal/models"
)

// OrderRepository defines the interface for order data access. Orders are
// never deleted; cancelled orders stay on record.
type OrderRepository interface {
	GetAll() ([]models.Order, error)
	GetByID(id string) (*models.Order, error)
	GetByStatus(status models.OrderStatus) ([]models.Order, error)
	Create(order *models.Order) error
	UpdateStatus(id string, status models.OrderStatus) error
}
