package models

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

// Order lifecycle states. The normal flow is
// PENDING → CONFIRMED → PROCESSING → SHIPPED → DELIVERED.
// CANCELLED and DELIVERED are terminal.
const (
	StatusPending    OrderStatus = "PENDING"
	StatusConfirmed  OrderStatus = "CONFIRMED"
	StatusProcessing OrderStatus = "PROCESSING"
	StatusShipped    OrderStatus = "SHIPPED"
	StatusDelivered  OrderStatus = "DELIVERED"
	StatusCancelled  OrderStatus = "CANCELLED"
)

var orderStatuses = map[OrderStatus]bool{
	StatusPending:    true,
	StatusConfirmed:  true,
	StatusProcessing: true,
	StatusShipped:    true,
	StatusDelivered:  true,
	StatusCancelled:  true,
}

// ParseOrderStatus parses a status value case-insensitively, ignoring
// surrounding whitespace.
func ParseOrderStatus(s string) (OrderStatus, error) {
	status := OrderStatus(strings.ToUpper(strings.TrimSpace(s)))
	if !orderStatuses[status] {
		return "", fmt.Errorf("unknown order status %q", s)
	}
	return status, nil
}

// IsTerminal reports whether no further transitions are allowed from s.
func (s OrderStatus) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransitionTo reports whether an order in status s may move to next.
// Terminal states (DELIVERED, CANCELLED) reject every outgoing transition,
// including back to SHIPPED or any earlier state.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s.IsTerminal() {
		return false
	}
	return orderStatuses[next]
}

// OrderItem is a single line of an order. The product name and unit price
// are snapshotted at order time so later catalog edits do not change history.
type OrderItem struct {
	ID          string  `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderID     string  `json:"-" gorm:"type:varchar(36);index"`
	ProductName string  `json:"product_name" gorm:"type:varchar(100)" validate:"required,min=1,max=100"`
	Quantity    int     `json:"quantity" validate:"required,gt=0"`
	UnitPrice   float64 `json:"unit_price" validate:"required,gt=0"`
}

// Order represents a customer order placed through the shop.
type Order struct {
	ID                 string      `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	CustomerName       string      `json:"customer_name" gorm:"type:varchar(100)" validate:"required,min=2,max=100"`
	CustomerEmail      string      `json:"customer_email" gorm:"type:varchar(255)" validate:"required,email"`
	CustomerPhone      string      `json:"customer_phone" gorm:"type:varchar(30)" validate:"omitempty,max=30"`
	ShippingAddress    string      `json:"shipping_address" gorm:"type:varchar(255)" validate:"required,max=255"`
	ShippingCity       string      `json:"shipping_city" gorm:"type:varchar(100)" validate:"required,max=100"`
	ShippingPostalCode string      `json:"shipping_postal_code" gorm:"type:varchar(20)" validate:"required,max=20"`
	ShippingCountry    string      `json:"shipping_country" gorm:"type:varchar(100)" validate:"omitempty,max=100"`
	TotalAmount        float64     `json:"total_amount" validate:"gte=0"`
	Status             OrderStatus `json:"status" gorm:"type:varchar(20);index"`
	Items              []OrderItem `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" validate:"required,min=1,dive"`
	gorm.Model                     // CreatedAt, UpdatedAt, DeletedAt
}
