package models

import "gorm.io/gorm"

// Product represents an item sold in the association's online shop.
type Product struct {
	ID          string  `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string  `json:"name" gorm:"type:varchar(100)" validate:"required,min=3,max=100"`
	Description string  `json:"description" gorm:"type:text" validate:"omitempty,max=1000"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Image       string  `json:"image" gorm:"type:varchar(500)" validate:"omitempty,url"`
	Category    string  `json:"category" gorm:"type:varchar(50);index" validate:"omitempty,max=50"`
	Stock       int     `json:"stock" validate:"gte=0"`
	gorm.Model          // CreatedAt, UpdatedAt, DeletedAt
}
