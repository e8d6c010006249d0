package models

import "gorm.io/gorm"

// User represents a back-office administrator account.
type User struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Username   string `json:"username" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=3,max=100"`
	Email      string `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password   string `gorm:"type:varchar(255)" validate:"required,min=8"` // No json tag: never serialized
	gorm.Model        // CreatedAt, UpdatedAt, DeletedAt
}
