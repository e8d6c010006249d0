package models

import "gorm.io/gorm"

// Contact message statuses.
const (
	ContactStatusUnread = "unread"
	ContactStatusRead   = "read"
)

// ContactMessage represents a message submitted via the website contact form.
type ContactMessage struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name       string `json:"name" gorm:"type:varchar(100)" validate:"required,min=2,max=100"`
	Email      string `json:"email" gorm:"type:varchar(255)" validate:"required,email"`
	Phone      string `json:"phone" gorm:"type:varchar(30)" validate:"omitempty,max=30"`
	Subject    string `json:"subject" gorm:"type:varchar(200)" validate:"omitempty,max=200"`
	Message    string `json:"message" gorm:"type:text" validate:"required,min=10,max=5000"`
	Status     string `json:"status" gorm:"type:varchar(10);default:unread" validate:"omitempty,oneof=unread read"`
	gorm.Model        // CreatedAt, UpdatedAt, DeletedAt
}

// ContactListOptions carries filter and pagination parameters for listing
// contact messages. Status "" or "all" returns all messages.
type ContactListOptions struct {
	Status string
	Limit  int
	Offset int
}
