package repositories

import (
	"github.com/husseinfaraj7/odv-sub000/internal/models"
)

// ContactRepository defines the interface for contact message data access.
type ContactRepository interface {
	GetAll(opts models.ContactListOptions) ([]models.ContactMessage, error)
	GetByID(id string) (*models.ContactMessage, error)
	Create(msg *models.ContactMessage) error
	UpdateStatus(id string, status string) error
	CountByStatus(status string) (int64, error)
}
