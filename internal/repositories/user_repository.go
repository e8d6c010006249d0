package repositories

import (
	"github.com/husseinfaraj7/odv-sub000/internal/models"
)

// UserRepository defines the interface for administrator account data access.
type UserRepository interface {
	GetByUsername(username string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Create(user *models.User) error
}
