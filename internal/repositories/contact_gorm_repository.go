package repositories

import (
	"fmt"

	"github.com/husseinfaraj7/odv-sub000/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMContactRepository is a GORM implementation of ContactRepository.
type GORMContactRepository struct {
	db *gorm.DB
}

// NewGORMContactRepository creates a new instance of GORMContactRepository.
func NewGORMContactRepository(db *gorm.DB) *GORMContactRepository {
	return &GORMContactRepository{
		db: db,
	}
}

var _ ContactRepository = (*GORMContactRepository)(nil)

// GetAll retrieves contact messages, newest first, optionally filtered by
// status and paginated. Status "" or "all" disables the filter.
func (r *GORMContactRepository) GetAll(opts models.ContactListOptions) ([]models.ContactMessage, error) {
	var messages []models.ContactMessage
	query := r.db.Order("created_at DESC")
	if opts.Status != "" && opts.Status != "all" {
		query = query.Where("status = ?", opts.Status)
	}
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.Offset > 0 {
		query = query.Offset(opts.Offset)
	}
	if err := query.Find(&messages).Error; err != nil {
		return nil, fmt.Errorf("failed to get contact messages: %w", err)
	}
	return messages, nil
}

// GetByID retrieves a single contact message by its ID.
func (r *GORMContactRepository) GetByID(id string) (*models.ContactMessage, error) {
	var msg models.ContactMessage
	if err := r.db.First(&msg, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to get contact message %s: %w", id, err)
	}
	return &msg, nil
}

// Create persists a new contact message, assigning an ID if missing.
func (r *GORMContactRepository) Create(msg *models.ContactMessage) error {
	if msg.ID == "" {
		msg.ID = uuid.New().String()
	}
	if msg.Status == "" {
		msg.Status = models.ContactStatusUnread
	}
	if err := r.db.Create(msg).Error; err != nil {
		return fmt.Errorf("failed to create contact message: %w", err)
	}
	return nil
}

// UpdateStatus changes the read/unread status of a message.
func (r *GORMContactRepository) UpdateStatus(id string, status string) error {
	res := r.db.Model(&models.ContactMessage{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("failed to update status of contact message %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("contact message %s not found for status update: %w", id, gorm.ErrRecordNotFound)
	}
	return nil
}

// CountByStatus returns the number of messages with the given status.
func (r *GORMContactRepository) CountByStatus(status string) (int64, error) {
	var count int64
	if err := r.db.Model(&models.ContactMessage{}).Where("status = ?", status).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count contact messages: %w", err)
	}
	return count, nil
}
