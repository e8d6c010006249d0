package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/husseinfaraj7/odv-sub000/internal/models"
	"github.com/husseinfaraj7/odv-sub000/internal/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ContactService handles business logic for contact form messages.
type ContactService struct {
	repo     repositories.ContactRepository
	notifier Notifier
	log      *zap.SugaredLogger
}

// NewContactService creates a new ContactService. notifier may be nil to
// disable email notifications.
func NewContactService(repo repositories.ContactRepository, notifier Notifier, log *zap.SugaredLogger) *ContactService {
	return &ContactService{
		repo:     repo,
		notifier: notifier,
		log:      log,
	}
}

// SubmitMessage stores a new contact message and notifies the administrator.
// The notification is best effort: an email failure never fails the
// submission.
func (s *ContactService) SubmitMessage(ctx context.Context, msg *models.ContactMessage) error {
	msg.Status = models.ContactStatusUnread
	if err := s.repo.Create(msg); err != nil {
		return fmt.Errorf("failed to save contact message: %w", err)
	}

	if s.notifier != nil {
		if err := s.notifier.NotifyContactReceived(ctx, msg); err != nil {
			s.log.Warnw("failed to send contact notification email", "contact_id", msg.ID, "error", err)
		}
	}
	return nil
}

// ListMessages returns contact messages according to the given options.
func (s *ContactService) ListMessages(opts models.ContactListOptions) ([]models.ContactMessage, error) {
	return s.repo.GetAll(opts)
}

// GetMessage returns a single contact message by ID.
func (s *ContactService) GetMessage(id string) (*models.ContactMessage, error) {
	msg, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContactNotFound
		}
		return nil, err
	}
	return msg, nil
}

// UpdateMessageStatus marks a message as read or unread.
func (s *ContactService) UpdateMessageStatus(id string, status string) error {
	if status != models.ContactStatusRead && status != models.ContactStatusUnread {
		return fmt.Errorf("%w: %q is not a contact status", ErrInvalidStatus, status)
	}
	if err := s.repo.UpdateStatus(id, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrContactNotFound
		}
		return err
	}
	return nil
}

// CountUnread returns the number of unread messages, shown as a badge in the
// admin dashboard.
func (s *ContactService) CountUnread() (int64, error) {
	return s.repo.CountByStatus(models.ContactStatusUnread)
}
