package repository

import (
	"sync"

	"github.com/google/uuid"

	"github.com/tair/supplychain-dashboard/internal/notification/domain"
)

// MemoryNotificationRepository is a slice-backed notification store. New
// notifications are prepended so the list stays newest-first.
type MemoryNotificationRepository struct {
	mu            sync.RWMutex
	notifications []domain.Notification
}

// NewMemoryNotificationRepository creates an empty notification repository
func NewMemoryNotificationRepository() *MemoryNotificationRepository {
	return &MemoryNotificationRepository{}
}

func (r *MemoryNotificationRepository) Create(notification *domain.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if notification.ID == "" {
		notification.ID = uuid.NewString()
	}
	r.notifications = append([]domain.Notification{*notification}, r.notifications...)
	return nil
}

func (r *MemoryNotificationRepository) FindByID(id string) (*domain.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.notifications {
		if r.notifications[i].ID == id {
			notification := r.notifications[i]
			return &notification, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *MemoryNotificationRepository) FindAll() ([]domain.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	notifications := make([]domain.Notification, len(r.notifications))
	copy(notifications, r.notifications)
	return notifications, nil
}

// FindWarningByProduct returns the warning notification recorded for a
// product, read or unread, so stock alerts are deduplicated structurally
func (r *MemoryNotificationRepository) FindWarningByProduct(productID string) (*domain.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.notifications {
		if r.notifications[i].Type == domain.TypeWarning && r.notifications[i].ProductID == productID {
			notification := r.notifications[i]
			return &notification, nil
		}
	}
	return nil, domain.ErrNotFound
}

// MarkRead flags the notification as read; unknown ids are ignored
func (r *MemoryNotificationRepository) MarkRead(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.notifications {
		if r.notifications[i].ID == id {
			r.notifications[i].Read = true
			return nil
		}
	}
	return nil
}

// Clear empties the collection unconditionally
func (r *MemoryNotificationRepository) Clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.notifications = nil
	return nil
}

func (r *MemoryNotificationRepository) Count() (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.notifications), nil
}
