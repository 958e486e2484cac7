package query

import (
	"fmt"

	"github.com/tair/supplychain-dashboard/internal/notification/domain"
)

// ListNotificationsQuery represents the query to list notifications
type ListNotificationsQuery struct {
	UnreadOnly bool
}

// ListNotificationsHandler handles list notification queries
type ListNotificationsHandler struct {
	repo domain.NotificationRepository
}

// NewListNotificationsHandler creates a new list notifications handler
func NewListNotificationsHandler(repo domain.NotificationRepository) *ListNotificationsHandler {
	return &ListNotificationsHandler{repo: repo}
}

// Handle executes the list notifications query, newest first
func (h *ListNotificationsHandler) Handle(q ListNotificationsQuery) ([]domain.Notification, error) {
	notifications, err := h.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	if !q.UnreadOnly {
		return notifications, nil
	}

	unread := make([]domain.Notification, 0, len(notifications))
	for _, notification := range notifications {
		if !notification.Read {
			unread = append(unread, notification)
		}
	}
	return unread, nil
}
