package domain

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a notification lookup misses
var ErrNotFound = errors.New("notification not found")

// Type classifies a notification for display
type Type string

// Notification types
const (
	TypeInfo    Type = "info"
	TypeWarning Type = "warning"
	TypeError   Type = "error"
	TypeSuccess Type = "success"
)

// Notification is a dashboard alert. ProductID is set on stock warnings so
// duplicates are suppressed structurally instead of by matching message text.
type Notification struct {
	ID        string    `json:"id"`
	Type      Type      `json:"type"`
	Message   string    `json:"message"`
	ProductID string    `json:"product_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Read      bool      `json:"read"`
}

// NotificationRepository defines the contract for notification data access.
// Create prepends, keeping the newest notification first. MarkRead is a
// silent no-op when the id is unknown, and idempotent when it is not.
type NotificationRepository interface {
	Create(notification *Notification) error
	FindByID(id string) (*Notification, error)
	FindAll() ([]Notification, error)
	FindWarningByProduct(productID string) (*Notification, error)
	MarkRead(id string) error
	Clear() error
	Count() (int, error)
}
