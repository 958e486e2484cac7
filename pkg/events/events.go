package events

import "time"

// ProductChangedEvent is emitted after any mutation of the product collection
type ProductChangedEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	ProductID string    `json:"product_id"`
	Timestamp time.Time `json:"timestamp"`
}

// OrderStatusChangedEvent is emitted when an order reaches a new status
type OrderStatusChangedEvent struct {
	EventID     string    `json:"event_id"`
	EventType   string    `json:"event_type"`
	OrderID     string    `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeProductChanged     = "product.changed"
	EventTypeOrderStatusChanged = "order.status_changed"
)
