package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned when an order lookup misses
var ErrNotFound = errors.New("order not found")

// Status is the lifecycle state of an order
type Status string

// Order statuses. Cancelled is reachable from any non-terminal state.
const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusShipped   Status = "shipped"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

// Statuses lists every order status in lifecycle order
var Statuses = []Status{
	StatusPending, StatusConfirmed, StatusShipped, StatusDelivered, StatusCancelled,
}

// IsValid reports whether s is a known order status
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transitions are allowed from s
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransitionTo reports whether the state machine allows moving from s to next
func (s Status) CanTransitionTo(next Status) bool {
	if s.IsTerminal() {
		return false
	}
	if next == StatusCancelled {
		return true
	}
	switch s {
	case StatusPending:
		return next == StatusConfirmed
	case StatusConfirmed:
		return next == StatusShipped
	case StatusShipped:
		return next == StatusDelivered
	}
	return false
}

// OrderItem is a single line of an order. UnitPrice is a snapshot of the
// product price at order time, not live-linked to the catalog.
type OrderItem struct {
	ID         string  `json:"id"`
	ProductID  string  `json:"product_id"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	TotalPrice float64 `json:"total_price"`
}

// Order represents a purchase order placed with a supplier
type Order struct {
	ID                   string      `json:"id"`
	OrderNumber          string      `json:"order_number"`
	SupplierID           string      `json:"supplier_id"`
	Status               Status      `json:"status"`
	OrderDate            time.Time   `json:"order_date"`
	ExpectedDeliveryDate time.Time   `json:"expected_delivery_date"`
	ActualDeliveryDate   *time.Time  `json:"actual_delivery_date,omitempty"`
	Items                []OrderItem `json:"items"`
	TotalAmount          float64     `json:"total_amount"`
	Notes                string      `json:"notes,omitempty"`
}

// InTransit reports whether the order belongs to the shipments view
func (o *Order) InTransit() bool {
	return o.Status == StatusConfirmed || o.Status == StatusShipped
}

// DeliveredOnTime reports whether a delivered order arrived no later than
// expected, comparing calendar days rather than time of day
func (o *Order) DeliveredOnTime() bool {
	if o.Status != StatusDelivered || o.ActualDeliveryDate == nil {
		return false
	}
	return !truncateToDay(*o.ActualDeliveryDate).After(truncateToDay(o.ExpectedDeliveryDate))
}

// RecalculateTotals recomputes every line total from quantity and unit price,
// then the order total from the line totals
func (o *Order) RecalculateTotals() {
	var total float64
	for i := range o.Items {
		o.Items[i].TotalPrice = float64(o.Items[i].Quantity) * o.Items[i].UnitPrice
		total += o.Items[i].TotalPrice
	}
	o.TotalAmount = total
}

// DaysRemaining returns the whole calendar days between today and the
// expected delivery date, with time of day zeroed on both sides. Negative
// values mean the shipment is overdue. Both dates are mapped to UTC
// midnights first so the span is always a multiple of 24h, even when the
// local calendar crosses a DST transition.
func (o *Order) DaysRemaining(today time.Time) int {
	expected := dateOnlyUTC(o.ExpectedDeliveryDate)
	now := dateOnlyUTC(today)
	return int(expected.Sub(now).Hours() / 24)
}

// FormatOrderNumber builds the ORD-<year>-<sequence> order number, with the
// sequence zero-padded to three digits
func FormatOrderNumber(year, sequence int) string {
	return fmt.Sprintf("ORD-%d-%03d", year, sequence)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func dateOnlyUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// OrderRepository defines the contract for order data access.
// Update and Delete against an unknown id are silent no-ops; only lookups
// report ErrNotFound.
type OrderRepository interface {
	Create(order *Order) error
	FindByID(id string) (*Order, error)
	FindAll() ([]Order, error)
	FindBySupplier(supplierID string) ([]Order, error)
	Update(order *Order) error
	Delete(id string) error
	Count() (int, error)
}
