package command

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tair/supplychain-dashboard/internal/order/domain"
	"github.com/tair/supplychain-dashboard/pkg/events"
)

// UpdateOrderStatusCommand represents the command to move an order through
// its lifecycle
type UpdateOrderStatusCommand struct {
	ID                 string
	Status             domain.Status
	ActualDeliveryDate *time.Time
}

// UpdateOrderStatusHandler handles order status transitions
type UpdateOrderStatusHandler struct {
	orders domain.OrderRepository
	bus    *events.Bus
}

// NewUpdateOrderStatusHandler creates a new status transition handler
func NewUpdateOrderStatusHandler(orders domain.OrderRepository, bus *events.Bus) *UpdateOrderStatusHandler {
	return &UpdateOrderStatusHandler{orders: orders, bus: bus}
}

// Handle executes the status transition. Pending orders confirm, confirmed
// orders ship, shipped orders deliver; cancellation is allowed from any
// non-terminal state. Delivery requires an actual delivery date.
func (h *UpdateOrderStatusHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) (*domain.Order, error) {
	if cmd.ID == "" {
		return nil, fmt.Errorf("order id is required")
	}
	if !cmd.Status.IsValid() {
		return nil, fmt.Errorf("unknown order status: %s", cmd.Status)
	}

	order, err := h.orders.FindByID(cmd.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load order: %w", err)
	}

	if !order.Status.CanTransitionTo(cmd.Status) {
		return nil, fmt.Errorf("cannot transition order from %s to %s", order.Status, cmd.Status)
	}
	if cmd.Status == domain.StatusDelivered && cmd.ActualDeliveryDate == nil {
		return nil, fmt.Errorf("actual delivery date is required for delivered orders")
	}

	order.Status = cmd.Status
	if cmd.Status == domain.StatusDelivered {
		order.ActualDeliveryDate = cmd.ActualDeliveryDate
	}

	if err := h.orders.Update(order); err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	h.bus.Publish(ctx, events.EventTypeOrderStatusChanged, events.OrderStatusChangedEvent{
		EventID:     uuid.NewString(),
		EventType:   events.EventTypeOrderStatusChanged,
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		Status:      string(order.Status),
		Timestamp:   time.Now(),
	})

	return order, nil
}
