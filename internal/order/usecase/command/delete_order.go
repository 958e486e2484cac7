package command

import (
	"context"
	"fmt"

	"github.com/tair/supplychain-dashboard/internal/order/domain"
)

// DeleteOrderCommand represents the command to remove an order
type DeleteOrderCommand struct {
	ID string
}

// DeleteOrderHandler handles order deletion
type DeleteOrderHandler struct {
	orders domain.OrderRepository
}

// NewDeleteOrderHandler creates a new delete order handler
func NewDeleteOrderHandler(orders domain.OrderRepository) *DeleteOrderHandler {
	return &DeleteOrderHandler{orders: orders}
}

// Handle executes the delete order command. Deleting an unknown id is a
// no-op; the sequence used for new order numbers is not adjusted.
func (h *DeleteOrderHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if cmd.ID == "" {
		return fmt.Errorf("order id is required")
	}

	if err := h.orders.Delete(cmd.ID); err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}

	return nil
}
