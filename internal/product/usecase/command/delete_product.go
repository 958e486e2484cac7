package command

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tair/supplychain-dashboard/internal/product/domain"
	"github.com/tair/supplychain-dashboard/pkg/events"
)

// DeleteProductCommand represents the command to remove a product
type DeleteProductCommand struct {
	ID string
}

// DeleteProductHandler handles product deletion
type DeleteProductHandler struct {
	repo domain.ProductRepository
	bus  *events.Bus
}

// NewDeleteProductHandler creates a new delete product handler
func NewDeleteProductHandler(repo domain.ProductRepository, bus *events.Bus) *DeleteProductHandler {
	return &DeleteProductHandler{repo: repo, bus: bus}
}

// Handle executes the delete product command. Order items referencing the
// product keep their snapshots; historical orders are never rewritten.
// Deleting an unknown id is a no-op.
func (h *DeleteProductHandler) Handle(ctx context.Context, cmd DeleteProductCommand) error {
	if cmd.ID == "" {
		return fmt.Errorf("product id is required")
	}

	if err := h.repo.Delete(cmd.ID); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	h.bus.Publish(ctx, events.EventTypeProductChanged, events.ProductChangedEvent{
		EventID:   uuid.NewString(),
		EventType: events.EventTypeProductChanged,
		ProductID: cmd.ID,
		Timestamp: time.Now(),
	})

	return nil
}
