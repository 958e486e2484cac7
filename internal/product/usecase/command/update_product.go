package command

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tair/supplychain-dashboard/internal/product/domain"
	"github.com/tair/supplychain-dashboard/pkg/events"
)

// UpdateProductCommand carries the complete replacement record for a product.
// Partial patches are not supported; callers must round-trip every field.
type UpdateProductCommand struct {
	ID            string
	Name          string
	SKU           string
	Description   string
	Price         float64
	Category      string
	SupplierID    string
	MinStockLevel int
	CurrentStock  int
	UnitOfMeasure string
}

// UpdateProductHandler handles product updates
type UpdateProductHandler struct {
	repo domain.ProductRepository
	bus  *events.Bus
}

// NewUpdateProductHandler creates a new update product handler
func NewUpdateProductHandler(repo domain.ProductRepository, bus *events.Bus) *UpdateProductHandler {
	return &UpdateProductHandler{repo: repo, bus: bus}
}

// Handle executes the update product command. Updating an unknown id is a
// no-op at the store level; the change event still fires so stock monitoring
// stays current.
func (h *UpdateProductHandler) Handle(ctx context.Context, cmd UpdateProductCommand) (*domain.Product, error) {
	// Validation
	if cmd.ID == "" {
		return nil, fmt.Errorf("product id is required")
	}
	if cmd.Name == "" {
		return nil, fmt.Errorf("product name is required")
	}
	if cmd.Price < 0 {
		return nil, fmt.Errorf("price cannot be negative")
	}
	if cmd.MinStockLevel < 0 {
		return nil, fmt.Errorf("minimum stock level cannot be negative")
	}
	if cmd.CurrentStock < 0 {
		return nil, fmt.Errorf("current stock cannot be negative")
	}
	if !domain.IsValidUnit(cmd.UnitOfMeasure) {
		return nil, fmt.Errorf("unknown unit of measure: %s", cmd.UnitOfMeasure)
	}

	product := &domain.Product{
		ID:            cmd.ID,
		Name:          cmd.Name,
		SKU:           cmd.SKU,
		Description:   cmd.Description,
		Price:         cmd.Price,
		Category:      cmd.Category,
		SupplierID:    cmd.SupplierID,
		MinStockLevel: cmd.MinStockLevel,
		CurrentStock:  cmd.CurrentStock,
		UnitOfMeasure: cmd.UnitOfMeasure,
	}

	if err := h.repo.Update(product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	h.bus.Publish(ctx, events.EventTypeProductChanged, events.ProductChangedEvent{
		EventID:   uuid.NewString(),
		EventType: events.EventTypeProductChanged,
		ProductID: product.ID,
		Timestamp: time.Now(),
	})

	return product, nil
}
