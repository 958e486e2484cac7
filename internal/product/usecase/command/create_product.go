package command

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tair/supplychain-dashboard/internal/product/domain"
	"github.com/tair/supplychain-dashboard/pkg/events"
)

// CreateProductCommand represents the command to add a catalog product
type CreateProductCommand struct {
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

// CreateProductHandler handles product creation
type CreateProductHandler struct {
	repo domain.ProductRepository
	bus  *events.Bus
}

// NewCreateProductHandler creates a new create product handler
func NewCreateProductHandler(repo domain.ProductRepository, bus *events.Bus) *CreateProductHandler {
	return &CreateProductHandler{repo: repo, bus: bus}
}

// Handle executes the create product command and announces the change so
// stock monitoring re-evaluates the low-stock set
func (h *CreateProductHandler) Handle(ctx context.Context, cmd CreateProductCommand) (*domain.Product, error) {
	// Validation
	if cmd.Name == "" {
		return nil, fmt.Errorf("product name is required")
	}
	if cmd.SKU == "" {
		return nil, fmt.Errorf("SKU is required")
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

	// Check if SKU already exists
	if existing, _ := h.repo.FindBySKU(cmd.SKU); existing != nil {
		return nil, fmt.Errorf("SKU already exists")
	}

	product := &domain.Product{
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

	if err := h.repo.Create(product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	h.bus.Publish(ctx, events.EventTypeProductChanged, events.ProductChangedEvent{
		EventID:   uuid.NewString(),
		EventType: events.EventTypeProductChanged,
		ProductID: product.ID,
		Timestamp: time.Now(),
	})

	return product, nil
}
