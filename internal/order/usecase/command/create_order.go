package command

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tair/supplychain-dashboard/internal/order/domain"
	productdomain "github.com/tair/supplychain-dashboard/internal/product/domain"
)

// CreateOrderItem is one requested order line. The unit price is never
// supplied by the caller; it is snapshotted from the catalog at order time.
type CreateOrderItem struct {
	ProductID string
	Quantity  int
}

// CreateOrderCommand represents the command to place a purchase order.
// The order number and total amount are derived, never supplied.
type CreateOrderCommand struct {
	SupplierID           string
	Status               domain.Status
	OrderDate            time.Time
	ExpectedDeliveryDate time.Time
	Items                []CreateOrderItem
	Notes                string
}

// CreateOrderHandler handles order creation
type CreateOrderHandler struct {
	orders   domain.OrderRepository
	products productdomain.ProductRepository
	now      func() time.Time
}

// NewCreateOrderHandler creates a new create order handler
func NewCreateOrderHandler(orders domain.OrderRepository, products productdomain.ProductRepository) *CreateOrderHandler {
	return &CreateOrderHandler{orders: orders, products: products, now: time.Now}
}

// Handle executes the create order command. The order number is
// ORD-<year>-<sequence> where the sequence is one more than the number of
// orders existing at creation time, zero-padded to three digits. Numbers are
// assigned once and never recomputed; there is no gap-filling or reuse.
func (h *CreateOrderHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*domain.Order, error) {
	// Validation
	if cmd.SupplierID == "" {
		return nil, fmt.Errorf("supplier id is required")
	}
	if len(cmd.Items) == 0 {
		return nil, fmt.Errorf("order must have at least one item")
	}
	status := cmd.Status
	if status == "" {
		status = domain.StatusPending
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("unknown order status: %s", status)
	}
	if cmd.ExpectedDeliveryDate.Before(cmd.OrderDate) {
		return nil, fmt.Errorf("expected delivery date cannot be before order date")
	}

	items := make([]domain.OrderItem, 0, len(cmd.Items))
	for _, line := range cmd.Items {
		if line.Quantity <= 0 {
			return nil, fmt.Errorf("item quantity must be greater than 0")
		}
		product, err := h.products.FindByID(line.ProductID)
		if err != nil {
			return nil, fmt.Errorf("unknown product %s: %w", line.ProductID, err)
		}
		items = append(items, domain.OrderItem{
			ID:        uuid.NewString(),
			ProductID: product.ID,
			Quantity:  line.Quantity,
			UnitPrice: product.Price,
		})
	}

	count, err := h.orders.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}

	order := &domain.Order{
		OrderNumber:          domain.FormatOrderNumber(h.now().Year(), count+1),
		SupplierID:           cmd.SupplierID,
		Status:               status,
		OrderDate:            cmd.OrderDate,
		ExpectedDeliveryDate: cmd.ExpectedDeliveryDate,
		Items:                items,
		Notes:                cmd.Notes,
	}
	order.RecalculateTotals()

	if err := h.orders.Create(order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	return order, nil
}
