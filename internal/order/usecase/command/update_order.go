package command

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tair/supplychain-dashboard/internal/order/domain"
	productdomain "github.com/tair/supplychain-dashboard/internal/product/domain"
	"github.com/tair/supplychain-dashboard/pkg/events"
)

// UpdateOrderItem is one order line in a full-record update. A line with an
// empty ID is treated as newly added.
type UpdateOrderItem struct {
	ID        string
	ProductID string
	Quantity  int
}

// UpdateOrderCommand carries the complete replacement record for an order.
// The original order number is always preserved; totals and unit-price
// snapshots are recomputed server-side.
type UpdateOrderCommand struct {
	ID                   string
	SupplierID           string
	Status               domain.Status
	OrderDate            time.Time
	ExpectedDeliveryDate time.Time
	ActualDeliveryDate   *time.Time
	Items                []UpdateOrderItem
	Notes                string
}

// UpdateOrderHandler handles full-record order updates
type UpdateOrderHandler struct {
	orders   domain.OrderRepository
	products productdomain.ProductRepository
	bus      *events.Bus
}

// NewUpdateOrderHandler creates a new update order handler
func NewUpdateOrderHandler(orders domain.OrderRepository, products productdomain.ProductRepository, bus *events.Bus) *UpdateOrderHandler {
	return &UpdateOrderHandler{orders: orders, products: products, bus: bus}
}

// Handle executes the update order command. Line handling follows the item
// snapshot rules: an unchanged line keeps its original unit price, while a
// new line or a changed product selection refreshes the unit price from the
// product's current catalog price. Every line total and the order total are
// recomputed afterwards.
func (h *UpdateOrderHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*domain.Order, error) {
	if cmd.ID == "" {
		return nil, fmt.Errorf("order id is required")
	}

	existing, err := h.orders.FindByID(cmd.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load order: %w", err)
	}

	// Validation
	if cmd.SupplierID == "" {
		return nil, fmt.Errorf("supplier id is required")
	}
	if len(cmd.Items) == 0 {
		return nil, fmt.Errorf("order must have at least one item")
	}
	if !cmd.Status.IsValid() {
		return nil, fmt.Errorf("unknown order status: %s", cmd.Status)
	}
	if cmd.ExpectedDeliveryDate.Before(cmd.OrderDate) {
		return nil, fmt.Errorf("expected delivery date cannot be before order date")
	}
	if cmd.Status == domain.StatusDelivered && cmd.ActualDeliveryDate == nil {
		return nil, fmt.Errorf("actual delivery date is required for delivered orders")
	}

	previous := make(map[string]domain.OrderItem, len(existing.Items))
	for _, item := range existing.Items {
		previous[item.ID] = item
	}

	items := make([]domain.OrderItem, 0, len(cmd.Items))
	for _, line := range cmd.Items {
		if line.Quantity <= 0 {
			return nil, fmt.Errorf("item quantity must be greater than 0")
		}

		item := domain.OrderItem{
			ID:        line.ID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		}
		if item.ID == "" {
			item.ID = uuid.NewString()
		}

		if prev, ok := previous[line.ID]; ok && prev.ProductID == line.ProductID {
			// Unchanged selection keeps its order-time price snapshot
			item.UnitPrice = prev.UnitPrice
		} else {
			product, err := h.products.FindByID(line.ProductID)
			if err != nil {
				return nil, fmt.Errorf("unknown product %s: %w", line.ProductID, err)
			}
			item.UnitPrice = product.Price
		}

		items = append(items, item)
	}

	order := &domain.Order{
		ID:                   existing.ID,
		OrderNumber:          existing.OrderNumber,
		SupplierID:           cmd.SupplierID,
		Status:               cmd.Status,
		OrderDate:            cmd.OrderDate,
		ExpectedDeliveryDate: cmd.ExpectedDeliveryDate,
		ActualDeliveryDate:   cmd.ActualDeliveryDate,
		Items:                items,
		Notes:                cmd.Notes,
	}
	order.RecalculateTotals()

	if err := h.orders.Update(order); err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	if order.Status != existing.Status {
		h.bus.Publish(ctx, events.EventTypeOrderStatusChanged, events.OrderStatusChangedEvent{
			EventID:     uuid.NewString(),
			EventType:   events.EventTypeOrderStatusChanged,
			OrderID:     order.ID,
			OrderNumber: order.OrderNumber,
			Status:      string(order.Status),
			Timestamp:   time.Now(),
		})
	}

	return order, nil
}
