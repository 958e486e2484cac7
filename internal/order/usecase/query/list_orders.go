package query

import (
	"fmt"

	"github.com/tair/supplychain-dashboard/internal/order/domain"
)

// ListOrdersQuery represents the query to list orders, optionally narrowed
// by supplier or status
type ListOrdersQuery struct {
	SupplierID string
	Status     domain.Status
}

// ListOrdersHandler handles list order queries
type ListOrdersHandler struct {
	orders domain.OrderRepository
}

// NewListOrdersHandler creates a new list orders handler
func NewListOrdersHandler(orders domain.OrderRepository) *ListOrdersHandler {
	return &ListOrdersHandler{orders: orders}
}

// Handle executes the list orders query, preserving creation order
func (h *ListOrdersHandler) Handle(q ListOrdersQuery) ([]domain.Order, error) {
	var (
		orders []domain.Order
		err    error
	)
	if q.SupplierID != "" {
		orders, err = h.orders.FindBySupplier(q.SupplierID)
	} else {
		orders, err = h.orders.FindAll()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	if q.Status == "" {
		return orders, nil
	}

	filtered := make([]domain.Order, 0, len(orders))
	for _, order := range orders {
		if order.Status == q.Status {
			filtered = append(filtered, order)
		}
	}
	return filtered, nil
}
