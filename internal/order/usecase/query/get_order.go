package query

import (
	"fmt"

	"github.com/tair/supplychain-dashboard/internal/order/domain"
)

// GetOrderQuery represents the query to fetch one order
type GetOrderQuery struct {
	ID string
}

// GetOrderHandler handles get order queries
type GetOrderHandler struct {
	orders domain.OrderRepository
}

// NewGetOrderHandler creates a new get order handler
func NewGetOrderHandler(orders domain.OrderRepository) *GetOrderHandler {
	return &GetOrderHandler{orders: orders}
}

// Handle executes the get order query
func (h *GetOrderHandler) Handle(q GetOrderQuery) (*domain.Order, error) {
	order, err := h.orders.FindByID(q.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return order, nil
}
