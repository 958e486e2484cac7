package query

import (
	"fmt"

	orderdomain "github.com/tair/supplychain-dashboard/internal/order/domain"
)

// StatusCount is one slice of the order status distribution
type StatusCount struct {
	Status     orderdomain.Status `json:"status"`
	Count      int                `json:"count"`
	Percentage float64            `json:"percentage"`
}

// StatusDistribution is the order status distribution report
type StatusDistribution struct {
	TotalOrders int           `json:"total_orders"`
	Statuses    []StatusCount `json:"statuses"`
}

// StatusDistributionQuery represents the status distribution report request
type StatusDistributionQuery struct{}

// StatusDistributionHandler counts orders per status
type StatusDistributionHandler struct {
	orders orderdomain.OrderRepository
}

// NewStatusDistributionHandler creates a new status distribution handler
func NewStatusDistributionHandler(orders orderdomain.OrderRepository) *StatusDistributionHandler {
	return &StatusDistributionHandler{orders: orders}
}

// Handle executes the status distribution report. Percentages use the total
// order count as denominator and default to 0 when there are no orders.
func (h *StatusDistributionHandler) Handle(q StatusDistributionQuery) (*StatusDistribution, error) {
	orders, err := h.orders.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	counts := make(map[orderdomain.Status]int)
	for _, order := range orders {
		counts[order.Status]++
	}

	distribution := &StatusDistribution{
		TotalOrders: len(orders),
		Statuses:    make([]StatusCount, 0, len(orderdomain.Statuses)),
	}
	for _, status := range orderdomain.Statuses {
		row := StatusCount{Status: status, Count: counts[status]}
		if distribution.TotalOrders > 0 {
			row.Percentage = float64(row.Count) / float64(distribution.TotalOrders) * 100
		}
		distribution.Statuses = append(distribution.Statuses, row)
	}
	return distribution, nil
}
