package query

import (
	"fmt"
	"sort"

	orderdomain "github.com/tair/supplychain-dashboard/internal/order/domain"
	supplierdomain "github.com/tair/supplychain-dashboard/internal/supplier/domain"
)

// SupplierPerformance aggregates order history for one supplier
type SupplierPerformance struct {
	SupplierID       string  `json:"supplier_id"`
	Name             string  `json:"name"`
	TotalOrders      int     `json:"total_orders"`
	DeliveredOrders  int     `json:"delivered_orders"`
	OnTimeDeliveries int     `json:"on_time_deliveries"`
	OnTimeRate       float64 `json:"on_time_rate"`
	TotalSpent       float64 `json:"total_spent"`
}

// SupplierPerformanceQuery represents the supplier performance report request
type SupplierPerformanceQuery struct{}

// SupplierPerformanceHandler computes the supplier performance report. The
// report is derived from the current store snapshot on every call.
type SupplierPerformanceHandler struct {
	suppliers supplierdomain.SupplierRepository
	orders    orderdomain.OrderRepository
}

// NewSupplierPerformanceHandler creates a new supplier performance handler
func NewSupplierPerformanceHandler(suppliers supplierdomain.SupplierRepository, orders orderdomain.OrderRepository) *SupplierPerformanceHandler {
	return &SupplierPerformanceHandler{suppliers: suppliers, orders: orders}
}

// Handle executes the supplier performance report. The on-time rate is
// on-time deliveries over total orders (not delivered orders), 0 when the
// supplier has no orders, and bounded to [0,100]. Rows come back busiest
// supplier first.
func (h *SupplierPerformanceHandler) Handle(q SupplierPerformanceQuery) ([]SupplierPerformance, error) {
	suppliers, err := h.suppliers.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list suppliers: %w", err)
	}
	orders, err := h.orders.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	report := make([]SupplierPerformance, 0, len(suppliers))
	for _, supplier := range suppliers {
		row := SupplierPerformance{
			SupplierID: supplier.ID,
			Name:       supplier.Name,
		}
		for _, order := range orders {
			if order.SupplierID != supplier.ID {
				continue
			}
			row.TotalOrders++
			row.TotalSpent += order.TotalAmount
			if order.Status == orderdomain.StatusDelivered {
				row.DeliveredOrders++
			}
			if order.DeliveredOnTime() {
				row.OnTimeDeliveries++
			}
		}
		if row.TotalOrders > 0 {
			row.OnTimeRate = float64(row.OnTimeDeliveries) / float64(row.TotalOrders) * 100
		}
		report = append(report, row)
	}

	sort.SliceStable(report, func(i, j int) bool {
		return report[i].TotalOrders > report[j].TotalOrders
	})
	return report, nil
}
