package query

import (
	"fmt"
	"sort"

	orderdomain "github.com/tair/supplychain-dashboard/internal/order/domain"
)

// MonthlyTrend is one month of order activity
type MonthlyTrend struct {
	Month  string  `json:"month"`
	Count  int     `json:"count"`
	Amount float64 `json:"amount"`
}

// MonthlyTrendsQuery represents the monthly trends report request
type MonthlyTrendsQuery struct{}

// MonthlyTrendsHandler groups orders by order month
type MonthlyTrendsHandler struct {
	orders orderdomain.OrderRepository
}

// NewMonthlyTrendsHandler creates a new monthly trends handler
func NewMonthlyTrendsHandler(orders orderdomain.OrderRepository) *MonthlyTrendsHandler {
	return &MonthlyTrendsHandler{orders: orders}
}

// Handle executes the monthly trends report. Orders are grouped by the
// YYYY-MM of their order date; months come back in ascending order and
// months with no orders are omitted.
func (h *MonthlyTrendsHandler) Handle(q MonthlyTrendsQuery) ([]MonthlyTrend, error) {
	orders, err := h.orders.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	buckets := make(map[string]*MonthlyTrend)
	for _, order := range orders {
		month := order.OrderDate.Format("2006-01")
		bucket, ok := buckets[month]
		if !ok {
			bucket = &MonthlyTrend{Month: month}
			buckets[month] = bucket
		}
		bucket.Count++
		bucket.Amount += order.TotalAmount
	}

	trends := make([]MonthlyTrend, 0, len(buckets))
	for _, bucket := range buckets {
		trends = append(trends, *bucket)
	}
	sort.Slice(trends, func(i, j int) bool {
		return trends[i].Month < trends[j].Month
	})
	return trends, nil
}
