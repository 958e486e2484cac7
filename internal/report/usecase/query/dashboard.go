package query

import (
	"fmt"
	"sort"

	orderdomain "github.com/tair/supplychain-dashboard/internal/order/domain"
	productdomain "github.com/tair/supplychain-dashboard/internal/product/domain"
	supplierdomain "github.com/tair/supplychain-dashboard/internal/supplier/domain"
)

// DashboardSummary is the landing-page snapshot of the supply chain
type DashboardSummary struct {
	TotalSuppliers   int                    `json:"total_suppliers"`
	ActiveSuppliers  int                    `json:"active_suppliers"`
	TotalProducts    int                    `json:"total_products"`
	PendingOrders    int                    `json:"pending_orders"`
	ShippedOrders    int                    `json:"shipped_orders"`
	LowStockProducts []productdomain.Product `json:"low_stock_products"`
	RecentOrders     []orderdomain.Order    `json:"recent_orders"`
}

// DashboardQuery represents the dashboard summary request
type DashboardQuery struct{}

// DashboardHandler computes the dashboard summary
type DashboardHandler struct {
	suppliers supplierdomain.SupplierRepository
	products  productdomain.ProductRepository
	orders    orderdomain.OrderRepository
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(suppliers supplierdomain.SupplierRepository, products productdomain.ProductRepository, orders orderdomain.OrderRepository) *DashboardHandler {
	return &DashboardHandler{suppliers: suppliers, products: products, orders: orders}
}

// Handle executes the dashboard summary query. Recent orders are the five
// most recent by order date.
func (h *DashboardHandler) Handle(q DashboardQuery) (*DashboardSummary, error) {
	suppliers, err := h.suppliers.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list suppliers: %w", err)
	}
	products, err := h.products.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	orders, err := h.orders.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	summary := &DashboardSummary{
		TotalSuppliers:   len(suppliers),
		TotalProducts:    len(products),
		LowStockProducts: make([]productdomain.Product, 0),
	}
	for _, supplier := range suppliers {
		if supplier.Active {
			summary.ActiveSuppliers++
		}
	}
	for _, product := range products {
		if product.IsLowStock() {
			summary.LowStockProducts = append(summary.LowStockProducts, product)
		}
	}
	for _, order := range orders {
		switch order.Status {
		case orderdomain.StatusPending:
			summary.PendingOrders++
		case orderdomain.StatusShipped:
			summary.ShippedOrders++
		}
	}

	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].OrderDate.After(orders[j].OrderDate)
	})
	if len(orders) > 5 {
		orders = orders[:5]
	}
	summary.RecentOrders = orders

	return summary, nil
}
