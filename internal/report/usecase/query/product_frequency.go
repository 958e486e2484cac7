package query

import (
	"fmt"
	"sort"

	orderdomain "github.com/tair/supplychain-dashboard/internal/order/domain"
	productdomain "github.com/tair/supplychain-dashboard/internal/product/domain"
)

// ProductFrequency aggregates how often a product has been ordered
type ProductFrequency struct {
	ProductID     string  `json:"product_id"`
	Name          string  `json:"name"`
	SKU           string  `json:"sku"`
	Category      string  `json:"category"`
	TotalOrdered  int     `json:"total_ordered"`
	TotalSpent    float64 `json:"total_spent"`
	CurrentStock  int     `json:"current_stock"`
	MinStockLevel int     `json:"min_stock_level"`
	LowStock      bool    `json:"low_stock"`
}

// ProductFrequencyQuery represents the product frequency report request
type ProductFrequencyQuery struct{}

// ProductFrequencyHandler computes how much of each product has been ordered
// across all orders, regardless of order status
type ProductFrequencyHandler struct {
	products productdomain.ProductRepository
	orders   orderdomain.OrderRepository
}

// NewProductFrequencyHandler creates a new product frequency handler
func NewProductFrequencyHandler(products productdomain.ProductRepository, orders orderdomain.OrderRepository) *ProductFrequencyHandler {
	return &ProductFrequencyHandler{products: products, orders: orders}
}

// Handle executes the product frequency report, most-ordered product first
func (h *ProductFrequencyHandler) Handle(q ProductFrequencyQuery) ([]ProductFrequency, error) {
	products, err := h.products.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	orders, err := h.orders.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	report := make([]ProductFrequency, 0, len(products))
	for _, product := range products {
		row := ProductFrequency{
			ProductID:     product.ID,
			Name:          product.Name,
			SKU:           product.SKU,
			Category:      product.Category,
			CurrentStock:  product.CurrentStock,
			MinStockLevel: product.MinStockLevel,
			LowStock:      product.IsLowStock(),
		}
		for _, order := range orders {
			for _, item := range order.Items {
				if item.ProductID != product.ID {
					continue
				}
				row.TotalOrdered += item.Quantity
				row.TotalSpent += item.TotalPrice
			}
		}
		report = append(report, row)
	}

	sort.SliceStable(report, func(i, j int) bool {
		return report[i].TotalOrdered > report[j].TotalOrdered
	})
	return report, nil
}
