package query

import (
	"fmt"

	"github.com/tair/supplychain-dashboard/internal/product/domain"
)

// ListLowStockQuery represents the query for products at or below their
// minimum stock level
type ListLowStockQuery struct{}

// ListLowStockHandler handles low-stock queries. The set is derived from the
// current catalog on every call, never cached.
type ListLowStockHandler struct {
	repo domain.ProductRepository
}

// NewListLowStockHandler creates a new low-stock handler
func NewListLowStockHandler(repo domain.ProductRepository) *ListLowStockHandler {
	return &ListLowStockHandler{repo: repo}
}

// Handle executes the low-stock query
func (h *ListLowStockHandler) Handle(q ListLowStockQuery) ([]domain.Product, error) {
	products, err := h.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	lowStock := make([]domain.Product, 0)
	for _, product := range products {
		if product.IsLowStock() {
			lowStock = append(lowStock, product)
		}
	}
	return lowStock, nil
}
