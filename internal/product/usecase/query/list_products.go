package query

import (
	"fmt"

	"github.com/tair/supplychain-dashboard/internal/product/domain"
)

// ListProductsQuery represents the query to list products, optionally
// narrowed to one supplier's catalog
type ListProductsQuery struct {
	SupplierID string
}

// ListProductsHandler handles list product queries
type ListProductsHandler struct {
	repo domain.ProductRepository
}

// NewListProductsHandler creates a new list products handler
func NewListProductsHandler(repo domain.ProductRepository) *ListProductsHandler {
	return &ListProductsHandler{repo: repo}
}

// Handle executes the list products query, preserving catalog order
func (h *ListProductsHandler) Handle(q ListProductsQuery) ([]domain.Product, error) {
	if q.SupplierID != "" {
		products, err := h.repo.FindBySupplier(q.SupplierID)
		if err != nil {
			return nil, fmt.Errorf("failed to list supplier products: %w", err)
		}
		return products, nil
	}

	products, err := h.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}
