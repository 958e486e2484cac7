package query

import (
	"fmt"

	"github.com/tair/supplychain-dashboard/internal/supplier/domain"
)

// GetSupplierQuery represents the query to fetch one supplier
type GetSupplierQuery struct {
	ID string
}

// GetSupplierHandler handles get supplier queries
type GetSupplierHandler struct {
	repo domain.SupplierRepository
}

// NewGetSupplierHandler creates a new get supplier handler
func NewGetSupplierHandler(repo domain.SupplierRepository) *GetSupplierHandler {
	return &GetSupplierHandler{repo: repo}
}

// Handle executes the get supplier query
func (h *GetSupplierHandler) Handle(q GetSupplierQuery) (*domain.Supplier, error) {
	supplier, err := h.repo.FindByID(q.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get supplier: %w", err)
	}
	return supplier, nil
}
