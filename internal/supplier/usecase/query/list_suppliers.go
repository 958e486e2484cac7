package query

import (
	"fmt"

	"github.com/tair/supplychain-dashboard/internal/supplier/domain"
)

// ListSuppliersQuery represents the query to list suppliers
type ListSuppliersQuery struct {
	ActiveOnly bool
}

// ListSuppliersHandler handles list supplier queries
type ListSuppliersHandler struct {
	repo domain.SupplierRepository
}

// NewListSuppliersHandler creates a new list suppliers handler
func NewListSuppliersHandler(repo domain.SupplierRepository) *ListSuppliersHandler {
	return &ListSuppliersHandler{repo: repo}
}

// Handle executes the list suppliers query, preserving insertion order
func (h *ListSuppliersHandler) Handle(q ListSuppliersQuery) ([]domain.Supplier, error) {
	suppliers, err := h.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list suppliers: %w", err)
	}

	if !q.ActiveOnly {
		return suppliers, nil
	}

	active := make([]domain.Supplier, 0, len(suppliers))
	for _, supplier := range suppliers {
		if supplier.Active {
			active = append(active, supplier)
		}
	}
	return active, nil
}
