package command

import (
	"fmt"

	"github.com/tair/supplychain-dashboard/internal/supplier/domain"
)

// UpdateSupplierCommand carries the complete replacement record for a supplier.
// Partial patches are not supported; callers must round-trip every field.
type UpdateSupplierCommand struct {
	ID            string
	Name          string
	ContactPerson string
	Email         string
	Phone         string
	Address       string
	Category      string
	LeadTime      int
	Reliability   int
	Active        bool
}

// UpdateSupplierHandler handles supplier updates
type UpdateSupplierHandler struct {
	repo domain.SupplierRepository
}

// NewUpdateSupplierHandler creates a new update supplier handler
func NewUpdateSupplierHandler(repo domain.SupplierRepository) *UpdateSupplierHandler {
	return &UpdateSupplierHandler{repo: repo}
}

// Handle executes the update supplier command. Updating an unknown id is a
// no-op at the store level.
func (h *UpdateSupplierHandler) Handle(cmd UpdateSupplierCommand) (*domain.Supplier, error) {
	// Validation
	if cmd.ID == "" {
		return nil, fmt.Errorf("supplier id is required")
	}
	if cmd.Name == "" {
		return nil, fmt.Errorf("supplier name is required")
	}
	if cmd.LeadTime < 1 {
		return nil, fmt.Errorf("lead time must be at least 1 day")
	}
	if cmd.Reliability < domain.MinReliability || cmd.Reliability > domain.MaxReliability {
		return nil, fmt.Errorf("reliability must be between %d and %d", domain.MinReliability, domain.MaxReliability)
	}

	supplier := &domain.Supplier{
		ID:            cmd.ID,
		Name:          cmd.Name,
		ContactPerson: cmd.ContactPerson,
		Email:         cmd.Email,
		Phone:         cmd.Phone,
		Address:       cmd.Address,
		Category:      cmd.Category,
		LeadTime:      cmd.LeadTime,
		Reliability:   cmd.Reliability,
		Active:        cmd.Active,
	}

	if err := h.repo.Update(supplier); err != nil {
		return nil, fmt.Errorf("failed to update supplier: %w", err)
	}

	return supplier, nil
}
