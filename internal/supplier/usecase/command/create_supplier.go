package command

import (
	"fmt"

	"github.com/tair/supplychain-dashboard/internal/supplier/domain"
)

// CreateSupplierCommand represents the command to register a new supplier
type CreateSupplierCommand struct {
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

// CreateSupplierHandler handles supplier creation
type CreateSupplierHandler struct {
	repo domain.SupplierRepository
}

// NewCreateSupplierHandler creates a new create supplier handler
func NewCreateSupplierHandler(repo domain.SupplierRepository) *CreateSupplierHandler {
	return &CreateSupplierHandler{repo: repo}
}

// Handle executes the create supplier command
func (h *CreateSupplierHandler) Handle(cmd CreateSupplierCommand) (*domain.Supplier, error) {
	// Validation
	if cmd.Name == "" {
		return nil, fmt.Errorf("supplier name is required")
	}
	if cmd.ContactPerson == "" {
		return nil, fmt.Errorf("contact person is required")
	}
	if cmd.Email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if cmd.LeadTime < 1 {
		return nil, fmt.Errorf("lead time must be at least 1 day")
	}
	if cmd.Reliability < domain.MinReliability || cmd.Reliability > domain.MaxReliability {
		return nil, fmt.Errorf("reliability must be between %d and %d", domain.MinReliability, domain.MaxReliability)
	}

	supplier := &domain.Supplier{
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

	if err := h.repo.Create(supplier); err != nil {
		return nil, fmt.Errorf("failed to create supplier: %w", err)
	}

	return supplier, nil
}
