package command

import (
	"fmt"

	"github.com/tair/supplychain-dashboard/internal/supplier/domain"
)

// DeleteSupplierCommand represents the command to remove a supplier
type DeleteSupplierCommand struct {
	ID string
}

// DeleteSupplierHandler handles supplier deletion
type DeleteSupplierHandler struct {
	repo domain.SupplierRepository
}

// NewDeleteSupplierHandler creates a new delete supplier handler
func NewDeleteSupplierHandler(repo domain.SupplierRepository) *DeleteSupplierHandler {
	return &DeleteSupplierHandler{repo: repo}
}

// Handle executes the delete supplier command. Orders referencing the
// supplier keep their supplier id; display layers fall back to "Unknown".
// Deleting an unknown id is a no-op.
func (h *DeleteSupplierHandler) Handle(cmd DeleteSupplierCommand) error {
	if cmd.ID == "" {
		return fmt.Errorf("supplier id is required")
	}

	if err := h.repo.Delete(cmd.ID); err != nil {
		return fmt.Errorf("failed to delete supplier: %w", err)
	}

	return nil
}
