package command

import (
	"fmt"

	"github.com/tair/supplychain-dashboard/internal/notification/domain"
)

// ClearAllCommand represents the command to drop every notification
type ClearAllCommand struct{}

// ClearAllHandler handles clear-all commands
type ClearAllHandler struct {
	repo domain.NotificationRepository
}

// NewClearAllHandler creates a new clear-all handler
func NewClearAllHandler(repo domain.NotificationRepository) *ClearAllHandler {
	return &ClearAllHandler{repo: repo}
}

// Handle empties the notification collection. This is destructive and has no
// undo; cleared stock warnings will be regenerated on the next product change
// while the product remains low on stock.
func (h *ClearAllHandler) Handle(cmd ClearAllCommand) error {
	if err := h.repo.Clear(); err != nil {
		return fmt.Errorf("failed to clear notifications: %w", err)
	}
	return nil
}
