package command

import (
	"fmt"

	"github.com/tair/supplychain-dashboard/internal/notification/domain"
)

// MarkReadCommand represents the command to mark one notification as read
type MarkReadCommand struct {
	ID string
}

// MarkReadHandler handles mark-as-read commands
type MarkReadHandler struct {
	repo domain.NotificationRepository
}

// NewMarkReadHandler creates a new mark-as-read handler
func NewMarkReadHandler(repo domain.NotificationRepository) *MarkReadHandler {
	return &MarkReadHandler{repo: repo}
}

// Handle executes the mark-as-read command. The operation is idempotent and
// an unknown id is a no-op.
func (h *MarkReadHandler) Handle(cmd MarkReadCommand) error {
	if cmd.ID == "" {
		return fmt.Errorf("notification id is required")
	}

	if err := h.repo.MarkRead(cmd.ID); err != nil {
		return fmt.Errorf("failed to mark notification as read: %w", err)
	}

	return nil
}
