package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/supplychain-dashboard/internal/notification/domain"
	"github.com/tair/supplychain-dashboard/internal/notification/repository"
)

func TestMarkReadIsIdempotent(t *testing.T) {
	repo := repository.NewMemoryNotificationRepository()
	notification := &domain.Notification{Type: domain.TypeWarning, Message: "low stock"}
	require.NoError(t, repo.Create(notification))

	handler := NewMarkReadHandler(repo)
	require.NoError(t, handler.Handle(MarkReadCommand{ID: notification.ID}))
	require.NoError(t, handler.Handle(MarkReadCommand{ID: notification.ID}))

	found, err := repo.FindByID(notification.ID)
	require.NoError(t, err)
	assert.True(t, found.Read)

	// Unknown ids are a silent no-op
	assert.NoError(t, handler.Handle(MarkReadCommand{ID: "missing"}))
}

func TestClearAll(t *testing.T) {
	repo := repository.NewMemoryNotificationRepository()
	require.NoError(t, repo.Create(&domain.Notification{Type: domain.TypeInfo, Message: "one"}))
	require.NoError(t, repo.Create(&domain.Notification{Type: domain.TypeError, Message: "two"}))

	handler := NewClearAllHandler(repo)
	require.NoError(t, handler.Handle(ClearAllCommand{}))

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Zero(t, count)
}
