package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karkabahamza/multisales/internal/adapter/storage"
	"github.com/karkabahamza/multisales/internal/core/domain"
)

func TestNotificationService(t *testing.T) {
	now := time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC)
	logger, hook := newTestLogger()
	svc := NewNotificationService(storage.NewMemoryStore[domain.Notification](), &sequenceIDs{prefix: "N"}, &fixedClock{now: now}, logger)

	n := svc.Notify(domain.Notification{Title: "Nouvelle commande", OrderID: "O001", Read: true})

	assert.Equal(t, "N-1", n.ID)
	assert.Equal(t, now, n.CreatedAt)
	assert.False(t, n.Read)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "O001", hook.LastEntry().Data["order_id"])

	svc.Notify(domain.Notification{Title: "Nouvelle commande", OrderID: "O002"})
	assert.Len(t, svc.Unread(), 2)

	require.True(t, svc.MarkAsRead("N-1"))
	unread := svc.Unread()
	require.Len(t, unread, 1)
	assert.Equal(t, "O002", unread[0].OrderID)
	assert.Len(t, svc.GetAll(), 2)

	assert.False(t, svc.MarkAsRead("N-404"))
}
