package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petnet_server/apierr"
	"petnet_server/kv"
	"petnet_server/models"
)

func seedNotification(t *testing.T, store kv.Store, id, userID, createdAt string) models.Notification {
	t.Helper()

	n := models.Notification{
		ID:         id,
		UserID:     userID,
		Type:       models.NotificationTypeFollow,
		FromUserID: "someone",
		Message:    "someone started following you!",
		CreatedAt:  createdAt,
	}
	require.NoError(t, store.Set(context.Background(), id, n))
	return n
}

func TestListNotificationsFiltersAndSorts(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	svc := &NotificationService{Store: store}

	seedNotification(t, store, "notification:1-a", "u1", "2024-01-01T10:00:00Z")
	seedNotification(t, store, "notification:2-b", "u1", "2024-01-02T10:00:00Z")
	seedNotification(t, store, "notification:3-c", "u2", "2024-01-03T10:00:00Z")

	notifications, err := svc.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, notifications, 2)
	assert.Equal(t, "notification:2-b", notifications[0].ID)
	assert.Equal(t, "notification:1-a", notifications[1].ID)
}

func TestListNotificationsEmpty(t *testing.T) {
	svc := &NotificationService{Store: kv.NewMemoryStore()}

	notifications, err := svc.List(context.Background(), "u1")
	require.NoError(t, err)
	assert.NotNil(t, notifications)
	assert.Empty(t, notifications)
}

func TestMarkReadTransitionsOnce(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	svc := &NotificationService{Store: store}
	seedNotification(t, store, "notification:1-a", "u1", "2024-01-01T10:00:00Z")

	n, err := svc.MarkRead(ctx, "u1", "notification:1-a")
	require.NoError(t, err)
	assert.True(t, n.Read)

	// Stays read in subsequent listings
	notifications, err := svc.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.True(t, notifications[0].Read)
}

func TestMarkReadOwnershipChecked(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	svc := &NotificationService{Store: store}
	seedNotification(t, store, "notification:1-a", "u1", "2024-01-01T10:00:00Z")

	// Someone else's notification is reported as not found
	_, err := svc.MarkRead(ctx, "u2", "notification:1-a")
	require.Error(t, err)
	assert.Equal(t, apierr.CodeNotFound, apierr.From(err).Code)

	_, err = svc.MarkRead(ctx, "u1", "notification:missing")
	require.Error(t, err)
	assert.Equal(t, apierr.CodeNotFound, apierr.From(err).Code)
}
