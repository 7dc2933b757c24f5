package services

import (
	"context"
	"encoding/json"
	"errors"
	"sort"

	"petnet_server/apierr"
	"petnet_server/kv"
	"petnet_server/models"
)

// NotificationService reads and updates polled notifications.
type NotificationService struct {
	Store kv.Store
}

// List returns the caller's notifications, newest first.
func (s *NotificationService) List(ctx context.Context, userID string) ([]models.Notification, error) {
	raws, err := s.Store.GetByPrefix(ctx, models.NotificationKeyPrefix)
	if err != nil {
		return nil, apierr.Internal("Internal server error")
	}

	notifications := []models.Notification{}
	for _, raw := range raws {
		var n models.Notification
		if err := json.Unmarshal(raw, &n); err != nil {
			continue
		}
		if n.UserID == userID {
			notifications = append(notifications, n)
		}
	}

	sort.SliceStable(notifications, func(i, j int) bool {
		return notifications[i].CreatedAt > notifications[j].CreatedAt
	})
	return notifications, nil
}

// MarkRead flips the read flag on one of the caller's notifications. A
// notification that does not exist or belongs to someone else is reported as
// not found either way.
func (s *NotificationService) MarkRead(ctx context.Context, userID, notificationID string) (*models.Notification, error) {
	if !kv.HasPrefix(notificationID, models.NotificationKeyPrefix) {
		return nil, apierr.NotFound("Notification not found")
	}

	var notification models.Notification
	if err := kv.GetAs(ctx, s.Store, notificationID, &notification); err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return nil, apierr.NotFound("Notification not found")
		}
		return nil, apierr.Internal("Internal server error")
	}
	if notification.UserID != userID {
		return nil, apierr.NotFound("Notification not found")
	}

	notification.Read = true
	if err := s.Store.Set(ctx, notificationID, notification); err != nil {
		return nil, apierr.Internal("Internal server error")
	}
	return &notification, nil
}
