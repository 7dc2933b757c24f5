package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"petnet_server/apierr"
	"petnet_server/kv"
	"petnet_server/metrics"
	"petnet_server/models"
	"petnet_server/utils"
)

// FollowService mutates the two-sided follow relationship between profiles.
// The caller's and target's profiles are persisted with two independent Sets;
// a concurrent toggle can leave the two sides briefly inconsistent.
type FollowService struct {
	Store kv.Store
}

// Toggle follows targetUserID if the caller does not already follow them,
// otherwise unfollows. Following creates a notification for the target;
// unfollowing does not. Returns whether the caller follows the target after
// the toggle.
func (s *FollowService) Toggle(ctx context.Context, userID, targetUserID string) (bool, error) {
	if userID == targetUserID {
		return false, apierr.Validation("Cannot follow yourself")
	}

	var caller, target models.Profile
	if err := kv.GetAs(ctx, s.Store, profileKey(userID), &caller); err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return false, apierr.NotFound("Profile not found")
		}
		return false, apierr.Internal("Internal server error")
	}
	if err := kv.GetAs(ctx, s.Store, profileKey(targetUserID), &target); err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return false, apierr.NotFound("Profile not found")
		}
		return false, apierr.Internal("Internal server error")
	}

	var following bool
	caller.Following, following = utils.ToggleMember(caller.Following, targetUserID)
	if following {
		target.Followers = append(target.Followers, userID)

		notificationID := kv.NewID(models.NotificationKeyPrefix)
		notification := models.Notification{
			ID:         notificationID,
			UserID:     targetUserID,
			Type:       models.NotificationTypeFollow,
			FromUserID: userID,
			Message:    fmt.Sprintf("%s started following you!", caller.PetName),
			Read:       false,
			CreatedAt:  time.Now().UTC().Format(time.RFC3339),
		}
		if err := s.Store.Set(ctx, notificationID, notification); err != nil {
			log.Warn().Err(err).Str("userId", targetUserID).Msg("Failed to store follow notification")
		}
	} else {
		target.Followers = utils.RemoveString(target.Followers, userID)
	}

	if err := s.Store.Set(ctx, profileKey(userID), caller); err != nil {
		return false, apierr.Internal("Internal server error")
	}
	if err := s.Store.Set(ctx, profileKey(targetUserID), target); err != nil {
		return false, apierr.Internal("Internal server error")
	}

	if following {
		metrics.RecordFollowToggle("followed")
	} else {
		metrics.RecordFollowToggle("unfollowed")
	}
	log.Info().Str("userId", userID).Str("targetUserId", targetUserID).Bool("following", following).Msg("Follow toggled")
	return following, nil
}
