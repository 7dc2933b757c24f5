package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"petnet_server/apierr"
	"petnet_server/auth"
	"petnet_server/kv"
	"petnet_server/models"
)

// suggestedLimit caps the suggested-pets response.
const suggestedLimit = 10

// Fields a profile update may never touch; they are owned by the server and
// stripped from the payload before merging.
var protectedProfileFields = map[string]bool{
	"id":        true,
	"email":     true,
	"isAdmin":   true,
	"followers": true,
	"following": true,
	"postCount": true,
	"badges":    true,
	"createdAt": true,
}

// ProfileService manages pet profiles stored under "profile:<userId>".
type ProfileService struct {
	Store kv.Store
}

func profileKey(userID string) string {
	return models.ProfileKeyPrefix + userID
}

// Create initializes the profile for a freshly created identity. All list
// fields start empty, postCount at zero, isAdmin false.
func (ps *ProfileService) Create(ctx context.Context, identity *auth.Identity, petName, species, breed string, age int) (*models.Profile, error) {
	if petName == "" {
		return nil, apierr.Validation("petName is required")
	}

	createdAt := time.Now().UTC().Format(time.RFC3339)
	profile := models.NewProfile(identity.UserID, identity.Email, petName, species, breed, age, createdAt)

	if err := ps.Store.Set(ctx, profileKey(identity.UserID), profile); err != nil {
		log.Error().Err(err).Str("userId", identity.UserID).Msg("Failed to store profile")
		return nil, apierr.Internal("Internal server error")
	}

	log.Info().Str("userId", identity.UserID).Str("petName", petName).Msg("Profile created")
	return &profile, nil
}

// Get returns the stored profile for userID.
func (ps *ProfileService) Get(ctx context.Context, userID string) (*models.Profile, error) {
	var profile models.Profile
	if err := kv.GetAs(ctx, ps.Store, profileKey(userID), &profile); err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return nil, apierr.NotFound("Profile not found")
		}
		return nil, apierr.Internal("Internal server error")
	}
	return &profile, nil
}

// Update shallow-merges the provided fields onto the caller's stored profile.
// Keys not present in updates are preserved; server-managed fields are
// stripped before merging.
func (ps *ProfileService) Update(ctx context.Context, userID string, updates map[string]interface{}) (*models.Profile, error) {
	raw, err := ps.Store.Get(ctx, profileKey(userID))
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return nil, apierr.NotFound("Profile not found")
		}
		return nil, apierr.Internal("Internal server error")
	}

	var doc map[string]interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, apierr.Internal("Internal server error")
	}

	for k, v := range updates {
		if protectedProfileFields[k] {
			continue
		}
		doc[k] = v
	}

	// Round-trip through the schema so a malformed field surfaces as a
	// validation failure instead of a corrupt record.
	merged, err := json.Marshal(doc)
	if err != nil {
		return nil, apierr.Internal("Internal server error")
	}
	var profile models.Profile
	if err := json.Unmarshal(merged, &profile); err != nil {
		return nil, apierr.Validation(fmt.Sprintf("Invalid profile field: %v", err))
	}

	if err := ps.Store.Set(ctx, profileKey(userID), profile); err != nil {
		return nil, apierr.Internal("Internal server error")
	}
	return &profile, nil
}

// Suggested scans all profiles and returns up to ten the caller does not
// already follow, excluding the caller, in scan order.
func (ps *ProfileService) Suggested(ctx context.Context, userID string) ([]models.Profile, error) {
	caller, err := ps.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	raws, err := ps.Store.GetByPrefix(ctx, models.ProfileKeyPrefix)
	if err != nil {
		return nil, apierr.Internal("Internal server error")
	}

	following := make(map[string]bool, len(caller.Following))
	for _, id := range caller.Following {
		following[id] = true
	}

	suggested := []models.Profile{}
	for _, raw := range raws {
		var profile models.Profile
		if err := json.Unmarshal(raw, &profile); err != nil {
			continue
		}
		if profile.ID == userID || following[profile.ID] {
			continue
		}
		suggested = append(suggested, profile)
		if len(suggested) == suggestedLimit {
			break
		}
	}
	return suggested, nil
}

// AwardBadge appends a badge to the target profile. Awards are not
// deduplicated; the same badge twice produces two entries.
func (ps *ProfileService) AwardBadge(ctx context.Context, targetUserID, name, icon, color string) (*models.Profile, error) {
	if name == "" {
		return nil, apierr.Validation("badgeName is required")
	}

	target, err := ps.Get(ctx, targetUserID)
	if err != nil {
		return nil, err
	}

	target.Badges = append(target.Badges, models.Badge{
		Name:      name,
		Icon:      icon,
		Color:     color,
		AwardedAt: time.Now().UTC().Format(time.RFC3339),
	})

	if err := ps.Store.Set(ctx, profileKey(targetUserID), target); err != nil {
		return nil, apierr.Internal("Internal server error")
	}

	log.Info().Str("userId", targetUserID).Str("badge", name).Msg("Badge awarded")
	return target, nil
}

// IsAdmin reports whether userID's profile carries the admin role. A missing
// profile is simply not an admin.
func (ps *ProfileService) IsAdmin(ctx context.Context, userID string) (bool, error) {
	var profile models.Profile
	if err := kv.GetAs(ctx, ps.Store, profileKey(userID), &profile); err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return false, nil
		}
		return false, apierr.Internal("Internal server error")
	}
	return profile.IsAdmin, nil
}
