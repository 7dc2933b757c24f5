package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"petnet_server/apierr"
	"petnet_server/middleware"
	"petnet_server/services"
)

// ProfileController handles requests related to pet profiles
type ProfileController struct {
	ProfileService *services.ProfileService
}

// NewProfileController creates a new instance of ProfileController
func NewProfileController(profileService *services.ProfileService) *ProfileController {
	return &ProfileController{ProfileService: profileService}
}

// GetProfile handles fetching a profile by user id. Public.
func (c *ProfileController) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	profile, err := c.ProfileService.Get(r.Context(), userID)
	if err != nil {
		apierr.Write(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"profile": profile})
}

// UpdateProfile merges the request body onto the caller's own profile.
func (c *ProfileController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFromContext(r.Context())

	var updates map[string]interface{}
	if err := decodeJSON(r, &updates); err != nil {
		apierr.Write(w, err)
		return
	}

	profile, err := c.ProfileService.Update(r.Context(), identity.UserID, updates)
	if err != nil {
		apierr.Write(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"profile": profile})
}

// GetSuggested returns up to ten profiles the caller does not follow yet.
func (c *ProfileController) GetSuggested(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFromContext(r.Context())

	suggested, err := c.ProfileService.Suggested(r.Context(), identity.UserID)
	if err != nil {
		apierr.Write(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"suggested": suggested})
}

type awardBadgeRequest struct {
	TargetUserID string `json:"targetUserId"`
	BadgeName    string `json:"badgeName"`
	BadgeIcon    string `json:"badgeIcon"`
	BadgeColor   string `json:"badgeColor"`
}

// AwardBadge appends a badge to the target profile. Admin only.
func (c *ProfileController) AwardBadge(w http.ResponseWriter, r *http.Request) {
	var req awardBadgeRequest
	if err := decodeJSON(r, &req); err != nil {
		apierr.Write(w, err)
		return
	}

	profile, err := c.ProfileService.AwardBadge(r.Context(), req.TargetUserID, req.BadgeName, req.BadgeIcon, req.BadgeColor)
	if err != nil {
		apierr.Write(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"profile": profile})
}
