package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"petnet_server/apierr"
	"petnet_server/middleware"
	"petnet_server/services"
)

// FollowController handles the follow/unfollow toggle.
type FollowController struct {
	FollowService *services.FollowService
}

// NewFollowController creates a new instance of FollowController
func NewFollowController(followService *services.FollowService) *FollowController {
	return &FollowController{FollowService: followService}
}

// ToggleFollow follows or unfollows the target user and reports the
// resulting state.
func (c *FollowController) ToggleFollow(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFromContext(r.Context())
	targetUserID := mux.Vars(r)["targetUserId"]

	following, err := c.FollowService.Toggle(r.Context(), identity.UserID, targetUserID)
	if err != nil {
		apierr.Write(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"following": following})
}
