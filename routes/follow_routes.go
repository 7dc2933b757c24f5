package routes

import (
	"github.com/gorilla/mux"

	"petnet_server/auth"
	"petnet_server/controllers"
	"petnet_server/middleware"
	"petnet_server/services"
)

// RegisterFollowRoutes sets up the follow/unfollow toggle route.
func RegisterFollowRoutes(r *mux.Router, provider auth.Provider, followService *services.FollowService) {
	controller := controllers.NewFollowController(followService)

	r.HandleFunc("/follow/{targetUserId}", middleware.RequireAuth(provider, controller.ToggleFollow)).Methods("POST")
}
