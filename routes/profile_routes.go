package routes

import (
	"github.com/gorilla/mux"

	"petnet_server/auth"
	"petnet_server/controllers"
	"petnet_server/middleware"
	"petnet_server/services"
)

// RegisterProfileRoutes sets up routes for profile operations: public reads,
// authenticated self-updates and suggestions, admin badge awards.
func RegisterProfileRoutes(r *mux.Router, provider auth.Provider, profileService *services.ProfileService) {
	controller := controllers.NewProfileController(profileService)

	r.HandleFunc("/profile/{userId}", controller.GetProfile).Methods("GET")
	r.HandleFunc("/profile", middleware.RequireAuth(provider, controller.UpdateProfile)).Methods("PUT")
	r.HandleFunc("/suggested-pets", middleware.RequireAuth(provider, controller.GetSuggested)).Methods("GET")
	r.HandleFunc("/badges/award", middleware.RequireAdmin(provider, profileService, controller.AwardBadge)).Methods("POST")
}
