package routes

import (
	"github.com/gorilla/mux"

	"petnet_server/auth"
	"petnet_server/controllers"
	"petnet_server/services"
)

// RegisterAuthRoutes sets up the public signup and login routes.
func RegisterAuthRoutes(r *mux.Router, provider auth.Provider, profileService *services.ProfileService) {
	controller := controllers.NewAuthController(provider, profileService)

	r.HandleFunc("/signup", controller.Signup).Methods("POST")
	r.HandleFunc("/login", controller.Login).Methods("POST")
}
