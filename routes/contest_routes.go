package routes

import (
	"github.com/gorilla/mux"

	"petnet_server/auth"
	"petnet_server/controllers"
	"petnet_server/middleware"
	"petnet_server/services"
)

// RegisterContestRoutes sets up the public contest listing and the
// admin-only contest creation route.
func RegisterContestRoutes(r *mux.Router, provider auth.Provider, admins middleware.AdminChecker, contestService *services.ContestService) {
	controller := controllers.NewContestController(contestService)

	r.HandleFunc("/contests", controller.ListContests).Methods("GET")
	r.HandleFunc("/contests", middleware.RequireAdmin(provider, admins, controller.CreateContest)).Methods("POST")
}
