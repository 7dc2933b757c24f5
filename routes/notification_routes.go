package routes

import (
	"github.com/gorilla/mux"

	"petnet_server/auth"
	"petnet_server/controllers"
	"petnet_server/middleware"
	"petnet_server/services"
)

// RegisterNotificationRoutes sets up the authenticated notification routes.
func RegisterNotificationRoutes(r *mux.Router, provider auth.Provider, notificationService *services.NotificationService) {
	controller := controllers.NewNotificationController(notificationService)

	r.HandleFunc("/notifications", middleware.RequireAuth(provider, controller.ListNotifications)).Methods("GET")
	r.HandleFunc("/notifications/{notificationId}/read", middleware.RequireAuth(provider, controller.MarkNotificationRead)).Methods("PUT")
}
