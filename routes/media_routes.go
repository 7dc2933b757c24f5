package routes

import (
	"github.com/gorilla/mux"

	"petnet_server/auth"
	"petnet_server/controllers"
	"petnet_server/middleware"
	"petnet_server/services"
)

// RegisterMediaRoutes sets up presigned-URL routes for media upload and read.
// Only registered when an S3 bucket is configured.
func RegisterMediaRoutes(r *mux.Router, provider auth.Provider, mediaService *services.MediaService) {
	controller := controllers.NewMediaController(mediaService)

	r.HandleFunc("/media/upload-url", middleware.RequireAuth(provider, controller.GenerateUploadURL)).Methods("POST")
	r.HandleFunc("/media/read-url", middleware.RequireAuth(provider, controller.GenerateReadURL)).Methods("POST")
}
