package routes

import (
	"github.com/gorilla/mux"

	"petnet_server/auth"
	"petnet_server/controllers"
	"petnet_server/middleware"
	"petnet_server/services"
)

// RegisterPostRoutes sets up routes for posts, the public feed and the
// public leaderboard.
func RegisterPostRoutes(r *mux.Router, provider auth.Provider, postService *services.PostService) {
	controller := controllers.NewPostController(postService)

	r.HandleFunc("/posts", middleware.RequireAuth(provider, controller.CreatePost)).Methods("POST")
	r.HandleFunc("/feed", controller.GetFeed).Methods("GET")
	r.HandleFunc("/leaderboard", controller.GetLeaderboard).Methods("GET")
	r.HandleFunc("/posts/{postId}/like", middleware.RequireAuth(provider, controller.LikePost)).Methods("POST")
	r.HandleFunc("/posts/{postId}/react", middleware.RequireAuth(provider, controller.ReactToPost)).Methods("POST")
	r.HandleFunc("/posts/{postId}/comment", middleware.RequireAuth(provider, controller.CommentOnPost)).Methods("POST")
	r.HandleFunc("/posts/{postId}/repost", middleware.RequireAuth(provider, controller.RepostPost)).Methods("POST")
}
