package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"petnet_server/apierr"
	"petnet_server/middleware"
	"petnet_server/services"
)

// PostController handles posts, the feed and the leaderboard.
type PostController struct {
	PostService *services.PostService
}

// NewPostController creates a new instance of PostController
func NewPostController(postService *services.PostService) *PostController {
	return &PostController{PostService: postService}
}

type createPostRequest struct {
	Content  string   `json:"content"`
	ImageURL string   `json:"imageUrl"`
	VideoURL string   `json:"videoUrl"`
	Hashtags []string `json:"hashtags"`
}

type reactRequest struct {
	ReactionType string `json:"reactionType"`
}

type commentRequest struct {
	Content string `json:"content"`
}

// CreatePost persists a new post authored by the caller.
func (c *PostController) CreatePost(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFromContext(r.Context())

	var req createPostRequest
	if err := decodeJSON(r, &req); err != nil {
		apierr.Write(w, err)
		return
	}

	post, err := c.PostService.Create(r.Context(), identity.UserID, req.Content, req.ImageURL, req.VideoURL, req.Hashtags)
	if err != nil {
		apierr.Write(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"post": post})
}

// GetFeed returns all posts newest-first with author profiles joined. Public.
func (c *PostController) GetFeed(w http.ResponseWriter, r *http.Request) {
	feed, err := c.PostService.Feed(r.Context())
	if err != nil {
		apierr.Write(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"posts": feed})
}

// LikePost toggles the caller's like on a post.
func (c *PostController) LikePost(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFromContext(r.Context())
	postID := mux.Vars(r)["postId"]

	post, err := c.PostService.ToggleLike(r.Context(), identity.UserID, postID)
	if err != nil {
		apierr.Write(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"post": post})
}

// ReactToPost toggles the caller's reaction of the given kind on a post.
func (c *PostController) ReactToPost(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFromContext(r.Context())
	postID := mux.Vars(r)["postId"]

	var req reactRequest
	if err := decodeJSON(r, &req); err != nil {
		apierr.Write(w, err)
		return
	}

	post, err := c.PostService.ToggleReaction(r.Context(), identity.UserID, postID, req.ReactionType)
	if err != nil {
		apierr.Write(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"post": post})
}

// CommentOnPost appends a comment to a post.
func (c *PostController) CommentOnPost(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFromContext(r.Context())
	postID := mux.Vars(r)["postId"]

	var req commentRequest
	if err := decodeJSON(r, &req); err != nil {
		apierr.Write(w, err)
		return
	}

	post, err := c.PostService.AddComment(r.Context(), identity.UserID, postID, req.Content)
	if err != nil {
		apierr.Write(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"post": post})
}

// RepostPost toggles the caller's repost on a post.
func (c *PostController) RepostPost(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFromContext(r.Context())
	postID := mux.Vars(r)["postId"]

	post, err := c.PostService.ToggleRepost(r.Context(), identity.UserID, postID)
	if err != nil {
		apierr.Write(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"post": post})
}

// GetLeaderboard returns the top post authors by engagement. Public.
func (c *PostController) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	leaderboard, err := c.PostService.Leaderboard(r.Context())
	if err != nil {
		apierr.Write(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"leaderboard": leaderboard})
}
