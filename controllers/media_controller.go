package controllers

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"petnet_server/apierr"
	"petnet_server/services"
)

// MediaController hands out presigned URLs for direct-to-bucket media access.
type MediaController struct {
	MediaService *services.MediaService
}

// NewMediaController creates a new instance of MediaController
func NewMediaController(mediaService *services.MediaService) *MediaController {
	return &MediaController{MediaService: mediaService}
}

type uploadURLRequest struct {
	FileName string `json:"fileName"`
	FileType string `json:"fileType"`
}

type readURLRequest struct {
	Key string `json:"key"`
}

// GenerateUploadURL returns a presigned PUT URL plus the object key.
func (c *MediaController) GenerateUploadURL(w http.ResponseWriter, r *http.Request) {
	var req uploadURLRequest
	if err := decodeJSON(r, &req); err != nil {
		apierr.Write(w, err)
		return
	}
	if req.FileName == "" || req.FileType == "" {
		apierr.Write(w, apierr.Validation("fileName and fileType are required"))
		return
	}

	url, key, err := c.MediaService.GenerateUploadURL(r.Context(), req.FileName, req.FileType)
	if err != nil {
		log.Error().Err(err).Msg("Failed to presign upload URL")
		apierr.Write(w, apierr.Internal("Internal server error"))
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"uploadUrl": url, "key": key})
}

// GenerateReadURL returns a presigned GET URL for a stored object.
func (c *MediaController) GenerateReadURL(w http.ResponseWriter, r *http.Request) {
	var req readURLRequest
	if err := decodeJSON(r, &req); err != nil {
		apierr.Write(w, err)
		return
	}
	if req.Key == "" {
		apierr.Write(w, apierr.Validation("key is required"))
		return
	}

	url, err := c.MediaService.GenerateReadURL(r.Context(), req.Key)
	if err != nil {
		log.Error().Err(err).Msg("Failed to presign read URL")
		apierr.Write(w, apierr.Internal("Internal server error"))
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"readUrl": url})
}
