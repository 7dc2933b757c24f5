package controllers

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"petnet_server/apierr"
	"petnet_server/auth"
	"petnet_server/services"
)

// AuthController handles signup and login.
type AuthController struct {
	Provider       auth.Provider
	ProfileService *services.ProfileService
}

// NewAuthController creates a new instance of AuthController
func NewAuthController(provider auth.Provider, profileService *services.ProfileService) *AuthController {
	return &AuthController{Provider: provider, ProfileService: profileService}
}

type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	PetName  string `json:"petName"`
	Species  string `json:"species"`
	Breed    string `json:"breed"`
	Age      int    `json:"age"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup creates the identity and its profile, and returns a token so the
// client can start making authenticated calls immediately.
func (c *AuthController) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := decodeJSON(r, &req); err != nil {
		apierr.Write(w, err)
		return
	}

	// Profile input is checked first so a bad request cannot leave behind a
	// credential without a profile.
	if req.PetName == "" {
		apierr.Write(w, apierr.Validation("petName is required"))
		return
	}

	identity, err := c.Provider.CreateIdentity(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrEmailExists):
			apierr.Write(w, apierr.Validation("Email already registered"))
		case errors.Is(err, auth.ErrInvalidInput):
			apierr.Write(w, apierr.Validation("Invalid email or password format"))
		default:
			log.Error().Err(err).Msg("Signup failed")
			apierr.Write(w, apierr.Internal("Internal server error"))
		}
		return
	}

	profile, err := c.ProfileService.Create(r.Context(), identity, req.PetName, req.Species, req.Breed, req.Age)
	if err != nil {
		apierr.Write(w, err)
		return
	}

	token, err := c.Provider.IssueToken(identity)
	if err != nil {
		log.Error().Err(err).Msg("Failed to issue token at signup")
		apierr.Write(w, apierr.Internal("Internal server error"))
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"user":        profile,
		"accessToken": token,
	})
}

// Login verifies credentials and returns a fresh token with the profile.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		apierr.Write(w, err)
		return
	}

	identity, err := c.Provider.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			apierr.Write(w, apierr.Unauthorized("Invalid email or password"))
			return
		}
		log.Error().Err(err).Msg("Login failed")
		apierr.Write(w, apierr.Internal("Internal server error"))
		return
	}

	token, err := c.Provider.IssueToken(identity)
	if err != nil {
		log.Error().Err(err).Msg("Failed to issue token at login")
		apierr.Write(w, apierr.Internal("Internal server error"))
		return
	}

	// The profile may be absent if signup failed between identity and
	// profile creation; login still succeeds with a null profile.
	var profilePayload interface{}
	if profile, err := c.ProfileService.Get(r.Context(), identity.UserID); err == nil {
		profilePayload = profile
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"user":        profilePayload,
		"accessToken": token,
	})
}
