package middleware

import (
	"context"
	"net/http"
	"strings"

	"petnet_server/apierr"
	"petnet_server/auth"
)

type contextKey string

const identityContextKey contextKey = "identity"

// IdentityFromContext returns the authenticated identity set by RequireAuth,
// or nil on an unauthenticated request.
func IdentityFromContext(ctx context.Context) *auth.Identity {
	identity, _ := ctx.Value(identityContextKey).(*auth.Identity)
	return identity
}

// AdminChecker answers whether a user id has the admin role. The profile
// service implements it by loading the caller's profile.
type AdminChecker interface {
	IsAdmin(ctx context.Context, userID string) (bool, error)
}

// RequireAuth wraps a handler with the bearer-token gate: the Authorization
// header must carry a token the provider resolves to an identity, which is
// then available via IdentityFromContext.
func RequireAuth(provider auth.Provider, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, err := resolveBearer(provider, r)
		if err != nil {
			apierr.Write(w, err)
			return
		}

		ctx := context.WithValue(r.Context(), identityContextKey, identity)
		next(w, r.WithContext(ctx))
	}
}

// RequireAdmin wraps a handler with the bearer-token gate plus the admin
// gate: the resolved identity's profile must have isAdmin set.
func RequireAdmin(provider auth.Provider, admins AdminChecker, next http.HandlerFunc) http.HandlerFunc {
	return RequireAuth(provider, func(w http.ResponseWriter, r *http.Request) {
		identity := IdentityFromContext(r.Context())

		isAdmin, err := admins.IsAdmin(r.Context(), identity.UserID)
		if err != nil {
			apierr.Write(w, err)
			return
		}
		if !isAdmin {
			apierr.Write(w, apierr.Forbidden("Admin access required"))
			return
		}

		next(w, r)
	})
}

func resolveBearer(provider auth.Provider, r *http.Request) (*auth.Identity, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, apierr.Unauthorized("Missing Authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, apierr.Unauthorized("Invalid Authorization header format")
	}

	identity, err := provider.Resolve(r.Context(), parts[1])
	if err != nil {
		return nil, apierr.Unauthorized("Unauthorized")
	}
	return identity, nil
}
