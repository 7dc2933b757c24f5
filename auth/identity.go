// Package auth is the identity boundary: it issues bearer tokens and
// resolves them back to a user identity. Handlers consume the Provider
// interface and never see credentials.
package auth

import (
	"context"
	"errors"
	"regexp"
)

var (
	ErrEmailExists        = errors.New("auth: email already registered")
	ErrInvalidCredentials = errors.New("auth: invalid email or password")
	ErrInvalidToken       = errors.New("auth: invalid or expired token")
	ErrInvalidInput       = errors.New("auth: invalid input")
)

var (
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	passwordRegex = regexp.MustCompile(`^.{6,72}$`) // bcrypt caps input at 72 bytes
)

// Identity is a resolved user identity.
type Identity struct {
	UserID string
	Email  string
}

// Provider creates identities and translates between them and bearer tokens.
type Provider interface {
	// CreateIdentity registers a new identity. Fails with ErrEmailExists if
	// the email is taken, ErrInvalidInput on malformed credentials.
	CreateIdentity(ctx context.Context, email, password string) (*Identity, error)

	// Authenticate verifies credentials and returns the identity, or
	// ErrInvalidCredentials.
	Authenticate(ctx context.Context, email, password string) (*Identity, error)

	// IssueToken mints a bearer token for an identity.
	IssueToken(identity *Identity) (string, error)

	// Resolve validates a bearer token and returns its identity, or
	// ErrInvalidToken.
	Resolve(ctx context.Context, token string) (*Identity, error)
}

// ValidateCredentials checks signup input before any store work happens.
func ValidateCredentials(email, password string) error {
	if !emailRegex.MatchString(email) || len(email) < 5 || len(email) > 254 {
		return ErrInvalidInput
	}
	if !passwordRegex.MatchString(password) {
		return ErrInvalidInput
	}
	return nil
}
