package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petnet_server/kv"
)

func newTestProvider() *JWTProvider {
	return NewJWTProvider(kv.NewMemoryStore(), "test-secret", time.Hour)
}

func TestCreateIdentityAndAuthenticate(t *testing.T) {
	ctx := context.Background()
	p := newTestProvider()

	identity, err := p.CreateIdentity(ctx, "rex@example.com", "squeaky-toy")
	require.NoError(t, err)
	assert.NotEmpty(t, identity.UserID)
	assert.Equal(t, "rex@example.com", identity.Email)

	authed, err := p.Authenticate(ctx, "rex@example.com", "squeaky-toy")
	require.NoError(t, err)
	assert.Equal(t, identity.UserID, authed.UserID)
}

func TestCreateIdentityDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	p := newTestProvider()

	_, err := p.CreateIdentity(ctx, "rex@example.com", "squeaky-toy")
	require.NoError(t, err)

	_, err = p.CreateIdentity(ctx, "rex@example.com", "other-pass")
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestCreateIdentityInvalidInput(t *testing.T) {
	ctx := context.Background()
	p := newTestProvider()

	_, err := p.CreateIdentity(ctx, "not-an-email", "squeaky-toy")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = p.CreateIdentity(ctx, "rex@example.com", "shrt")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAuthenticateWrongPassword(t *testing.T) {
	ctx := context.Background()
	p := newTestProvider()

	_, err := p.CreateIdentity(ctx, "rex@example.com", "squeaky-toy")
	require.NoError(t, err)

	_, err = p.Authenticate(ctx, "rex@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = p.Authenticate(ctx, "nobody@example.com", "squeaky-toy")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestTokenRoundTrip(t *testing.T) {
	ctx := context.Background()
	p := newTestProvider()

	identity, err := p.CreateIdentity(ctx, "rex@example.com", "squeaky-toy")
	require.NoError(t, err)

	token, err := p.IssueToken(identity)
	require.NoError(t, err)

	resolved, err := p.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, identity.UserID, resolved.UserID)
	assert.Equal(t, identity.Email, resolved.Email)
}

func TestResolveRejectsBadTokens(t *testing.T) {
	ctx := context.Background()
	p := newTestProvider()

	_, err := p.Resolve(ctx, "garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)

	// Token signed with a different secret
	other := NewJWTProvider(kv.NewMemoryStore(), "other-secret", time.Hour)
	token, err := other.IssueToken(&Identity{UserID: "u1", Email: "a@x.com"})
	require.NoError(t, err)

	_, err = p.Resolve(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestResolveRejectsExpiredToken(t *testing.T) {
	ctx := context.Background()
	p := NewJWTProvider(kv.NewMemoryStore(), "test-secret", -time.Hour)

	token, err := p.IssueToken(&Identity{UserID: "u1", Email: "a@x.com"})
	require.NoError(t, err)

	_, err = p.Resolve(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
