package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"petnet_server/kv"
	"petnet_server/models"
)

// credential is the record stored under "auth:<email>".
type credential struct {
	UserID       string `json:"userId"`
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
	CreatedAt    string `json:"createdAt"`
}

// Claims carried by every PetNet bearer token.
type Claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// JWTProvider implements Provider with HS256 tokens and credentials kept in
// the KV store under the "auth:" prefix.
type JWTProvider struct {
	Store    kv.Store
	Secret   []byte
	TokenTTL time.Duration
}

// NewJWTProvider creates a Provider signing with the given secret.
func NewJWTProvider(store kv.Store, secret string, ttl time.Duration) *JWTProvider {
	return &JWTProvider{Store: store, Secret: []byte(secret), TokenTTL: ttl}
}

func credentialKey(email string) string {
	return models.CredentialKeyPrefix + email
}

func (p *JWTProvider) CreateIdentity(ctx context.Context, email, password string) (*Identity, error) {
	if err := ValidateCredentials(email, password); err != nil {
		return nil, err
	}

	var existing credential
	err := kv.GetAs(ctx, p.Store, credentialKey(email), &existing)
	if err == nil {
		return nil, ErrEmailExists
	}
	if !errors.Is(err, kv.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing credential: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	cred := credential{
		UserID:       uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	}
	if err := p.Store.Set(ctx, credentialKey(email), cred); err != nil {
		return nil, fmt.Errorf("failed to store credential: %w", err)
	}

	return &Identity{UserID: cred.UserID, Email: cred.Email}, nil
}

func (p *JWTProvider) Authenticate(ctx context.Context, email, password string) (*Identity, error) {
	var cred credential
	if err := kv.GetAs(ctx, p.Store, credentialKey(email), &cred); err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load credential: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &Identity{UserID: cred.UserID, Email: cred.Email}, nil
}

func (p *JWTProvider) IssueToken(identity *Identity) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: identity.UserID,
		Email:  identity.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(p.TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(p.Secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (p *JWTProvider) Resolve(_ context.Context, tokenString string) (*Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return p.Secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || claims.UserID == "" {
		return nil, ErrInvalidToken
	}
	return &Identity{UserID: claims.UserID, Email: claims.Email}, nil
}
