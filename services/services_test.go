package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"petnet_server/kv"
	"petnet_server/models"
)

// Test fixtures shared across the service tests.

// failingStore simulates a store outage: every operation fails with an error
// that is not kv.ErrNotFound.
type failingStore struct{}

func (failingStore) Get(context.Context, string) (json.RawMessage, error) {
	return nil, errors.New("store unavailable")
}

func (failingStore) Set(context.Context, string, interface{}) error {
	return errors.New("store unavailable")
}

func (failingStore) GetByPrefix(context.Context, string) ([]json.RawMessage, error) {
	return nil, errors.New("store unavailable")
}

func seedProfile(t *testing.T, store kv.Store, userID, petName string, isAdmin bool) models.Profile {
	t.Helper()

	profile := models.NewProfile(userID, userID+"@example.com", petName, "Dog", "Lab", 3, "2024-01-01T00:00:00Z")
	profile.IsAdmin = isAdmin
	require.NoError(t, store.Set(context.Background(), models.ProfileKeyPrefix+userID, profile))
	return profile
}

func seedPost(t *testing.T, store kv.Store, id, userID, createdAt string) models.Post {
	t.Helper()

	post := models.NewPost(id, userID, "woof", "", "", nil, createdAt)
	require.NoError(t, store.Set(context.Background(), id, post))
	return post
}

func getProfile(t *testing.T, store kv.Store, userID string) models.Profile {
	t.Helper()

	var profile models.Profile
	require.NoError(t, kv.GetAs(context.Background(), store, models.ProfileKeyPrefix+userID, &profile))
	return profile
}
