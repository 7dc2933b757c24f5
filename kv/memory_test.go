package kv

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreGetSet(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.Get(ctx, "profile:missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Set(ctx, "profile:u1", map[string]string{"petName": "Rex"}))

	raw, err := store.Get(ctx, "profile:u1")
	require.NoError(t, err)

	var doc map[string]string
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, "Rex", doc["petName"])
}

func TestMemoryStoreSetOverwrites(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Set(ctx, "post:1", map[string]int{"a": 1}))
	require.NoError(t, store.Set(ctx, "post:1", map[string]int{"b": 2}))

	raw, err := store.Get(ctx, "post:1")
	require.NoError(t, err)

	var doc map[string]int
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, map[string]int{"b": 2}, doc)
}

func TestMemoryStoreGetByPrefix(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Set(ctx, "post:2", "second"))
	require.NoError(t, store.Set(ctx, "post:1", "first"))
	require.NoError(t, store.Set(ctx, "profile:u1", "other type"))

	values, err := store.GetByPrefix(ctx, "post:")
	require.NoError(t, err)
	require.Len(t, values, 2)

	// Ascending key order
	assert.Equal(t, `"first"`, string(values[0]))
	assert.Equal(t, `"second"`, string(values[1]))

	empty, err := store.GetByPrefix(ctx, "contest:")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestNewID(t *testing.T) {
	id := NewID("post:")
	assert.True(t, HasPrefix(id, "post:"))
	assert.Contains(t, id, "-")

	other := NewID("post:")
	assert.NotEqual(t, id, other)
}

func TestHasPrefix(t *testing.T) {
	assert.True(t, HasPrefix("post:123-abc", "post:"))
	assert.False(t, HasPrefix("post:", "post:"))
	assert.False(t, HasPrefix("profile:u1", "post:"))
	assert.False(t, HasPrefix("", "post:"))
}
