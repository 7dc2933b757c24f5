// Package kv provides the flat key-value store every PetNet record lives in.
// Values are JSON documents; keys are "<type>:<identifier>" strings.
//
// The contract is deliberately weak: Set is a full overwrite with no merge
// and no version check, and there is no atomicity across keys. Callers doing
// read-modify-write (toggles, counters, the two-sided follow update) get
// last-write-wins semantics.
package kv

import (
	"context"
	"encoding/json"
	"errors"
)

// ErrNotFound is returned by Get when the key is absent.
var ErrNotFound = errors.New("kv: key not found")

// Store is the storage contract shared by all backends.
type Store interface {
	// Get returns the raw JSON document stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) (json.RawMessage, error)

	// Set marshals value to JSON and overwrites key with it.
	Set(ctx context.Context, key string, value interface{}) error

	// GetByPrefix returns the documents of every key starting with prefix,
	// in store-defined order. Callers needing an ordering must re-sort.
	GetByPrefix(ctx context.Context, prefix string) ([]json.RawMessage, error)
}

// GetAs fetches key and unmarshals the document into out.
func GetAs(ctx context.Context, s Store, key string, out interface{}) error {
	raw, err := s.Get(ctx, key)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}
