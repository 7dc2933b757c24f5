package kv

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// RedisStore implements Store on a Redis instance. Every record is a plain
// string value under its full key; prefix scans use SCAN MATCH.
type RedisStore struct {
	Client *redis.Client
}

// NewRedisStore creates a Store backed by the given Redis address.
func NewRedisStore(addr, password string, db int) *RedisStore {
	return &RedisStore{Client: redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})}
}

func (rs *RedisStore) Get(ctx context.Context, key string) (json.RawMessage, error) {
	val, err := rs.Client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get key '%s': %w", key, err)
	}
	return json.RawMessage(val), nil
}

func (rs *RedisStore) Set(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}
	if err := rs.Client.Set(ctx, key, string(raw), 0).Err(); err != nil {
		return fmt.Errorf("failed to set key '%s': %w", key, err)
	}
	return nil
}

func (rs *RedisStore) GetByPrefix(ctx context.Context, prefix string) ([]json.RawMessage, error) {
	var keys []string
	iter := rs.Client.Scan(ctx, 0, prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan prefix '%s': %w", prefix, err)
	}
	if len(keys) == 0 {
		return nil, nil
	}

	vals, err := rs.Client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to mget %d keys: %w", len(keys), err)
	}

	results := make([]json.RawMessage, 0, len(vals))
	for _, v := range vals {
		// A key deleted between SCAN and MGET comes back nil; skip it.
		if s, ok := v.(string); ok {
			results = append(results, json.RawMessage(s))
		}
	}
	return results, nil
}
