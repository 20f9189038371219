package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	backend "github.com/redis/go-redis/v9"
)

// Redis is a Store backed by a Redis instance, for plans shared between
// processes or surviving restarts.
type Redis struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

var _ Store = (*Redis)(nil)

// RedisOption configures a Redis store.
type RedisOption func(*Redis)

// WithPrefix sets the key prefix (default "wayfind:solve:").
func WithPrefix(prefix string) RedisOption {
	return func(r *Redis) { r.prefix = prefix }
}

// WithTTL sets the entry expiration. Zero (the default) means no expiration;
// solves are deterministic, so entries never go stale on their own.
func WithTTL(ttl time.Duration) RedisOption {
	return func(r *Redis) { r.ttl = ttl }
}

// NewRedis wraps an existing go-redis client.
func NewRedis(client *backend.Client, opts ...RedisOption) *Redis {
	r := &Redis{
		client: client,
		prefix: "wayfind:solve:",
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

func (r *Redis) key(k string) string { return r.prefix + k }

// Get returns the solution under key, ErrMiss when absent, or a wrapped
// backend error.
func (r *Redis) Get(ctx context.Context, key string) (*Solution, error) {
	val, err := r.client.Get(ctx, r.key(key)).Result()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return nil, ErrMiss
		}

		return nil, fmt.Errorf("cache: redis get: %w", err)
	}

	var sol Solution
	if err := json.Unmarshal([]byte(val), &sol); err != nil {
		return nil, fmt.Errorf("cache: decode cached solution: %w", err)
	}

	return &sol, nil
}

// Put stores the solution under key with the configured TTL.
func (r *Redis) Put(ctx context.Context, key string, sol *Solution) error {
	if sol == nil {
		return ErrNilSolution
	}
	data, err := json.Marshal(sol)
	if err != nil {
		return fmt.Errorf("cache: encode solution: %w", err)
	}
	if err := r.client.Set(ctx, r.key(key), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("cache: redis set: %w", err)
	}

	return nil
}
