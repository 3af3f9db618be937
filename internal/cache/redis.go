package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const tagGenerationsKey = "cache:tag_generations"

// RedisStore is a Store backed by Redis, for deployments running more than
// one instance: every instance observes the same tag generations.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(ctx context.Context, url string) (*RedisStore, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return &RedisStore{client: client}, nil
}

// Ping verifies the connection, for health checks.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the underlying connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// Invalidate bumps the tag's generation.
func (s *RedisStore) Invalidate(ctx context.Context, tag string) error {
	if err := s.client.HIncrBy(ctx, tagGenerationsKey, tag, 1).Err(); err != nil {
		return fmt.Errorf("invalidate tag %q: %w", tag, err)
	}
	return nil
}

// Generation returns the tag's current generation. Unseen tags are at 0.
func (s *RedisStore) Generation(ctx context.Context, tag string) (uint64, error) {
	gen, err := s.client.HGet(ctx, tagGenerationsKey, tag).Uint64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("get tag generation %q: %w", tag, err)
	}
	return gen, nil
}

// IsValid reports whether a result computed at generation seen is still valid.
func (s *RedisStore) IsValid(ctx context.Context, tag string, seen uint64) (bool, error) {
	gen, err := s.Generation(ctx, tag)
	if err != nil {
		return false, err
	}
	return gen == seen, nil
}
