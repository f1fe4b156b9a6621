// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	platformredis "github.com/taibuivan/animelar/internal/platform/redis"
)

// RedisRepository stores the document as a JSON string without expiry.
type RedisRepository struct {
	client *redis.Client
	key    string
}

// NewRedisRepository returns a repository for the document identified by key.
func NewRedisRepository(client *redis.Client, key string) *RedisRepository {
	return &RedisRepository{
		client: client,
		key:    platformredis.DocumentKey(key),
	}
}

// Load implements [Repository].
func (r *RedisRepository) Load(ctx context.Context) (*Document, error) {
	body, err := r.client.Get(ctx, r.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotExist
		}
		return nil, fmt.Errorf("store: failed to load %s: %w", r.key, err)
	}
	return decodeDocument(body)
}

// Save implements [Repository].
func (r *RedisRepository) Save(ctx context.Context, doc *Document) error {
	body, err := encodeDocument(doc)
	if err != nil {
		return err
	}

	if err := r.client.Set(ctx, r.key, body, 0).Err(); err != nil {
		return fmt.Errorf("store: failed to save %s: %w", r.key, err)
	}
	return nil
}

// Ping implements [Repository].
func (r *RedisRepository) Ping(ctx context.Context) error {
	return platformredis.Ping(ctx, r.client)
}

// Close implements [Repository].
func (r *RedisRepository) Close() error {
	return r.client.Close()
}
