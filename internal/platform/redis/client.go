// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package redis opens the go-redis client behind the redis document backend.

Each document is one string key without expiry under [DocumentKey]. Pool size
comes from REDIS_POOL_SIZE.
*/
package redis

import (
	stdctx "context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// documentPrefix namespaces persisted documents.
const documentPrefix = "animelar:document:"

const (
	dialTimeout  = 3 * time.Second
	ioTimeout    = 2 * time.Second
	pingTimeout  = 2 * time.Second
	clientName   = "animelar"
	defaultPools = 1
)

// Options configures [NewClient].
type Options struct {
	URL      string
	PoolSize int
}

// DocumentKey returns the Redis key holding the named document.
func DocumentKey(name string) string {
	return documentPrefix + name
}

// NewClient parses the URL, connects and pings once before returning.
func NewClient(context stdctx.Context, options Options, logger *slog.Logger) (*redis.Client, error) {
	clientOptions, err := parseOptions(options)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(clientOptions)

	if err := Ping(context, client); err != nil {
		_ = client.Close()
		return nil, err
	}

	logger.Info("redis_client_connected",
		slog.String("addr", clientOptions.Addr),
		slog.Int("db", clientOptions.DB),
		slog.Int("pool_size", clientOptions.PoolSize),
	)

	return client, nil
}

// parseOptions turns [Options] into go-redis options without dialing.
func parseOptions(options Options) (*redis.Options, error) {
	clientOptions, err := redis.ParseURL(options.URL)
	if err != nil {
		return nil, fmt.Errorf("redis: invalid REDIS_URL: %w", err)
	}

	clientOptions.ClientName = clientName
	clientOptions.PoolSize = max(options.PoolSize, defaultPools)
	clientOptions.MaxIdleConns = clientOptions.PoolSize
	clientOptions.DialTimeout = dialTimeout
	clientOptions.ReadTimeout = ioTimeout
	clientOptions.WriteTimeout = ioTimeout

	return clientOptions, nil
}

// Ping checks the client within a short deadline.
func Ping(context stdctx.Context, client *redis.Client) error {
	pingCtx, cancel := stdctx.WithTimeout(context, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		return fmt.Errorf("redis: ping failed: %w", err)
	}
	return nil
}
