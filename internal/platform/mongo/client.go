// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package mongo provides a managed client for the MongoDB document backend.

It mirrors the postgres and redis packages: connect, validate with a ping,
log the outcome, and expose a bounded Ping for readiness probes.
*/
package mongo

import (
	stdctx "context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Opinionated default timeouts for MongoDB operations.
const (
	connectTimeout    = 10 * time.Second
	pingTimeout       = 2 * time.Second
	disconnectTimeout = 5 * time.Second
	maxPoolSize       = 10
)

// NewClient connects to MongoDB and returns a ready-to-use client.
//
// # Parameters
//   - context: Context for the initial connection and ping.
//   - mongoURL: MongoDB connection URI.
//   - logger: Structured logger for connection events.
func NewClient(context stdctx.Context, mongoURL string, logger *slog.Logger) (*mongo.Client, error) {
	connectCtx, cancel := stdctx.WithTimeout(context, connectTimeout)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(mongoURL).
		SetMaxPoolSize(maxPoolSize).
		SetConnectTimeout(connectTimeout)

	client, err := mongo.Connect(connectCtx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("mongo: failed to connect: %w", err)
	}

	// Validate connectivity immediately at startup.
	if err := Ping(context, client); err != nil {
		_ = Disconnect(client)
		return nil, err
	}

	logger.Info("mongo client connected",
		slog.Int("max_pool_size", maxPoolSize),
	)

	return client, nil
}

// Ping verifies that the MongoDB primary is reachable.
func Ping(context stdctx.Context, client *mongo.Client) error {
	pingCtx, cancel := stdctx.WithTimeout(context, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		return fmt.Errorf("mongo: ping failed: %w", err)
	}

	return nil
}

// Disconnect closes the client within a bounded timeout.
func Disconnect(client *mongo.Client) error {
	ctx, cancel := stdctx.WithTimeout(stdctx.Background(), disconnectTimeout)
	defer cancel()
	return client.Disconnect(ctx)
}
