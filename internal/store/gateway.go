// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package store

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/taibuivan/animelar/internal/platform/ctxutil"
	"github.com/taibuivan/animelar/internal/platform/metrics"
)

// Gateway runs the load-mutate-save cycle over a [Repository].
//
// # Concurrency
//
// Update cycles are serialized within the process, so two requests never
// interleave between load and save. Separate processes sharing one backend
// remain last-writer-wins. Read cycles take no lock.
type Gateway struct {
	repository   Repository
	superAdminID string
	metrics      *metrics.Metrics
	clock        func() time.Time

	mu sync.Mutex
}

// NewGateway wraps a repository. The metrics argument may be nil.
func NewGateway(repository Repository, superAdminID string, recorder *metrics.Metrics) *Gateway {
	return &Gateway{
		repository:   repository,
		superAdminID: superAdminID,
		metrics:      recorder,
		clock:        func() time.Time { return time.Now().UTC() },
	}
}

// Repository exposes the wrapped backend (used by health checks and shutdown).
func (g *Gateway) Repository() Repository {
	return g.repository
}

// Bootstrap writes the seed document if the backend holds nothing yet.
//
// # Returns
//   - seeded: true if a new document was written.
func (g *Gateway) Bootstrap(ctx context.Context) (seeded bool, err error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	_, created, err := g.load(ctx)
	if err != nil || !created {
		return false, err
	}

	if err := g.save(ctx, Seed(g.superAdminID, g.Now())); err != nil {
		return false, err
	}
	return true, nil
}

// Read loads the document and hands it to fn. Nothing is saved.
func (g *Gateway) Read(ctx context.Context, fn func(doc *Document) error) error {
	doc, _, err := g.load(ctx)
	if err != nil {
		return err
	}
	return fn(doc)
}

// Update loads the document, lets fn mutate it and saves it.
//
// If fn returns an error the mutation is discarded and the error is returned
// unchanged.
func (g *Gateway) Update(ctx context.Context, fn func(doc *Document) error) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	doc, _, err := g.load(ctx)
	if err != nil {
		return err
	}

	if err := fn(doc); err != nil {
		return err
	}

	return g.save(ctx, doc)
}

// Now returns the timestamp recorded on newly created entities.
func (g *Gateway) Now() time.Time {
	return g.clock().Truncate(time.Millisecond)
}

// Ping checks the backend.
func (g *Gateway) Ping(ctx context.Context) error {
	return g.repository.Ping(ctx)
}

// load returns the stored document, or a fresh seed when none exists.
func (g *Gateway) load(ctx context.Context) (doc *Document, created bool, err error) {
	start := time.Now()
	doc, err = g.repository.Load(ctx)

	if errors.Is(err, ErrNotExist) {
		g.metrics.ObserveStore("load", time.Since(start), nil)
		return Seed(g.superAdminID, g.Now()), true, nil
	}

	g.metrics.ObserveStore("load", time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	doc.superAdminID = g.superAdminID
	doc.normalize()
	return doc, false, nil
}

func (g *Gateway) save(ctx context.Context, doc *Document) error {
	start := time.Now()
	err := g.repository.Save(ctx, doc)
	g.metrics.ObserveStore("save", time.Since(start), err)

	if err != nil {
		ctxutil.GetLogger(ctx).ErrorContext(ctx, "store_save_failed", slog.Any("error", err))
	}
	return err
}
