// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package idgen issues string identifiers derived from the creation time.

Every persisted entity (user, banner, ad, anime, episode) is keyed by the
Unix millisecond at which it was created, rendered as a decimal string.

Guarantees:

  - Ordered: Later calls never return a smaller value than earlier ones.
  - Unique: Two calls within the same millisecond are bumped apart by one.
*/
package idgen

import (
	"strconv"
	"sync"
	"time"
)

// Generator hands out monotonic millisecond identifiers.
//
// # Concurrency
//
// Generator is safe for concurrent use.
type Generator struct {
	mu    sync.Mutex
	last  int64
	clock func() time.Time
}

// New returns a [Generator] reading the wall clock.
func New() *Generator {
	return &Generator{clock: time.Now}
}

// NewWithClock returns a [Generator] reading the given clock.
func NewWithClock(clock func() time.Time) *Generator {
	return &Generator{clock: clock}
}

// Next returns the next identifier.
func (g *Generator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	candidate := g.clock().UnixMilli()
	if candidate <= g.last {
		candidate = g.last + 1
	}
	g.last = candidate

	return strconv.FormatInt(candidate, 10)
}
