// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package store

import (
	"context"
	"sync"
)

// MemoryRepository keeps the document in process memory.
//
// The document is held in encoded form so that every Load hands out an
// independent copy, matching the behaviour of the durable backends.
type MemoryRepository struct {
	mu   sync.RWMutex
	body []byte
}

// NewMemoryRepository returns an empty [MemoryRepository].
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// Load implements [Repository].
func (r *MemoryRepository) Load(_ context.Context) (*Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.body == nil {
		return nil, ErrNotExist
	}
	return decodeDocument(r.body)
}

// Save implements [Repository].
func (r *MemoryRepository) Save(_ context.Context, doc *Document) error {
	body, err := encodeDocument(doc)
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.body = body
	r.mu.Unlock()
	return nil
}

// Ping implements [Repository].
func (r *MemoryRepository) Ping(_ context.Context) error { return nil }

// Close implements [Repository].
func (r *MemoryRepository) Close() error { return nil }
