// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNotExist is returned by [Repository.Load] when nothing has been saved yet.
var ErrNotExist = errors.New("store: document does not exist")

// Repository defines the persistence contract for the document.
//
// # Contract
//
// Load returns a fresh copy on every call; callers may mutate it freely.
// Save replaces the stored document in full.
type Repository interface {
	// Load reads the stored document, or returns [ErrNotExist].
	Load(ctx context.Context) (*Document, error)

	// Save overwrites the stored document.
	Save(ctx context.Context, doc *Document) error

	// Ping verifies that the backend is reachable.
	Ping(ctx context.Context) error

	// Close releases the backend's resources.
	Close() error
}

// # Encoding
//
// The file, memory, postgres and redis backends share the JSON encoding.

func encodeDocument(doc *Document) ([]byte, error) {
	body, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("store: failed to encode document: %w", err)
	}
	return body, nil
}

func decodeDocument(body []byte) (*Document, error) {
	doc := &Document{}
	if err := json.Unmarshal(body, doc); err != nil {
		return nil, fmt.Errorf("store: failed to decode document: %w", err)
	}
	return doc, nil
}
