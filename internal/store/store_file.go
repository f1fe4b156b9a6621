// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileRepository persists the document as indented JSON on local disk.
//
// # Durability
//
// Save writes a temporary file next to the target, syncs it and renames it
// into place, so a crash mid-write leaves the previous document intact.
type FileRepository struct {
	path string
}

// NewFileRepository returns a repository backed by the file at path.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

// Path returns the backing file location.
func (r *FileRepository) Path() string {
	return r.path
}

// Load implements [Repository].
func (r *FileRepository) Load(_ context.Context) (*Document, error) {
	body, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotExist
		}
		return nil, fmt.Errorf("store: failed to read %s: %w", r.path, err)
	}
	return decodeDocument(body)
}

// Save implements [Repository].
func (r *FileRepository) Save(_ context.Context, doc *Document) error {
	body, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("store: failed to encode document: %w", err)
	}
	return writeFileAtomic(r.path, body)
}

// Ping implements [Repository]. It checks that the parent directory exists.
func (r *FileRepository) Ping(_ context.Context) error {
	directory := filepath.Dir(r.path)
	info, err := os.Stat(directory)
	if err != nil {
		return fmt.Errorf("store: data directory unavailable: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("store: %s is not a directory", directory)
	}
	return nil
}

// Close implements [Repository].
func (r *FileRepository) Close() error { return nil }

// writeFileAtomic replaces path with body through a synced temporary file.
func writeFileAtomic(path string, body []byte) error {
	directory := filepath.Dir(path)
	if err := os.MkdirAll(directory, 0o755); err != nil {
		return fmt.Errorf("store: failed to create %s: %w", directory, err)
	}

	temp, err := os.CreateTemp(directory, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("store: failed to create temp file: %w", err)
	}
	tempName := temp.Name()

	// Remove the temp file on any failure below; after a successful rename this is a no-op.
	defer func() { _ = os.Remove(tempName) }()

	if _, err := temp.Write(body); err != nil {
		_ = temp.Close()
		return fmt.Errorf("store: failed to write temp file: %w", err)
	}
	if err := temp.Sync(); err != nil {
		_ = temp.Close()
		return fmt.Errorf("store: failed to sync temp file: %w", err)
	}
	if err := temp.Close(); err != nil {
		return fmt.Errorf("store: failed to close temp file: %w", err)
	}

	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("store: failed to replace %s: %w", path, err)
	}
	return nil
}
