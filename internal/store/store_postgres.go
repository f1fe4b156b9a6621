// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/animelar/internal/platform/postgres"
)

// PostgresRepository stores the document as one JSONB row of the documents table.
//
// # Schema
//
// The table is created by data/migrations (see the migration package).
type PostgresRepository struct {
	pool *pgxpool.Pool
	key  string
}

// NewPostgresRepository returns a repository for the row identified by key.
func NewPostgresRepository(pool *pgxpool.Pool, key string) *PostgresRepository {
	return &PostgresRepository{pool: pool, key: key}
}

// Load implements [Repository].
func (r *PostgresRepository) Load(ctx context.Context) (*Document, error) {
	const query = `SELECT body FROM documents WHERE id = $1`

	var body []byte
	if err := r.pool.QueryRow(ctx, query, r.key).Scan(&body); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotExist
		}
		return nil, fmt.Errorf("store: failed to load document %q: %w", r.key, err)
	}
	return decodeDocument(body)
}

// Save implements [Repository].
func (r *PostgresRepository) Save(ctx context.Context, doc *Document) error {
	const query = `
		INSERT INTO documents (id, body, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (id) DO UPDATE
		SET body = EXCLUDED.body, updated_at = EXCLUDED.updated_at`

	body, err := encodeDocument(doc)
	if err != nil {
		return err
	}

	if _, err := r.pool.Exec(ctx, query, r.key, body); err != nil {
		return fmt.Errorf("store: failed to save document %q: %w", r.key, err)
	}
	return nil
}

// Ping implements [Repository].
func (r *PostgresRepository) Ping(ctx context.Context) error {
	return postgres.Ping(ctx, r.pool)
}

// Close implements [Repository].
func (r *PostgresRepository) Close() error {
	r.pool.Close()
	return nil
}
