// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var gatewayTestTime = time.Date(2026, 5, 6, 7, 8, 9, 0, time.UTC)

/*
TestFileRepository_MissingFile reports ErrNotExist.
*/
func TestFileRepository_MissingFile(t *testing.T) {
	repo := NewFileRepository(filepath.Join(t.TempDir(), "db.json"))

	_, err := repo.Load(context.Background())
	assert.ErrorIs(t, err, ErrNotExist)
}

/*
TestFileRepository_SaveLoad writes indented JSON and leaves no temp files.
*/
func TestFileRepository_SaveLoad(t *testing.T) {
	ctx := context.Background()
	directory := filepath.Join(t.TempDir(), "nested", "data")
	repo := NewFileRepository(filepath.Join(directory, "db.json"))

	doc := Seed(testSuperAdmin, gatewayTestTime)
	doc.Users = append(doc.Users, User{ID: "1", Email: "a@b.c", Balance: 100, PurchasedAnimes: []string{"7"}})
	require.NoError(t, repo.Save(ctx, doc))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, doc.Users, loaded.Users)
	assert.Equal(t, doc.Admins, loaded.Admins)

	raw, err := os.ReadFile(repo.Path())
	require.NoError(t, err)
	assert.Contains(t, string(raw), "\n  \"users\"")

	entries, err := os.ReadDir(directory)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	assert.NoError(t, repo.Ping(ctx))
}

/*
TestFileRepository_CorruptFile surfaces a decode error.
*/
func TestFileRepository_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := NewFileRepository(path).Load(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotExist)
}

/*
TestFileRepository_PingMissingDirectory fails when the data directory is absent.
*/
func TestFileRepository_PingMissingDirectory(t *testing.T) {
	repo := NewFileRepository(filepath.Join(t.TempDir(), "absent", "db.json"))
	assert.Error(t, repo.Ping(context.Background()))
}
