// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package redis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentKey(t *testing.T) {
	assert.Equal(t, "animelar:document:animelar", DocumentKey("animelar"))
}

func TestParseOptions(t *testing.T) {
	clientOptions, err := parseOptions(Options{URL: "redis://:secret@cache.internal:6380/2", PoolSize: 8})
	require.NoError(t, err)

	assert.Equal(t, "cache.internal:6380", clientOptions.Addr)
	assert.Equal(t, 2, clientOptions.DB)
	assert.Equal(t, "secret", clientOptions.Password)
	assert.Equal(t, 8, clientOptions.PoolSize)
	assert.Equal(t, 8, clientOptions.MaxIdleConns)
	assert.Equal(t, "animelar", clientOptions.ClientName)
}

func TestParseOptions_ClampsPoolSize(t *testing.T) {
	clientOptions, err := parseOptions(Options{URL: "redis://localhost:6379/0"})
	require.NoError(t, err)
	assert.Equal(t, 1, clientOptions.PoolSize)
}

func TestParseOptions_InvalidURL(t *testing.T) {
	_, err := parseOptions(Options{URL: "http://localhost:6379"})
	assert.ErrorContains(t, err, "REDIS_URL")
}
