// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/taibuivan/animelar/internal/platform/sec"
)

/*
TestBcryptHasher_RoundTrip verifies hashing never stores plaintext and compares correctly.
*/
func TestBcryptHasher_RoundTrip(t *testing.T) {
	hasher := sec.NewBcryptHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, "secret123", hash)
	assert.True(t, hasher.Compare("secret123", hash))
	assert.False(t, hasher.Compare("secret124", hash))
	assert.False(t, hasher.Compare("secret123", "not-a-hash"))
}

/*
TestBcryptHasher_RejectsOverlongInput reports bcrypt's input limit explicitly.
*/
func TestBcryptHasher_RejectsOverlongInput(t *testing.T) {
	_, err := sec.NewBcryptHasher(bcrypt.MinCost).Hash(strings.Repeat("a", 73))
	assert.ErrorIs(t, err, sec.ErrPasswordTooLong)
}

/*
TestAdminRole_AtLeast checks the role hierarchy.
*/
func TestAdminRole_AtLeast(t *testing.T) {
	assert.True(t, sec.RoleSuperAdmin.AtLeast(sec.RoleAdmin))
	assert.True(t, sec.RoleAdmin.AtLeast(sec.RoleAdmin))
	assert.False(t, sec.RoleAdmin.AtLeast(sec.RoleSuperAdmin))
	assert.False(t, sec.AdminRole("guest").AtLeast(sec.RoleAdmin))
}
