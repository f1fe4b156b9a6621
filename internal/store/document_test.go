// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/animelar/internal/platform/sec"
)

const testSuperAdmin = "6526385624"

/*
TestSeed_ContainsSuperAdmin checks the bootstrap shape.
*/
func TestSeed_ContainsSuperAdmin(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	doc := Seed(testSuperAdmin, now)

	require.Len(t, doc.Admins, 1)
	assert.Equal(t, testSuperAdmin, doc.Admins[0].ID)
	assert.Equal(t, "Super Admin", doc.Admins[0].DubbingName)
	assert.Equal(t, "system", doc.Admins[0].AddedBy)
	assert.Equal(t, sec.RoleSuperAdmin, doc.Admins[0].Role)
	assert.Equal(t, now, doc.Admins[0].AddedAt)

	assert.NotNil(t, doc.Users)
	assert.NotNil(t, doc.Banners)
	assert.NotNil(t, doc.Animes)
	assert.NotNil(t, doc.Ads)
	assert.Equal(t, Stats{}, doc.Stats)
}

/*
TestAuthorization covers the admin and super admin predicates.
*/
func TestAuthorization(t *testing.T) {
	doc := &Document{
		Admins: []Admin{
			{ID: "dub-1", Role: sec.RoleAdmin},
			{ID: "boss-2", Role: sec.RoleSuperAdmin},
		},
		superAdminID: testSuperAdmin,
	}

	tests := []struct {
		name       string
		id         string
		admin      bool
		superAdmin bool
	}{
		{"configured_without_record", testSuperAdmin, true, true},
		{"plain_admin", "dub-1", true, false},
		{"super_admin_record", "boss-2", true, true},
		{"stranger", "someone", false, false},
		{"empty", "", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.admin, doc.IsAdmin(tt.id))
			assert.Equal(t, tt.superAdmin, doc.IsSuperAdmin(tt.id))
		})
	}
}

/*
TestLookups_AliasDocument ensures writes through lookups reach the document.
*/
func TestLookups_AliasDocument(t *testing.T) {
	doc := Seed(testSuperAdmin, time.Now())
	doc.Users = append(doc.Users, User{ID: "1", Email: "a@b.c", PurchasedAnimes: []string{"9"}})
	doc.Animes = append(doc.Animes, Anime{ID: "9", AddedBy: "dub-1"})
	doc.Ads = append(doc.Ads,
		Ad{ID: "a1", Active: true},
		Ad{ID: "a2", Active: false},
	)

	user := doc.FindUserByEmail("a@b.c")
	require.NotNil(t, user)
	user.Balance = 42
	assert.Equal(t, int64(42), doc.FindUser("1").Balance)
	assert.True(t, user.HasPurchased("9"))
	assert.False(t, user.HasPurchased("10"))

	doc.FindAnime("9").Views++
	assert.Equal(t, int64(1), doc.Animes[0].Views)

	assert.Nil(t, doc.FindAnime("missing"))
	assert.Nil(t, doc.FindAd("missing"))
	assert.Len(t, doc.ActiveAds(), 1)
	assert.Len(t, doc.AnimesBy("dub-1"), 1)
	assert.Empty(t, doc.AnimesBy("dub-2"))
}

/*
TestNormalize fills nil nested collections.
*/
func TestNormalize(t *testing.T) {
	doc := &Document{
		Users:  []User{{ID: "1"}},
		Animes: []Anime{{ID: "2"}},
	}
	doc.normalize()

	assert.NotNil(t, doc.Users[0].PurchasedAnimes)
	assert.NotNil(t, doc.Animes[0].Episodes)
	assert.NotNil(t, doc.Admins)
}
