// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package store owns the single persisted document behind the Animelar API.

Every collection (users, admins, banners, animes, ads) and the running stats
counters live in one [Document]. A request loads it, mutates it in memory and,
when it changed something, writes it back whole.

Architecture:

  - Document: The entity model plus lookup and authorization helpers.
  - Repository: Load/Save contract implemented by the file, memory, postgres,
    redis and mongo backends.
  - Gateway: The load-mutate-save cycle, the bootstrap seed and write serialization.
*/
package store

import (
	"time"

	"github.com/taibuivan/animelar/internal/platform/constants"
	"github.com/taibuivan/animelar/internal/platform/sec"
	"github.com/taibuivan/animelar/pkg/slice"
)

// # Entities

// User is a marketplace customer holding a spendable balance.
type User struct {
	ID              string    `json:"id"              bson:"id"`
	Name            string    `json:"name"            bson:"name"`
	Email           string    `json:"email"           bson:"email"`
	PasswordHash    string    `json:"passwordHash"    bson:"passwordHash"`
	Balance         int64     `json:"balance"         bson:"balance"`
	PurchasedAnimes []string  `json:"purchasedAnimes" bson:"purchasedAnimes"`
	CreatedAt       time.Time `json:"createdAt"       bson:"createdAt"`
}

// HasPurchased reports whether the anime is already in the user's library.
func (u *User) HasPurchased(animeID string) bool {
	for _, id := range u.PurchasedAnimes {
		if id == animeID {
			return true
		}
	}
	return false
}

// Admin is a dubbing team allowed to publish animes.
//
// The ID is an external identifier supplied by the super admin and need not
// match any User.ID.
type Admin struct {
	ID          string        `json:"id"          bson:"id"`
	DubbingName string        `json:"dubbingName" bson:"dubbingName"`
	AddedBy     string        `json:"addedBy"     bson:"addedBy"`
	AddedAt     time.Time     `json:"addedAt"     bson:"addedAt"`
	Role        sec.AdminRole `json:"role"        bson:"role"`
}

// Banner is a promotional strip managed by the super admin.
type Banner struct {
	ID        string    `json:"id"        bson:"id"`
	Text      string    `json:"text"      bson:"text"`
	ImageURL  string    `json:"imageUrl"  bson:"imageUrl"`
	AddedBy   string    `json:"addedBy"   bson:"addedBy"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// Ad is a paid advertisement.
//
// Clicks and Active are reserved: no endpoint changes them after creation.
type Ad struct {
	ID        string    `json:"id"        bson:"id"`
	Title     string    `json:"title"     bson:"title"`
	ImageURL  string    `json:"imageUrl"  bson:"imageUrl"`
	UserID    string    `json:"userId"    bson:"userId"`
	Views     int64     `json:"views"     bson:"views"`
	Clicks    int64     `json:"clicks"    bson:"clicks"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	Active    bool      `json:"active"    bson:"active"`
}

// Episode is one video of an anime. Views is reserved.
type Episode struct {
	ID            string    `json:"id"            bson:"id"`
	EpisodeNumber int       `json:"episodeNumber" bson:"episodeNumber"`
	Title         string    `json:"title"         bson:"title"`
	VideoURL      string    `json:"videoUrl"      bson:"videoUrl"`
	Views         int64     `json:"views"         bson:"views"`
	AddedAt       time.Time `json:"addedAt"       bson:"addedAt"`
}

// Anime is a purchasable catalog entry.
//
// DubbingName is a snapshot of the creator's name at creation time and is
// not kept in sync with later admin changes.
type Anime struct {
	ID          string    `json:"id"          bson:"id"`
	Title       string    `json:"title"       bson:"title"`
	Genre       string    `json:"genre"       bson:"genre"`
	Desc        string    `json:"desc"        bson:"desc"`
	Price       int64     `json:"price"       bson:"price"`
	PosterURL   string    `json:"posterUrl"   bson:"posterUrl"`
	Episodes    []Episode `json:"episodes"    bson:"episodes"`
	AddedBy     string    `json:"addedBy"     bson:"addedBy"`
	DubbingName string    `json:"dubbingName" bson:"dubbingName"`
	Views       int64     `json:"views"       bson:"views"`
	Purchases   int64     `json:"purchases"   bson:"purchases"`
	Revenue     int64     `json:"revenue"     bson:"revenue"`
	CreatedAt   time.Time `json:"createdAt"   bson:"createdAt"`
}

// Stats caches running totals that are also derivable from the collections.
type Stats struct {
	Views        int64 `json:"views"        bson:"views"`
	Purchases    int64 `json:"purchases"    bson:"purchases"`
	Users        int64 `json:"users"        bson:"users"`
	TotalRevenue int64 `json:"totalRevenue" bson:"totalRevenue"`
}

// # Document

// Document is the root of all persisted state.
type Document struct {
	Users   []User   `json:"users"   bson:"users"`
	Admins  []Admin  `json:"admins"  bson:"admins"`
	Banners []Banner `json:"banners" bson:"banners"`
	Animes  []Anime  `json:"animes"  bson:"animes"`
	Ads     []Ad     `json:"ads"     bson:"ads"`
	Stats   Stats    `json:"stats"   bson:"stats"`

	// superAdminID is bound by the Gateway on every load; it is never persisted.
	superAdminID string
}

// Seed builds the document written on first start: empty collections and the
// bootstrap super admin record.
func Seed(superAdminID string, now time.Time) *Document {
	doc := &Document{
		Admins: []Admin{{
			ID:          superAdminID,
			DubbingName: constants.SuperAdminDubbingName,
			AddedBy:     constants.SystemActor,
			AddedAt:     now,
			Role:        sec.RoleSuperAdmin,
		}},
		superAdminID: superAdminID,
	}
	doc.normalize()
	return doc
}

// normalize replaces nil collections with empty ones so they render as [].
func (d *Document) normalize() {
	if d.Users == nil {
		d.Users = []User{}
	}
	if d.Admins == nil {
		d.Admins = []Admin{}
	}
	if d.Banners == nil {
		d.Banners = []Banner{}
	}
	if d.Animes == nil {
		d.Animes = []Anime{}
	}
	if d.Ads == nil {
		d.Ads = []Ad{}
	}

	for i := range d.Users {
		if d.Users[i].PurchasedAnimes == nil {
			d.Users[i].PurchasedAnimes = []string{}
		}
	}
	for i := range d.Animes {
		if d.Animes[i].Episodes == nil {
			d.Animes[i].Episodes = []Episode{}
		}
	}
}

// # Authorization

// SuperAdminID returns the configured super admin identity.
func (d *Document) SuperAdminID() string {
	return d.superAdminID
}

// IsAdmin reports whether id is the configured super admin or has an admin record.
func (d *Document) IsAdmin(id string) bool {
	if id == "" {
		return false
	}
	if id == d.superAdminID {
		return true
	}
	return d.FindAdmin(id) != nil
}

// IsSuperAdmin reports whether id is the configured super admin or has an
// admin record with the super_admin role.
func (d *Document) IsSuperAdmin(id string) bool {
	if id == "" {
		return false
	}
	if id == d.superAdminID {
		return true
	}
	admin := d.FindAdmin(id)
	return admin != nil && admin.Role.AtLeast(sec.RoleSuperAdmin)
}

// # Lookups
//
// Returned pointers alias the document's slices: writes through them are
// persisted by the next save.

// FindUser returns the user with the given id, or nil.
func (d *Document) FindUser(id string) *User {
	return slice.Find(d.Users, func(u User) bool { return u.ID == id })
}

// FindUserByEmail returns the user registered with the given email, or nil.
func (d *Document) FindUserByEmail(email string) *User {
	return slice.Find(d.Users, func(u User) bool { return u.Email == email })
}

// FindAdmin returns the admin record with the given id, or nil.
func (d *Document) FindAdmin(id string) *Admin {
	return slice.Find(d.Admins, func(a Admin) bool { return a.ID == id })
}

// FindAnime returns the anime with the given id, or nil.
func (d *Document) FindAnime(id string) *Anime {
	return slice.Find(d.Animes, func(a Anime) bool { return a.ID == id })
}

// FindAd returns the ad with the given id, or nil.
func (d *Document) FindAd(id string) *Ad {
	return slice.Find(d.Ads, func(a Ad) bool { return a.ID == id })
}

// ActiveAds returns the ads still flagged active, in creation order.
func (d *Document) ActiveAds() []Ad {
	return slice.Filter(d.Ads, func(a Ad) bool { return a.Active })
}

// AnimesBy returns the animes created by the given admin, in creation order.
func (d *Document) AnimesBy(adminID string) []Anime {
	return slice.Filter(d.Animes, func(a Anime) bool { return a.AddedBy == adminID })
}
