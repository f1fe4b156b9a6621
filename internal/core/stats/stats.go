// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package stats

import (
	"time"

	"github.com/taibuivan/animelar/internal/platform/sec"
)

// Totals are the platform-wide figures of GET /stats.
type Totals struct {
	TotalUsers     int64 `json:"totalUsers"`
	TotalAnimes    int   `json:"totalAnimes"`
	TotalBanners   int   `json:"totalBanners"`
	TotalAds       int   `json:"totalAds"`
	TotalViews     int64 `json:"totalViews"`
	TotalPurchases int64 `json:"totalPurchases"`
	TotalRevenue   int64 `json:"totalRevenue"`
}

// AdminSummary rolls up one admin's catalog.
type AdminSummary struct {
	ID             string        `json:"id"`
	DubbingName    string        `json:"dubbingName"`
	Role           sec.AdminRole `json:"role"`
	TotalAnimes    int           `json:"totalAnimes"`
	TotalViews     int64         `json:"totalViews"`
	TotalPurchases int64         `json:"totalPurchases"`
	TotalRevenue   int64         `json:"totalRevenue"`
}

// TopAnime is one entry of the views leaderboard.
type TopAnime struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	DubbingName string `json:"dubbingName"`
	Views       int64  `json:"views"`
	Purchases   int64  `json:"purchases"`
	Revenue     int64  `json:"revenue"`
}

// Overview is the body of GET /stats.
type Overview struct {
	Stats      Totals         `json:"stats"`
	AdminStats []AdminSummary `json:"adminStats"`
	TopAnimes  []TopAnime     `json:"topAnimes"`
}

// AdminProfile identifies the admin in an [AdminReport].
type AdminProfile struct {
	ID          string        `json:"id"`
	DubbingName string        `json:"dubbingName"`
	Role        sec.AdminRole `json:"role"`
	AddedAt     time.Time     `json:"addedAt"`
}

// CatalogTotals sums one admin's animes.
type CatalogTotals struct {
	TotalAnimes    int   `json:"totalAnimes"`
	TotalViews     int64 `json:"totalViews"`
	TotalPurchases int64 `json:"totalPurchases"`
	TotalRevenue   int64 `json:"totalRevenue"`
}

// AnimeSummary is one anime of an [AdminReport].
type AnimeSummary struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Price        int64     `json:"price"`
	Views        int64     `json:"views"`
	Purchases    int64     `json:"purchases"`
	Revenue      int64     `json:"revenue"`
	EpisodeCount int       `json:"episodeCount"`
	CreatedAt    time.Time `json:"createdAt"`
}

// AdminReport is the body of GET /admin/{id}/stats.
type AdminReport struct {
	Admin  AdminProfile   `json:"admin"`
	Stats  CatalogTotals  `json:"stats"`
	Animes []AnimeSummary `json:"animes"`
}
