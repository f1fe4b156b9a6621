// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package stats aggregates marketplace figures on demand.

Every call scans the freshly loaded document; nothing is materialized besides the
running counters already kept in [store.Stats].

Orderings:

  - adminStats: Revenue descending, insertion order among equals.
  - topAnimes: Views descending, insertion order among equals, first ten.
*/
package stats

import (
	"cmp"
	"context"
	"slices"

	"github.com/taibuivan/animelar/internal/platform/apperr"
	"github.com/taibuivan/animelar/internal/platform/constants"
	"github.com/taibuivan/animelar/internal/store"
	"github.com/taibuivan/animelar/pkg/slice"
)

// Service implements the statistics queries.
type Service struct {
	gateway *store.Gateway
}

// NewService constructs a new [Service].
func NewService(gateway *store.Gateway) *Service {
	return &Service{gateway: gateway}
}

// Overview returns the platform totals, the per-admin rollup and the leaderboard.
func (service *Service) Overview(ctx context.Context) (*Overview, error) {
	var overview *Overview
	err := service.gateway.Read(ctx, func(doc *store.Document) error {
		overview = BuildOverview(doc)
		return nil
	})
	return overview, err
}

// ForAdmin returns one admin's catalog report, or admin_not_found.
func (service *Service) ForAdmin(ctx context.Context, adminID string) (*AdminReport, error) {
	var report *AdminReport
	err := service.gateway.Read(ctx, func(doc *store.Document) error {
		admin := doc.FindAdmin(adminID)
		if admin == nil {
			return apperr.NotFound(apperr.CodeAdminNotFound)
		}

		report = buildAdminReport(doc, admin)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}

// BuildOverview computes the /stats body from a loaded document.
func BuildOverview(doc *store.Document) *Overview {
	totals := Totals{
		TotalUsers:     doc.Stats.Users,
		TotalAnimes:    len(doc.Animes),
		TotalBanners:   len(doc.Banners),
		TotalAds:       len(doc.ActiveAds()),
		TotalViews:     doc.Stats.Views,
		TotalPurchases: doc.Stats.Purchases,
		TotalRevenue:   doc.Stats.TotalRevenue,
	}

	adminStats := slice.Map(doc.Admins, func(admin store.Admin) AdminSummary {
		catalog := sumCatalog(doc.AnimesBy(admin.ID))
		return AdminSummary{
			ID:             admin.ID,
			DubbingName:    admin.DubbingName,
			Role:           admin.Role,
			TotalAnimes:    catalog.TotalAnimes,
			TotalViews:     catalog.TotalViews,
			TotalPurchases: catalog.TotalPurchases,
			TotalRevenue:   catalog.TotalRevenue,
		}
	})
	slices.SortStableFunc(adminStats, func(a, b AdminSummary) int {
		return cmp.Compare(b.TotalRevenue, a.TotalRevenue)
	})

	ranked := slices.Clone(doc.Animes)
	slices.SortStableFunc(ranked, func(a, b store.Anime) int {
		return cmp.Compare(b.Views, a.Views)
	})
	if len(ranked) > constants.TopAnimesLimit {
		ranked = ranked[:constants.TopAnimesLimit]
	}

	topAnimes := slice.Map(ranked, func(anime store.Anime) TopAnime {
		return TopAnime{
			ID:          anime.ID,
			Title:       anime.Title,
			DubbingName: anime.DubbingName,
			Views:       anime.Views,
			Purchases:   anime.Purchases,
			Revenue:     anime.Revenue,
		}
	})

	return &Overview{Stats: totals, AdminStats: adminStats, TopAnimes: topAnimes}
}

func buildAdminReport(doc *store.Document, admin *store.Admin) *AdminReport {
	animes := doc.AnimesBy(admin.ID)

	return &AdminReport{
		Admin: AdminProfile{
			ID:          admin.ID,
			DubbingName: admin.DubbingName,
			Role:        admin.Role,
			AddedAt:     admin.AddedAt,
		},
		Stats: sumCatalog(animes),
		Animes: slice.Map(animes, func(anime store.Anime) AnimeSummary {
			return AnimeSummary{
				ID:           anime.ID,
				Title:        anime.Title,
				Price:        anime.Price,
				Views:        anime.Views,
				Purchases:    anime.Purchases,
				Revenue:      anime.Revenue,
				EpisodeCount: len(anime.Episodes),
				CreatedAt:    anime.CreatedAt,
			}
		}),
	}
}

func sumCatalog(animes []store.Anime) CatalogTotals {
	return slice.Reduce(animes, CatalogTotals{}, func(total CatalogTotals, anime store.Anime) CatalogTotals {
		total.TotalAnimes++
		total.TotalViews += anime.Views
		total.TotalPurchases += anime.Purchases
		total.TotalRevenue += anime.Revenue
		return total
	})
}
