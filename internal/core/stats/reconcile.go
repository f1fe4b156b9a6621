// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package stats

import (
	"github.com/taibuivan/animelar/internal/platform/constants"
	"github.com/taibuivan/animelar/internal/store"
	"github.com/taibuivan/animelar/pkg/slice"
)

// Reconciliation compares the running [store.Stats] counters with the values
// derived from the collections.
type Reconciliation struct {
	Recorded store.Stats
	Derived  store.Stats
}

// Drifted reports whether any counter disagrees with the collections.
func (r Reconciliation) Drifted() bool {
	return r.Recorded != r.Derived
}

// Reconcile recomputes every stats counter from the collections.
//
// Revenue is derived as the ad fee per ad plus the revenue booked on animes.
// Per-anime revenue is checked against price times purchases.
func Reconcile(doc *store.Document) Reconciliation {
	derived := store.Stats{
		Users: int64(len(doc.Users)),
		Views: slice.Reduce(doc.Animes, int64(0), func(total int64, anime store.Anime) int64 {
			return total + anime.Views
		}),
		Purchases: slice.Reduce(doc.Animes, int64(0), func(total int64, anime store.Anime) int64 {
			return total + anime.Purchases
		}),
		TotalRevenue: constants.AdFee*int64(len(doc.Ads)) +
			slice.Reduce(doc.Animes, int64(0), func(total int64, anime store.Anime) int64 {
				return total + anime.Revenue
			}),
	}

	return Reconciliation{Recorded: doc.Stats, Derived: derived}
}

// MispricedAnimes returns the ids of animes whose revenue differs from price times purchases.
func MispricedAnimes(doc *store.Document) []string {
	mispriced := slice.Filter(doc.Animes, func(anime store.Anime) bool {
		return anime.Revenue != anime.Price*anime.Purchases
	})
	return slice.Map(mispriced, func(anime store.Anime) string { return anime.ID })
}
