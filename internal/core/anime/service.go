// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package anime implements the catalog and its ledger.

It covers publishing animes and episodes, counting views and selling animes
against user balances.

Ledger rules:

  - Price: An anime costs one of the allowed prices (see [constants.AllowedPrices]).
  - Idempotency: Buying an owned anime succeeds without charging again.
  - Revenue: Each sale adds the price to the anime, to the stats counters and
    to the buyer's library in the same document write.
*/
package anime

import (
	"context"
	"errors"
	"log/slog"
	"slices"

	"github.com/taibuivan/animelar/internal/platform/apperr"
	"github.com/taibuivan/animelar/internal/platform/constants"
	"github.com/taibuivan/animelar/internal/platform/ctxutil"
	"github.com/taibuivan/animelar/internal/platform/metrics"
	"github.com/taibuivan/animelar/internal/store"
	"github.com/taibuivan/animelar/pkg/idgen"
	"github.com/taibuivan/animelar/pkg/slice"
)

// Purchase outcomes recorded in metrics.
const (
	outcomePurchased           = "purchased"
	outcomeAlreadyPurchased    = "already_purchased"
	outcomeInsufficientBalance = "insufficient_balance"
)

// Service implements the catalog use cases.
type Service struct {
	gateway *store.Gateway
	ids     *idgen.Generator
	metrics *metrics.Metrics
}

// NewService constructs a new [Service]. The metrics argument may be nil.
func NewService(gateway *store.Gateway, ids *idgen.Generator, recorder *metrics.Metrics) *Service {
	return &Service{gateway: gateway, ids: ids, metrics: recorder}
}

// # Catalog

// CreateInput holds the data required to publish an anime.
type CreateInput struct {
	Title     string
	Genre     string
	Desc      string
	Price     int64
	PosterURL string
	AddedBy   string
}

/*
Create publishes an anime on behalf of an admin.

The creator's current dubbing name is copied onto the anime.

Returns:
  - *store.Anime: The created anime
  - err: not_admin (403), invalid_price (400) or storage errors
*/
func (service *Service) Create(ctx context.Context, input CreateInput) (*store.Anime, error) {
	var created store.Anime
	err := service.gateway.Update(ctx, func(doc *store.Document) error {
		if !doc.IsAdmin(input.AddedBy) {
			return apperr.Forbidden(apperr.CodeNotAdmin)
		}
		if !slices.Contains(constants.AllowedPrices(), input.Price) {
			return apperr.BadRequest(apperr.CodeInvalidPrice).With("allowed", constants.AllowedPrices())
		}

		dubbingName := constants.UnknownDubbingName
		if creator := doc.FindAdmin(input.AddedBy); creator != nil {
			dubbingName = creator.DubbingName
		}

		created = store.Anime{
			ID:          service.ids.Next(),
			Title:       input.Title,
			Genre:       input.Genre,
			Desc:        input.Desc,
			Price:       input.Price,
			PosterURL:   input.PosterURL,
			Episodes:    []store.Episode{},
			AddedBy:     input.AddedBy,
			DubbingName: dubbingName,
			CreatedAt:   service.gateway.Now(),
		}
		doc.Animes = append(doc.Animes, created)
		return nil
	})
	if err != nil {
		return nil, err
	}

	ctxutil.GetLogger(ctx).InfoContext(ctx, "anime_created",
		slog.String("anime_id", created.ID),
		slog.String("added_by", created.AddedBy),
		slog.Int64("price", created.Price),
	)
	return &created, nil
}

// List returns the whole catalog in insertion order.
func (service *Service) List(ctx context.Context) ([]store.Anime, error) {
	var animes []store.Anime
	err := service.gateway.Read(ctx, func(doc *store.Document) error {
		animes = doc.Animes
		return nil
	})
	return animes, err
}

// Get returns one anime, or anime_not_found.
func (service *Service) Get(ctx context.Context, animeID string) (*store.Anime, error) {
	var found *store.Anime
	err := service.gateway.Read(ctx, func(doc *store.Document) error {
		found = doc.FindAnime(animeID)
		if found == nil {
			return apperr.NotFound(apperr.CodeAnimeNotFound)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// # Episodes

// EpisodeInput holds the data required to append an episode.
type EpisodeInput struct {
	Title    string
	VideoURL string
	AddedBy  string
}

/*
AddEpisode appends an episode numbered after the highest existing one.

Only the anime's creator or a super admin may add episodes.

Returns:
  - *store.Episode: The created episode
  - int: The anime's episode count after the append
  - err: anime_not_found (404), not_authorized (403) or storage errors
*/
func (service *Service) AddEpisode(ctx context.Context, animeID string, input EpisodeInput) (*store.Episode, int, error) {
	var (
		created store.Episode
		total   int
	)

	err := service.gateway.Update(ctx, func(doc *store.Document) error {
		anime := doc.FindAnime(animeID)
		if anime == nil {
			return apperr.NotFound(apperr.CodeAnimeNotFound)
		}
		if input.AddedBy != anime.AddedBy && !doc.IsSuperAdmin(input.AddedBy) {
			return apperr.Forbidden(apperr.CodeNotAuthorized)
		}

		lastNumber := slice.Reduce(anime.Episodes, 0, func(highest int, episode store.Episode) int {
			return max(highest, episode.EpisodeNumber)
		})

		created = store.Episode{
			ID:            service.ids.Next(),
			EpisodeNumber: lastNumber + 1,
			Title:         input.Title,
			VideoURL:      input.VideoURL,
			AddedAt:       service.gateway.Now(),
		}
		anime.Episodes = append(anime.Episodes, created)
		total = len(anime.Episodes)
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	ctxutil.GetLogger(ctx).InfoContext(ctx, "episode_added",
		slog.String("anime_id", animeID),
		slog.Int("episode_number", created.EpisodeNumber),
	)
	return &created, total, nil
}

// # Engagement

// View counts one view on the anime and on the global stats.
func (service *Service) View(ctx context.Context, animeID string) (int64, error) {
	var views int64
	err := service.gateway.Update(ctx, func(doc *store.Document) error {
		anime := doc.FindAnime(animeID)
		if anime == nil {
			return apperr.NotFound(apperr.CodeAnimeNotFound)
		}

		anime.Views++
		doc.Stats.Views++
		views = anime.Views
		return nil
	})
	return views, err
}

// # Purchases

// PurchaseResult is the outcome of [Service.Purchase].
type PurchaseResult struct {
	// AlreadyPurchased is true when the user owned the anime before the call.
	AlreadyPurchased bool
	// Balance is the user's balance after the call.
	Balance    int64
	AnimeTitle string
}

/*
Purchase sells an anime to a user.

A repeat purchase returns AlreadyPurchased without touching any balance or
counter.

Returns:
  - *PurchaseResult: The outcome
  - err: anime_not_found, user_not_found (404), insufficient_balance (402) or storage errors
*/
func (service *Service) Purchase(ctx context.Context, animeID, userID string) (*PurchaseResult, error) {
	result := &PurchaseResult{}
	var price int64

	err := service.gateway.Update(ctx, func(doc *store.Document) error {
		anime := doc.FindAnime(animeID)
		if anime == nil {
			return apperr.NotFound(apperr.CodeAnimeNotFound)
		}
		buyer := doc.FindUser(userID)
		if buyer == nil {
			return apperr.NotFound(apperr.CodeUserNotFound)
		}

		result.AnimeTitle = anime.Title
		result.Balance = buyer.Balance

		if buyer.HasPurchased(animeID) {
			result.AlreadyPurchased = true
			return errUnchanged
		}

		if buyer.Balance < anime.Price {
			return apperr.PaymentRequired(apperr.CodeInsufficientBalance).
				With("required", anime.Price).
				With("current", buyer.Balance)
		}

		price = anime.Price
		buyer.Balance -= price
		buyer.PurchasedAnimes = append(buyer.PurchasedAnimes, animeID)
		anime.Purchases++
		anime.Revenue += price
		doc.Stats.Purchases++
		doc.Stats.TotalRevenue += price

		result.Balance = buyer.Balance
		return nil
	})

	switch {
	case errors.Is(err, errUnchanged):
		service.metrics.RecordPurchase(outcomeAlreadyPurchased, 0)
		return result, nil
	case apperr.HasCode(err, apperr.CodeInsufficientBalance):
		service.metrics.RecordPurchase(outcomeInsufficientBalance, 0)
		return nil, err
	case err != nil:
		return nil, err
	}

	service.metrics.RecordPurchase(outcomePurchased, price)
	ctxutil.GetLogger(ctx).InfoContext(ctx, "anime_purchased",
		slog.String("anime_id", animeID),
		slog.String("user_id", userID),
		slog.Int64("price", price),
		slog.Int64("balance", result.Balance),
	)
	return result, nil
}
