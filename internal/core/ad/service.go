// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package ad implements paid advertisements.

Placing an ad costs a flat fee debited from the payer's balance and credited to
the platform's running revenue. Listing returns only active ads.
*/
package ad

import (
	"context"
	"log/slog"

	"github.com/taibuivan/animelar/internal/platform/apperr"
	"github.com/taibuivan/animelar/internal/platform/constants"
	"github.com/taibuivan/animelar/internal/platform/ctxutil"
	"github.com/taibuivan/animelar/internal/platform/metrics"
	"github.com/taibuivan/animelar/internal/store"
	"github.com/taibuivan/animelar/pkg/idgen"
)

// Service implements the advertisement use cases.
type Service struct {
	gateway *store.Gateway
	ids     *idgen.Generator
	metrics *metrics.Metrics
}

// NewService constructs a new [Service]. The metrics argument may be nil.
func NewService(gateway *store.Gateway, ids *idgen.Generator, recorder *metrics.Metrics) *Service {
	return &Service{gateway: gateway, ids: ids, metrics: recorder}
}

// CreateInput holds the data required to place an ad.
type CreateInput struct {
	Title    string
	ImageURL string
	// UserID is the payer and owner of the ad.
	UserID string
}

// Placement is the outcome of a successful [Service.Create].
type Placement struct {
	Ad         *store.Ad
	NewBalance int64
}

/*
Create charges the ad fee and appends the ad.

Returns:
  - *Placement: The ad and the payer's balance after the charge
  - err: user_not_found (404), insufficient_balance (402) or storage errors
*/
func (service *Service) Create(ctx context.Context, input CreateInput) (*Placement, error) {
	var (
		created store.Ad
		balance int64
	)

	err := service.gateway.Update(ctx, func(doc *store.Document) error {
		payer := doc.FindUser(input.UserID)
		if payer == nil {
			return apperr.NotFound(apperr.CodeUserNotFound)
		}
		if payer.Balance < constants.AdFee {
			return apperr.PaymentRequired(apperr.CodeInsufficientBalance).
				With("required", constants.AdFee).
				With("current", payer.Balance)
		}

		payer.Balance -= constants.AdFee
		balance = payer.Balance

		created = store.Ad{
			ID:        service.ids.Next(),
			Title:     input.Title,
			ImageURL:  input.ImageURL,
			UserID:    input.UserID,
			CreatedAt: service.gateway.Now(),
			Active:    true,
		}
		doc.Ads = append(doc.Ads, created)
		doc.Stats.TotalRevenue += constants.AdFee
		return nil
	})
	if err != nil {
		return nil, err
	}

	service.metrics.RecordAd(constants.AdFee)
	ctxutil.GetLogger(ctx).InfoContext(ctx, "ad_created",
		slog.String("ad_id", created.ID),
		slog.String("user_id", created.UserID),
		slog.Int64("balance", balance),
	)

	return &Placement{Ad: &created, NewBalance: balance}, nil
}

// ListActive returns the active ads in creation order.
func (service *Service) ListActive(ctx context.Context) ([]store.Ad, error) {
	var ads []store.Ad
	err := service.gateway.Read(ctx, func(doc *store.Document) error {
		ads = doc.ActiveAds()
		return nil
	})
	return ads, err
}

// View counts one impression and returns the ad's new view total.
func (service *Service) View(ctx context.Context, adID string) (int64, error) {
	var views int64
	err := service.gateway.Update(ctx, func(doc *store.Document) error {
		ad := doc.FindAd(adID)
		if ad == nil {
			return apperr.NotFound(apperr.CodeAdNotFound)
		}

		ad.Views++
		views = ad.Views
		return nil
	})
	return views, err
}
