// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package banner manages the promotional banners shown on the storefront.
package banner

import (
	"context"
	"log/slog"

	"github.com/taibuivan/animelar/internal/platform/apperr"
	"github.com/taibuivan/animelar/internal/platform/ctxutil"
	"github.com/taibuivan/animelar/internal/store"
	"github.com/taibuivan/animelar/pkg/idgen"
)

// Service implements the banner use cases.
type Service struct {
	gateway *store.Gateway
	ids     *idgen.Generator
}

// NewService constructs a new [Service].
func NewService(gateway *store.Gateway, ids *idgen.Generator) *Service {
	return &Service{gateway: gateway, ids: ids}
}

// CreateInput holds a new banner and the caller creating it.
type CreateInput struct {
	Text     string
	ImageURL string
	AddedBy  string
}

// Create appends a banner. Only a super admin may call it.
func (service *Service) Create(ctx context.Context, input CreateInput) (*store.Banner, error) {
	var created store.Banner
	err := service.gateway.Update(ctx, func(doc *store.Document) error {
		if !doc.IsSuperAdmin(input.AddedBy) {
			return apperr.Forbidden(apperr.CodeOnlySuperAdminCanAddBanners)
		}

		created = store.Banner{
			ID:        service.ids.Next(),
			Text:      input.Text,
			ImageURL:  input.ImageURL,
			AddedBy:   input.AddedBy,
			CreatedAt: service.gateway.Now(),
		}
		doc.Banners = append(doc.Banners, created)
		return nil
	})
	if err != nil {
		return nil, err
	}

	ctxutil.GetLogger(ctx).InfoContext(ctx, "banner_created", slog.String("banner_id", created.ID))
	return &created, nil
}

// List returns every banner in creation order.
func (service *Service) List(ctx context.Context) ([]store.Banner, error) {
	var banners []store.Banner
	err := service.gateway.Read(ctx, func(doc *store.Document) error {
		banners = doc.Banners
		return nil
	})
	return banners, err
}
