// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package admin manages the dubbing teams allowed to publish animes.
//
// Only a super admin may add admins. The configured super admin identity is
// honoured even when no admin record exists for it.
package admin

import (
	"context"
	"log/slog"

	"github.com/taibuivan/animelar/internal/platform/apperr"
	"github.com/taibuivan/animelar/internal/platform/ctxutil"
	"github.com/taibuivan/animelar/internal/platform/sec"
	"github.com/taibuivan/animelar/internal/store"
)

// Service implements the admin management use cases.
type Service struct {
	gateway *store.Gateway
}

// NewService constructs a new [Service].
func NewService(gateway *store.Gateway) *Service {
	return &Service{gateway: gateway}
}

// AddInput holds the data required to grant admin rights.
type AddInput struct {
	// UserID is the external identifier of the new admin.
	UserID      string
	DubbingName string
	// AddedBy is the caller; it must be a super admin.
	AddedBy string
}

/*
Add grants the admin role to a new identifier.

Returns:
  - *store.Admin: The created record
  - err: only_super_admin_can_add (403), already_admin (400) or storage errors
*/
func (service *Service) Add(ctx context.Context, input AddInput) (*store.Admin, error) {
	var created store.Admin
	err := service.gateway.Update(ctx, func(doc *store.Document) error {
		if !doc.IsSuperAdmin(input.AddedBy) {
			return apperr.Forbidden(apperr.CodeOnlySuperAdminCanAdd)
		}
		if doc.IsAdmin(input.UserID) {
			return apperr.BadRequest(apperr.CodeAlreadyAdmin)
		}

		created = store.Admin{
			ID:          input.UserID,
			DubbingName: input.DubbingName,
			AddedBy:     input.AddedBy,
			AddedAt:     service.gateway.Now(),
			Role:        sec.RoleAdmin,
		}
		doc.Admins = append(doc.Admins, created)
		return nil
	})
	if err != nil {
		return nil, err
	}

	ctxutil.GetLogger(ctx).InfoContext(ctx, "admin_added",
		slog.String("admin_id", created.ID),
		slog.String("added_by", created.AddedBy),
	)
	return &created, nil
}

// List returns every admin record in insertion order.
func (service *Service) List(ctx context.Context) ([]store.Admin, error) {
	var admins []store.Admin
	err := service.gateway.Read(ctx, func(doc *store.Document) error {
		admins = doc.Admins
		return nil
	})
	return admins, err
}
