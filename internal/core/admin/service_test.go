// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package admin_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/animelar/internal/core/admin"
	"github.com/taibuivan/animelar/internal/platform/apperr"
	"github.com/taibuivan/animelar/internal/platform/sec"
	"github.com/taibuivan/animelar/internal/store"
)

const superAdminID = "6526385624"

/*
TestAdd_ByConfiguredSuperAdmin works without any stored admin record.
*/
func TestAdd_ByConfiguredSuperAdmin(t *testing.T) {
	ctx := context.Background()
	repo := store.NewMemoryRepository()
	require.NoError(t, repo.Save(ctx, &store.Document{}))

	service := admin.NewService(store.NewGateway(repo, superAdminID, nil))

	created, err := service.Add(ctx, admin.AddInput{UserID: "dub-1", DubbingName: "Studio One", AddedBy: superAdminID})
	require.NoError(t, err)
	assert.Equal(t, sec.RoleAdmin, created.Role)
	assert.Equal(t, superAdminID, created.AddedBy)

	admins, err := service.List(ctx)
	require.NoError(t, err)
	assert.Len(t, admins, 1)
}

/*
TestAdd_RequiresSuperAdmin rejects every other caller regardless of target.
*/
func TestAdd_RequiresSuperAdmin(t *testing.T) {
	ctx := context.Background()
	service := admin.NewService(store.NewGateway(store.NewMemoryRepository(), superAdminID, nil))

	_, err := service.Add(ctx, admin.AddInput{UserID: "dub-1", DubbingName: "Studio One", AddedBy: superAdminID})
	require.NoError(t, err)

	for _, caller := range []string{"dub-1", "stranger", ""} {
		_, err := service.Add(ctx, admin.AddInput{UserID: "dub-2", DubbingName: "Two", AddedBy: caller})
		assert.True(t, apperr.HasCode(err, apperr.CodeOnlySuperAdminCanAdd), caller)
	}
}

/*
TestAdd_AlreadyAdmin rejects existing admins and the super admin itself.
*/
func TestAdd_AlreadyAdmin(t *testing.T) {
	ctx := context.Background()
	service := admin.NewService(store.NewGateway(store.NewMemoryRepository(), superAdminID, nil))

	_, err := service.Add(ctx, admin.AddInput{UserID: "dub-1", DubbingName: "One", AddedBy: superAdminID})
	require.NoError(t, err)

	_, err = service.Add(ctx, admin.AddInput{UserID: "dub-1", DubbingName: "Again", AddedBy: superAdminID})
	assert.True(t, apperr.HasCode(err, apperr.CodeAlreadyAdmin))

	_, err = service.Add(ctx, admin.AddInput{UserID: superAdminID, DubbingName: "Self", AddedBy: superAdminID})
	assert.True(t, apperr.HasCode(err, apperr.CodeAlreadyAdmin))
}
