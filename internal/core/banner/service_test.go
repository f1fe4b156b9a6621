// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package banner_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/animelar/internal/core/banner"
	"github.com/taibuivan/animelar/internal/platform/apperr"
	"github.com/taibuivan/animelar/internal/store"
	"github.com/taibuivan/animelar/pkg/idgen"
)

func TestCreate_SuperAdminOnly(t *testing.T) {
	ctx := context.Background()
	service := banner.NewService(store.NewGateway(store.NewMemoryRepository(), "root", nil), idgen.New())

	_, err := service.Create(ctx, banner.CreateInput{Text: "Spring sale", ImageURL: "https://cdn/x.png", AddedBy: "dub-1"})
	assert.True(t, apperr.HasCode(err, apperr.CodeOnlySuperAdminCanAddBanners))

	created, err := service.Create(ctx, banner.CreateInput{Text: "Spring sale", ImageURL: "https://cdn/x.png", AddedBy: "root"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	banners, err := service.List(ctx)
	require.NoError(t, err)
	require.Len(t, banners, 1)
	assert.Equal(t, "Spring sale", banners[0].Text)
}

func TestList_CreationOrder(t *testing.T) {
	ctx := context.Background()
	service := banner.NewService(store.NewGateway(store.NewMemoryRepository(), "root", nil), idgen.New())

	for _, text := range []string{"Spring sale", "Summer sale", "Autumn sale"} {
		_, err := service.Create(ctx, banner.CreateInput{Text: text, ImageURL: "https://cdn/x.png", AddedBy: "root"})
		require.NoError(t, err)
	}

	banners, err := service.List(ctx)
	require.NoError(t, err)
	require.Len(t, banners, 3)
	assert.Equal(t, "Spring sale", banners[0].Text)
	assert.Equal(t, "Autumn sale", banners[2].Text)
}
