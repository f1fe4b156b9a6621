// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/animelar/internal/core/ad"
	"github.com/taibuivan/animelar/internal/core/admin"
	"github.com/taibuivan/animelar/internal/core/anime"
	"github.com/taibuivan/animelar/internal/core/banner"
	"github.com/taibuivan/animelar/internal/core/stats"
	"github.com/taibuivan/animelar/internal/core/user"
	"github.com/taibuivan/animelar/internal/platform/apperr"
	"github.com/taibuivan/animelar/internal/platform/metrics"
	"github.com/taibuivan/animelar/internal/platform/respond"
	"github.com/taibuivan/animelar/internal/platform/sec"
	"github.com/taibuivan/animelar/internal/store"
	"github.com/taibuivan/animelar/pkg/idgen"
)

// # Handler Registry

// routeRegistrar is implemented by every domain handler.
type routeRegistrar interface {
	RegisterRoutes(router chi.Router)
}

// Handlers groups all domain-specific HTTP handler sets.
//
// # Usage
//
// New domains add a field here and to domains(); no other change to server.go is required.
type Handlers struct {
	// Ping answers GET /ping with the server time.
	Ping http.HandlerFunc

	// Liveness is the /health handler; always 200 while the process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler; 200 only when the store is reachable.
	Readiness http.HandlerFunc

	User   *user.Handler
	Admin  *admin.Handler
	Banner *banner.Handler
	Ad     *ad.Handler
	Anime  *anime.Handler
	Stats  *stats.Handler
}

func (h Handlers) domains() []routeRegistrar {
	return []routeRegistrar{h.User, h.Admin, h.Banner, h.Ad, h.Anime, h.Stats}
}

// Dependencies are the shared collaborators every domain service is built from.
type Dependencies struct {
	Gateway *store.Gateway
	Hasher  sec.Hasher
	IDs     *idgen.Generator
	Metrics *metrics.Metrics
	Logger  *slog.Logger
}

// NewHandlers builds every domain service and handler over the shared gateway.
func NewHandlers(deps Dependencies) Handlers {
	liveness, readiness := NewHealthHandlers(HealthDependencies{
		CheckStore: deps.Gateway.Ping,
	}, deps.Logger)

	return Handlers{
		Ping:      ping,
		Liveness:  liveness,
		Readiness: readiness,

		User:   user.NewHandler(user.NewService(deps.Gateway, deps.Hasher, deps.IDs, deps.Metrics)),
		Admin:  admin.NewHandler(admin.NewService(deps.Gateway)),
		Banner: banner.NewHandler(banner.NewService(deps.Gateway, deps.IDs)),
		Ad:     ad.NewHandler(ad.NewService(deps.Gateway, deps.IDs, deps.Metrics)),
		Anime:  anime.NewHandler(anime.NewService(deps.Gateway, deps.IDs, deps.Metrics)),
		Stats:  stats.NewHandler(stats.NewService(deps.Gateway)),
	}
}

// notFound answers unknown routes with the standard error body.
func notFound(writer http.ResponseWriter, request *http.Request) {
	respond.Error(writer, request, apperr.NotFound(apperr.CodeNotFound))
}
