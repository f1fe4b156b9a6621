// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package stats

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/animelar/internal/platform/request"
	"github.com/taibuivan/animelar/internal/platform/respond"
)

// Handler implements the statistics endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts GET /stats and GET /admin/{id}/stats.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/stats", handler.overview)
	router.Get("/admin/{id}/stats", handler.forAdmin)
}

func (handler *Handler) overview(writer http.ResponseWriter, request *http.Request) {
	overview, err := handler.service.Overview(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, respond.Payload{
		"stats":      overview.Stats,
		"adminStats": overview.AdminStats,
		"topAnimes":  overview.TopAnimes,
	})
}

func (handler *Handler) forAdmin(writer http.ResponseWriter, request *http.Request) {
	report, err := handler.service.ForAdmin(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, respond.Payload{
		"admin":  report.Admin,
		"stats":  report.Stats,
		"animes": report.Animes,
	})
}
