// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package banner

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/animelar/internal/platform/request"
	"github.com/taibuivan/animelar/internal/platform/respond"
	"github.com/taibuivan/animelar/internal/platform/validate"
)

// Handler implements the banner endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts POST /banner and GET /banners.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/banner", handler.create)
	router.Get("/banners", handler.list)
}

type createRequest struct {
	Text     string `json:"text"`
	ImageURL string `json:"imageUrl"`
	AddedBy  string `json:"addedBy"`
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input createRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.Required("text", input.Text).Required("imageUrl", input.ImageURL)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.Create(request.Context(), CreateInput(input))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, respond.Payload{"banner": created})
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	banners, err := handler.service.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, respond.Payload{"banners": banners})
}
