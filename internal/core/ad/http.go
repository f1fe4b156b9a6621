// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package ad

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/animelar/internal/platform/request"
	"github.com/taibuivan/animelar/internal/platform/respond"
	"github.com/taibuivan/animelar/internal/platform/validate"
)

// Handler implements the advertisement endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the advertisement endpoints.
//
// # Endpoints
//   - POST /ad           : Places a paid ad.
//   - GET  /ads          : Lists active ads.
//   - POST /ad/{id}/view : Counts an impression.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/ad", handler.create)
	router.Get("/ads", handler.list)
	router.Post("/ad/{id}/view", handler.view)
}

type createRequest struct {
	Title    string `json:"title"`
	ImageURL string `json:"imageUrl"`
	UserID   string `json:"userId"`
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input createRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.
		Required("title", input.Title).
		Required("imageUrl", input.ImageURL).
		Required("userId", input.UserID)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	placement, err := handler.service.Create(request.Context(), CreateInput(input))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, respond.Payload{
		"ad":         placement.Ad,
		"newBalance": placement.NewBalance,
	})
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	ads, err := handler.service.ListActive(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, respond.Payload{"ads": ads})
}

func (handler *Handler) view(writer http.ResponseWriter, request *http.Request) {
	views, err := handler.service.View(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, respond.Payload{"views": views})
}
