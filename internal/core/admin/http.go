// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package admin

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/animelar/internal/platform/request"
	"github.com/taibuivan/animelar/internal/platform/respond"
	"github.com/taibuivan/animelar/internal/platform/validate"
)

// Handler implements the admin endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts POST /add_admin and GET /admins.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/add_admin", handler.add)
	router.Get("/admins", handler.list)
}

type addRequest struct {
	UserID      string `json:"userId"`
	DubbingName string `json:"dubbingName"`
	AddedBy     string `json:"addedBy"`
}

func (handler *Handler) add(writer http.ResponseWriter, request *http.Request) {
	var input addRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.Required("userId", input.UserID).Required("dubbingName", input.DubbingName)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.Add(request.Context(), AddInput(input))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, respond.Payload{"admin": created})
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	admins, err := handler.service.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, respond.Payload{"admins": admins})
}
