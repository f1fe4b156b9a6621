// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package anime

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/animelar/internal/platform/request"
	"github.com/taibuivan/animelar/internal/platform/respond"
	"github.com/taibuivan/animelar/internal/platform/validate"
	"github.com/taibuivan/animelar/pkg/pointer"
)

// # Definitions & Constructors

// Handler implements the catalog endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the catalog endpoints.
//
// # Endpoints
//   - POST /anime                : Publishes an anime (admins).
//   - GET  /animes               : Lists the catalog.
//   - GET  /anime/{id}           : Returns one anime.
//   - POST /anime/{id}/episode   : Appends an episode (creator or super admin).
//   - POST /anime/{id}/view      : Counts a view.
//   - POST /anime/{id}/purchase  : Sells the anime to a user.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/anime", handler.create)
	router.Get("/animes", handler.list)

	router.Get("/anime/{id}", handler.get)
	router.Post("/anime/{id}/episode", handler.addEpisode)
	router.Post("/anime/{id}/view", handler.view)
	router.Post("/anime/{id}/purchase", handler.purchase)
}

// # Request Payloads

type createRequest struct {
	Title     string `json:"title"`
	Genre     string `json:"genre"`
	Desc      string `json:"desc"`
	Price     *int64 `json:"price"`
	PosterURL string `json:"posterUrl"`
	AddedBy   string `json:"addedBy"`
}

type episodeRequest struct {
	Title    string `json:"title"`
	VideoURL string `json:"videoUrl"`
	AddedBy  string `json:"addedBy"`
}

type purchaseRequest struct {
	UserID string `json:"userId"`
}

/*
POST /anime

Response:
  - 201: {ok, anime}
  - 400: missing_fields, invalid_price (with allowed)
  - 403: not_admin
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input createRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.
		Required("title", input.Title).
		Required("genre", input.Genre).
		Required("desc", input.Desc).
		Present("price", input.Price != nil).
		Required("posterUrl", input.PosterURL).
		Required("addedBy", input.AddedBy)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.Create(request.Context(), CreateInput{
		Title:     input.Title,
		Genre:     input.Genre,
		Desc:      input.Desc,
		Price:     pointer.Val(input.Price),
		PosterURL: input.PosterURL,
		AddedBy:   input.AddedBy,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, respond.Payload{"anime": created})
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	animes, err := handler.service.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, respond.Payload{"animes": animes})
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	found, err := handler.service.Get(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, respond.Payload{"anime": found})
}

/*
POST /anime/{id}/episode

Response:
  - 201: {ok, episode, totalEpisodes}
  - 400: missing_fields
  - 403: not_authorized
  - 404: anime_not_found
*/
func (handler *Handler) addEpisode(writer http.ResponseWriter, request *http.Request) {
	var input episodeRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.Required("title", input.Title).Required("videoUrl", input.VideoURL)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	episode, total, err := handler.service.AddEpisode(request.Context(), requestutil.ID(request, "id"), EpisodeInput(input))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, respond.Payload{
		"episode":       episode,
		"totalEpisodes": total,
	})
}

// view ignores the optional userId in the body; views are anonymous.
func (handler *Handler) view(writer http.ResponseWriter, request *http.Request) {
	views, err := handler.service.View(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, respond.Payload{"views": views})
}

/*
POST /anime/{id}/purchase

Response:
  - 200: {ok, purchased, newBalance, anime} or {ok, alreadyPurchased, balance}
  - 400: missing_fields
  - 402: insufficient_balance (with required and current)
  - 404: anime_not_found, user_not_found
*/
func (handler *Handler) purchase(writer http.ResponseWriter, request *http.Request) {
	var input purchaseRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.Required("userId", input.UserID)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.Purchase(request.Context(), requestutil.ID(request, "id"), input.UserID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if result.AlreadyPurchased {
		respond.OK(writer, respond.Payload{
			"alreadyPurchased": true,
			"balance":          result.Balance,
		})
		return
	}

	respond.OK(writer, respond.Payload{
		"purchased":  true,
		"newBalance": result.Balance,
		"anime":      result.AnimeTitle,
	})
}
