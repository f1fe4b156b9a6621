// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package user

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/animelar/internal/platform/request"
	"github.com/taibuivan/animelar/internal/platform/apperr"
	"github.com/taibuivan/animelar/internal/platform/respond"
	"github.com/taibuivan/animelar/internal/platform/validate"
)

// # Definitions & Constructors

// Handler implements the account endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the account endpoints on the root router.
//
// # Endpoints
//   - POST /register          : Opens an account.
//   - POST /login             : Checks credentials.
//   - POST /topup             : Credits a balance.
//   - GET  /user/{id}/balance : Returns balance and library.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/register", handler.register)
	router.Post("/login", handler.login)
	router.Post("/topup", handler.topup)
	router.Get("/user/{id}/balance", handler.balance)
}

// # Request Payloads

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Amount is parsed after validation; anything but an int64 literal is invalid_amount.
type topupRequest struct {
	UserID string          `json:"userId"`
	Amount json.RawMessage `json:"amount"`
}

// hasAmount reports whether the amount was sent with a non-null value.
func (r topupRequest) hasAmount() bool {
	return len(r.Amount) > 0 && string(r.Amount) != "null"
}

// amount parses the amount as a JSON integer literal.
func (r topupRequest) amount() (int64, error) {
	value, err := strconv.ParseInt(string(r.Amount), 10, 64)
	if err != nil {
		return 0, apperr.BadRequest(apperr.CodeInvalidAmount)
	}
	return value, nil
}

/*
POST /register

Response:
  - 201: {ok, user}
  - 400: missing_fields, user_exists, password_too_long
*/
func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	var input registerRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.Required("email", input.Email).Required("password", input.Password)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	view, err := handler.service.Register(request.Context(), RegisterInput(input))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, respond.Payload{"user": view})
}

/*
POST /login

Response:
  - 200: {ok, user}
  - 401: invalid_credentials
  - 404: user_not_found
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.Required("email", input.Email).Required("password", input.Password)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	view, err := handler.service.Login(request.Context(), LoginInput(input))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, respond.Payload{"user": view})
}

/*
POST /topup

Response:
  - 200: {ok, newBalance}
  - 400: missing_fields, invalid_amount
  - 404: user_not_found
*/
func (handler *Handler) topup(writer http.ResponseWriter, request *http.Request) {
	var input topupRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.Required("userId", input.UserID).Present("amount", input.hasAmount())
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	amount, err := input.amount()
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	balance, err := handler.service.Topup(request.Context(), input.UserID, amount)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, respond.Payload{"newBalance": balance})
}

/*
GET /user/{id}/balance

Response:
  - 200: {ok, balance, purchasedAnimes}
  - 404: user_not_found
*/
func (handler *Handler) balance(writer http.ResponseWriter, request *http.Request) {
	wallet, err := handler.service.Balance(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, respond.Payload{
		"balance":         wallet.Balance,
		"purchasedAnimes": wallet.PurchasedAnimes,
	})
}
