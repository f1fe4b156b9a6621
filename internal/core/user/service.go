// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package user implements customer accounts and their balances.

It covers registration, credential checks, balance top-ups and the balance
lookup. Purchases and ad payments debit the same balance but live with the
anime and ad packages.

Architecture:

  - Service: Business rules over the shared document ([store.Gateway]).
  - Handler: JSON transport, presence validation and status codes.
  - Security: Passwords are stored as hashes produced by [sec.Hasher].
*/
package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/taibuivan/animelar/internal/platform/apperr"
	"github.com/taibuivan/animelar/internal/platform/ctxutil"
	"github.com/taibuivan/animelar/internal/platform/metrics"
	"github.com/taibuivan/animelar/internal/platform/sec"
	"github.com/taibuivan/animelar/internal/store"
	"github.com/taibuivan/animelar/pkg/idgen"
)

// Service implements the account use cases.
type Service struct {
	gateway *store.Gateway
	hasher  sec.Hasher
	ids     *idgen.Generator
	metrics *metrics.Metrics
}

// NewService constructs a new [Service]. The metrics argument may be nil.
func NewService(gateway *store.Gateway, hasher sec.Hasher, ids *idgen.Generator, recorder *metrics.Metrics) *Service {
	return &Service{
		gateway: gateway,
		hasher:  hasher,
		ids:     ids,
		metrics: recorder,
	}
}

// # Registration

// RegisterInput holds the data required to open an account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

/*
Register hashes the password and appends a new user with a zero balance.

A taken email is reported before the password is hashed. The check repeats
under the write lock for registrations racing on the same email.

Returns:
  - *View: The created account, password redacted
  - err: user_exists, password_too_long or storage errors
*/
func (service *Service) Register(ctx context.Context, input RegisterInput) (*View, error) {
	var taken bool
	err := service.gateway.Read(ctx, func(doc *store.Document) error {
		taken = doc.FindUserByEmail(input.Email) != nil
		return nil
	})
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperr.BadRequest(apperr.CodeUserExists)
	}

	// Hash outside the write lock
	passwordHash, err := service.hasher.Hash(input.Password)
	if err != nil {
		if errors.Is(err, sec.ErrPasswordTooLong) {
			return nil, apperr.BadRequest(apperr.CodePasswordTooLong)
		}
		return nil, fmt.Errorf("user: failed to hash password: %w", err)
	}

	var created store.User
	err = service.gateway.Update(ctx, func(doc *store.Document) error {
		if doc.FindUserByEmail(input.Email) != nil {
			return apperr.BadRequest(apperr.CodeUserExists)
		}

		created = store.User{
			ID:              service.ids.Next(),
			Name:            input.Name,
			Email:           input.Email,
			PasswordHash:    passwordHash,
			Balance:         0,
			PurchasedAnimes: []string{},
			CreatedAt:       service.gateway.Now(),
		}
		doc.Users = append(doc.Users, created)
		doc.Stats.Users++
		return nil
	})
	if err != nil {
		return nil, err
	}

	service.metrics.RecordRegistration()
	ctxutil.GetLogger(ctx).InfoContext(ctx, "user_registered", slog.String("user_id", created.ID))

	return NewView(&created), nil
}

// # Authentication

// LoginInput holds the credentials of a login attempt.
type LoginInput struct {
	Email    string
	Password string
}

/*
Login verifies the credentials and returns the account.

There is no session: clients send ids with every later request.

Returns:
  - *View: The account, including purchased animes
  - err: user_not_found (404) or invalid_credentials (401)
*/
func (service *Service) Login(ctx context.Context, input LoginInput) (*View, error) {
	var found *store.User
	err := service.gateway.Read(ctx, func(doc *store.Document) error {
		found = doc.FindUserByEmail(input.Email)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if found == nil {
		return nil, apperr.NotFound(apperr.CodeUserNotFound)
	}
	if !service.hasher.Compare(input.Password, found.PasswordHash) {
		return nil, apperr.Unauthorized(apperr.CodeInvalidCredentials)
	}

	return NewView(found), nil
}

// # Balance

/*
Topup credits a positive amount to the user's balance.

A credit that would overflow the balance is rejected as invalid_amount.

Returns:
  - int64: The balance after the credit
  - err: invalid_amount, user_not_found or storage errors
*/
func (service *Service) Topup(ctx context.Context, userID string, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, apperr.BadRequest(apperr.CodeInvalidAmount)
	}

	var balance int64
	err := service.gateway.Update(ctx, func(doc *store.Document) error {
		user := doc.FindUser(userID)
		if user == nil {
			return apperr.NotFound(apperr.CodeUserNotFound)
		}

		if amount > math.MaxInt64-user.Balance {
			return apperr.BadRequest(apperr.CodeInvalidAmount)
		}

		user.Balance += amount
		balance = user.Balance
		return nil
	})
	if err != nil {
		return 0, err
	}

	ctxutil.GetLogger(ctx).InfoContext(ctx, "balance_topped_up",
		slog.String("user_id", userID),
		slog.Int64("amount", amount),
		slog.Int64("balance", balance),
	)
	return balance, nil
}

// Balance returns the user's balance and purchased animes.
func (service *Service) Balance(ctx context.Context, userID string) (*Wallet, error) {
	var wallet *Wallet
	err := service.gateway.Read(ctx, func(doc *store.Document) error {
		user := doc.FindUser(userID)
		if user == nil {
			return apperr.NotFound(apperr.CodeUserNotFound)
		}

		view := NewView(user)
		wallet = &Wallet{Balance: view.Balance, PurchasedAnimes: view.PurchasedAnimes}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return wallet, nil
}
