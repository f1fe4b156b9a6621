// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package user

import (
	"time"

	"github.com/taibuivan/animelar/internal/store"
)

// View is the client-facing shape of a [store.User]. The password hash is never exposed.
type View struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Balance         int64     `json:"balance"`
	PurchasedAnimes []string  `json:"purchasedAnimes"`
	CreatedAt       time.Time `json:"createdAt"`
}

// NewView redacts a stored user.
func NewView(u *store.User) *View {
	purchased := make([]string, len(u.PurchasedAnimes))
	copy(purchased, u.PurchasedAnimes)

	return &View{
		ID:              u.ID,
		Name:            u.Name,
		Email:           u.Email,
		Balance:         u.Balance,
		PurchasedAnimes: purchased,
		CreatedAt:       u.CreatedAt,
	}
}

// Wallet is the balance summary returned by GET /user/{id}/balance.
type Wallet struct {
	Balance         int64    `json:"balance"`
	PurchasedAnimes []string `json:"purchasedAnimes"`
}
