// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sec provides credential hashing and the admin role hierarchy.
//
// # Architecture
//
// This package isolates security-sensitive code from the domain logic. Services
// depend on the [Hasher] interface, never on bcrypt directly.
package sec

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hasher turns plain-text passwords into storable hashes and verifies them.
type Hasher interface {
	// Hash returns the storable representation of the password.
	Hash(plainTextPassword string) (string, error)

	// Compare reports whether the password matches the stored hash.
	Compare(plainTextPassword, existingHash string) bool
}

// BcryptHasher implements [Hasher] with the bcrypt algorithm.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher builds a hasher; out-of-range costs fall back to bcrypt.DefaultCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// ErrPasswordTooLong mirrors bcrypt's 72-byte input limit.
var ErrPasswordTooLong = errors.New("sec: password exceeds 72 bytes")

// Hash hashes a plain-text password using the bcrypt algorithm.
func (h *BcryptHasher) Hash(plainTextPassword string) (string, error) {
	if len(plainTextPassword) > 72 {
		return "", ErrPasswordTooLong
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(plainTextPassword), h.cost)
	if err != nil {
		return "", fmt.Errorf("sec: failed to hash password: %w", err)
	}
	return string(hashedBytes), nil
}

// Compare compares a plain-text password with its hashed version in constant time.
func (h *BcryptHasher) Compare(plainTextPassword, existingHash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(existingHash), []byte(plainTextPassword))
	return err == nil
}
