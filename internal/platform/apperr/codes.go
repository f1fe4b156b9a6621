// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package apperr

// # Error Codes
//
// Codes are part of the public API contract. Clients switch on them, so they
// must never be renamed.

const (
	// Generic
	CodeInternal      = "internal_error"
	CodeInvalidJSON   = "invalid_json"
	CodeMissingFields = "missing_fields"
	CodeNotFound      = "not_found"

	// Users & balance
	CodeUserExists          = "user_exists"
	CodeUserNotFound        = "user_not_found"
	CodeInvalidCredentials  = "invalid_credentials"
	CodeInsufficientBalance = "insufficient_balance"
	CodeInvalidAmount       = "invalid_amount"
	CodePasswordTooLong     = "password_too_long"

	// Admins & banners
	CodeOnlySuperAdminCanAdd        = "only_super_admin_can_add"
	CodeOnlySuperAdminCanAddBanners = "only_super_admin_can_add_banners"
	CodeAlreadyAdmin                = "already_admin"
	CodeAdminNotFound               = "admin_not_found"

	// Catalog
	CodeNotAdmin      = "not_admin"
	CodeNotAuthorized = "not_authorized"
	CodeInvalidPrice  = "invalid_price"
	CodeAnimeNotFound = "anime_not_found"
	CodeAdNotFound    = "ad_not_found"
)
