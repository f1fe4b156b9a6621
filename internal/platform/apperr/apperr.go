// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package apperr defines the centralized error handling framework for Animelar.

It provides a rich error type that bridges the gap between low-level Domain/Storage
errors and high-level HTTP responses.

Architecture:

  - AppError: A struct containing a machine-readable Code (e.g. "user_exists").
  - Details: Optional extra fields merged into the error body (e.g. "required").
  - Mapping: Each constructor fixes the HTTP status of its error class.

Every error that leaves the service layer should be an [AppError] so that clients
always receive a predictable {"ok": false, "error": "<code>"} body.
*/
package apperr

import (
	"errors"
	"net/http"
)

// AppError is the canonical error type for the Animelar API.
//
// # Security
//
// The Cause field is for server-side logging only and is never sent to clients
// to avoid leaking internal implementation details (e.g., file paths, SQL).
type AppError struct {
	// Code is a machine-readable error identifier (e.g. "anime_not_found").
	Code string
	// HTTPStatus is the HTTP response status code.
	HTTPStatus int
	// Cause is the underlying error, used for server-side logging only.
	Cause error
	// Details holds extra client-safe fields merged into the error body.
	Details map[string]any
}

// Error implements the error interface. It returns the machine-readable code.
func (e *AppError) Error() string { return e.Code }

// Unwrap allows [errors.Is] and [errors.As] to traverse the cause chain.
func (e *AppError) Unwrap() error { return e.Cause }

// With returns a copy of the error carrying an extra detail field.
func (e *AppError) With(key string, value any) *AppError {
	details := make(map[string]any, len(e.Details)+1)
	for k, v := range e.Details {
		details[k] = v
	}
	details[key] = value

	clone := *e
	clone.Details = details
	return &clone
}

// # Client Errors (4xx)

// BadRequest creates a 400 [AppError] for missing input or business-rule violations.
func BadRequest(code string) *AppError {
	return &AppError{Code: code, HTTPStatus: http.StatusBadRequest}
}

// Unauthorized creates a 401 [AppError] for failed credential checks.
func Unauthorized(code string) *AppError {
	return &AppError{Code: code, HTTPStatus: http.StatusUnauthorized}
}

// PaymentRequired creates a 402 [AppError] for insufficient balances.
func PaymentRequired(code string) *AppError {
	return &AppError{Code: code, HTTPStatus: http.StatusPaymentRequired}
}

// Forbidden creates a 403 [AppError] for failed authorization checks.
func Forbidden(code string) *AppError {
	return &AppError{Code: code, HTTPStatus: http.StatusForbidden}
}

// NotFound creates a 404 [AppError].
//
// Example:
//
//	apperr.NotFound("anime_not_found")
func NotFound(code string) *AppError {
	return &AppError{Code: code, HTTPStatus: http.StatusNotFound}
}

// MissingFields creates a 400 [AppError] listing the absent request fields.
func MissingFields(fields ...string) *AppError {
	return BadRequest(CodeMissingFields).With("fields", fields)
}

// # Server Errors (5xx)

// Internal creates a 500 [AppError] wrapping an unexpected server-side error.
// The cause is stored for logging but is never sent to the client.
func Internal(cause error) *AppError {
	return &AppError{
		Code:       CodeInternal,
		HTTPStatus: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// # Helpers

// IsAppError reports whether err (or any error in its chain) is an [*AppError].
func IsAppError(err error) bool {
	var ae *AppError
	return errors.As(err, &ae)
}

// As extracts the [*AppError] from err's chain. It returns nil if not found.
func As(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}

// HasCode reports whether err is an [*AppError] with the given code.
func HasCode(err error, code string) bool {
	ae := As(err)
	return ae != nil && ae.Code == code
}
