// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package respond provides HTTP response helpers used by all API handlers.
//
// # Architecture
//
// This package centralizes the presentation logic for HTTP responses.
// Every body is a flat JSON object carrying an "ok" flag: successes add their
// named resources next to it ({"ok": true, "anime": {...}}), failures add a
// machine-readable code ({"ok": false, "error": "anime_not_found"}).
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/taibuivan/animelar/internal/platform/apperr"
	"github.com/taibuivan/animelar/internal/platform/constants"
	"github.com/taibuivan/animelar/internal/platform/ctxutil"
)

// Payload is the set of named fields written next to "ok" in a success body.
type Payload map[string]any

// JSON writes a JSON response with the given status code.
func JSON(writer http.ResponseWriter, statusCode int, payload interface{}) {
	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(statusCode)
	_ = json.NewEncoder(writer).Encode(payload)
}

// OK writes a 200 OK response with the payload flattened into the success envelope.
func OK(writer http.ResponseWriter, payload Payload) {
	JSON(writer, http.StatusOK, success(payload))
}

// Created writes a 201 Created response with the payload flattened into the success envelope.
func Created(writer http.ResponseWriter, payload Payload) {
	JSON(writer, http.StatusCreated, success(payload))
}

// Error converts any Go error into a standardized JSON API error response.
func Error(writer http.ResponseWriter, request *http.Request, err error) {
	var appError *apperr.AppError
	if !errors.As(err, &appError) {
		// Unexpected internal error: log full details but hide them from the client for security.
		logger := ctxutil.GetLogger(request.Context())
		logger.ErrorContext(request.Context(), "unhandled_error_swallowed",
			slog.String("error", err.Error()),
			slog.String("request_id", ctxutil.GetRequestID(request.Context())),
		)
		appError = apperr.Internal(err)
	}

	// Always log 5xx errors as they indicate server-side issues.
	if appError.HTTPStatus >= 500 {
		logger := ctxutil.GetLogger(request.Context())
		logger.ErrorContext(request.Context(), "api_server_error",
			slog.String("code", appError.Code),
			slog.String("request_id", ctxutil.GetRequestID(request.Context())),
			slog.Any("cause", appError.Cause),
		)
	}

	body := make(map[string]any, len(appError.Details)+2)
	for key, value := range appError.Details {
		body[key] = value
	}
	body[constants.FieldOK] = false
	body[constants.FieldError] = appError.Code

	JSON(writer, appError.HTTPStatus, body)
}

// success copies the payload and marks it ok.
func success(payload Payload) map[string]any {
	body := make(map[string]any, len(payload)+1)
	for key, value := range payload {
		body[key] = value
	}
	body[constants.FieldOK] = true
	return body
}
