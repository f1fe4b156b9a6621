// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package validate provides a chainable Validator that collects missing fields
// before returning a single [apperr.AppError].
//
// # Architecture
//
// Handlers run presence checks first, before any authorization or business
// rule, so a request with absent fields always fails with "missing_fields"
// regardless of who sent it.
package validate

import (
	"strings"

	"github.com/taibuivan/animelar/internal/platform/apperr"
)

var (
	// ErrInvalidJSON is returned when the request body cannot be decoded.
	ErrInvalidJSON = apperr.BadRequest(apperr.CodeInvalidJSON)
)

// Validator collects missing request fields via a fluent, chainable API.
//
// # Concurrency
//
// Validator is not safe for concurrent use. A new instance must be created
// for every request/operation.
type Validator struct {
	missing []string
}

// Required fails if the trimmed value is empty.
func (v *Validator) Required(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.add(field)
	}
	return v
}

// Present fails if a non-string field was absent from the payload.
//
// # Example
//
//	v.Present("price", input.Price != nil)
func (v *Validator) Present(field string, present bool) *Validator {
	if !present {
		v.add(field)
	}
	return v
}

// Err returns a missing_fields [apperr.AppError] listing every absent field,
// or nil if all rules passed.
//
// Call it once, at the end of the chain.
func (v *Validator) Err() error {
	if len(v.missing) == 0 {
		return nil
	}
	return apperr.MissingFields(v.missing...)
}

// HasErrors reports whether any validation rule has failed so far.
func (v *Validator) HasErrors() bool {
	return len(v.missing) > 0
}

// Missing returns the absent fields in the order they were checked.
func (v *Validator) Missing() []string {
	return v.missing
}

// add records a field once.
func (v *Validator) add(field string) {
	for _, existing := range v.missing {
		if existing == field {
			return
		}
	}
	v.missing = append(v.missing, field)
}
