// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package constants provides centralized, immutable values for the entire platform.

It defines default timeouts, marketplace fees, and cross-cutting keys that are shared
between different layers of the system.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Marketplace: Ad fee, allowed anime prices, leaderboard size.
  - Bootstrap: The super-admin identity seeded into a fresh document.

Using this package ensures Magic Strings and Magic Numbers are eliminated
from the business logic.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "animelar-api"
	AppVersion = "2.0.0"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second

	// StartupTimeout bounds backend connection attempts during boot.
	StartupTimeout = 30 * time.Second
)

// # Marketplace

const (
	// AdFee is the fixed charge deducted from a user's balance per advertisement.
	AdFee int64 = 500

	// PriceStandard and PricePremium are the only prices an anime may carry.
	PriceStandard int64 = 2900
	PricePremium  int64 = 5900

	// TopAnimesLimit caps the views leaderboard returned by /stats.
	TopAnimesLimit = 10
)

// AllowedPrices lists the accepted anime prices in ascending order.
func AllowedPrices() []int64 {
	return []int64{PriceStandard, PricePremium}
}

// # Bootstrap

const (
	// DefaultSuperAdminID is the identity seeded as super admin in a fresh document.
	DefaultSuperAdminID = "6526385624"

	// SuperAdminDubbingName is the display name of the seeded super admin record.
	SuperAdminDubbingName = "Super Admin"

	// SystemActor is recorded as the creator of seeded records.
	SystemActor = "system"

	// UnknownDubbingName is snapshotted onto an anime whose creator has no admin record.
	UnknownDubbingName = "Unknown"
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
)

// # JSON Field Identifiers

const (
	FieldOK      = "ok"
	FieldError   = "error"
	FieldTime    = "time"
	FieldStatus  = "status"
	FieldChecks  = "checks"
	FieldApp     = "app"
	FieldVersion = "version"
)

// # Storage Keys

const (
	// DocumentsCollection is the Mongo collection holding persisted documents.
	DocumentsCollection = "documents"
)
