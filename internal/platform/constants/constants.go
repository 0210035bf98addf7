// Copyright (c) 2026 Librarium. All rights reserved.
// Author: thirawat.bk@gmail.com

/*
Package constants centralizes immutable values shared across layers.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Rate Limiting: Burst capacities and IP tracking TTLs.
  - Headers: Cross-cutting HTTP header names.
  - Cache Taxonomy: Redis key prefixes and TTLs.

Keeping these here eliminates magic strings and numbers from business logic.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "librarium-api"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out response writes.
	// Upload endpoints stream multipart bodies, so this is generous.
	DefaultWriteTimeout = 30 * time.Second

	// DefaultIdleTimeout is the maximum time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	// A catalog submission can fan out into several creation calls, so this
	// sits above the sum of the per-call store timeouts.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long in-flight requests get to finish on shutdown.
	ShutdownTimeout = 20 * time.Second
)

// # Rate Limiting

const (
	// DefaultRateLimitRPS is the requests per second allowed per IP.
	DefaultRateLimitRPS = 50.0

	// DefaultRateLimitBurst is the maximum burst allowed for the rate limiter.
	DefaultRateLimitBurst = 100

	// RateLimitCleanupInterval is how often idle IP entries are swept.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client may be idle before its entry is dropped.
	RateLimitClientTTL = 3 * time.Minute
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderOrigin        = "Origin"
)

// # JSON Field Identifiers

const (
	FieldData    = "data"
	FieldMeta    = "meta"
	FieldError   = "error"
	FieldCode    = "code"
	FieldDetails = "details"
	FieldStatus  = "status"
)

// # Redis Prefixes (Cache Taxonomy)

const (
	// RedisPrefixReferenceList caches bulk reference-collection responses
	// (authors, publishers, languages, file types) keyed by collection name.
	RedisPrefixReferenceList = "catalog:reflist:"

	// ReferenceListTTL bounds staleness of cached reference collections.
	// Creates invalidate eagerly; the TTL is the backstop.
	ReferenceListTTL = 5 * time.Minute
)
