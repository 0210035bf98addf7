// Copyright (c) 2026 Librarium. All rights reserved.
// Author: thirawat.bk@gmail.com

// Package ctxkey defines typed context keys used by middleware and handlers.
//
// # Safety
//
// Using a private, unexported key type prevents collisions with third-party
// packages that also store values in the request context: Go's
// [context.Context] lookups match on both value AND type.
package ctxkey

// key is an unexported type used for context keys to ensure type safety.
type key string

const (
	// KeyRequestID is the context key for the X-Request-ID correlation value.
	KeyRequestID key = "request_id"

	// KeyLogger is the context key for the per-request [*log/slog.Logger].
	KeyLogger key = "logger"
)
