// Copyright (c) 2026 Librarium. All rights reserved.
// Author: thirawat.bk@gmail.com

// Package namekey builds canonical comparison keys for reference-entity
// display names.
//
// # Usage
//
// Two display names denote the same entity when their keys are equal
// ("  Haruki Murakami " and "haruki murakami" collapse to the same key).
// The key is for matching only and is never persisted or shown to users.
package namekey

import (
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// From converts a display name into its canonical match key.
//
// # Transformation Pipeline
//
// 1. Normalizes to NFD (decomposes accented chars: é → e + combining acute).
// 2. Removes combining marks (accents).
// 3. Lowercases.
// 4. Trims surrounding whitespace and collapses internal runs to one space.
func From(s string) string {
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn))
	result, _, _ := transform.String(t, s)

	result = strings.ToLower(result)

	return strings.Join(strings.Fields(result), " ")
}

// Equal reports whether two display names collapse to the same match key.
func Equal(a, b string) bool {
	return From(a) == From(b)
}

// isMn reports whether r is a Unicode non-spacing mark (e.g., accents).
func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
