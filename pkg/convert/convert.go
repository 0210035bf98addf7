// Copyright (c) 2026 Librarium. All rights reserved.
// Author: thirawat.bk@gmail.com

/*
Package convert provides fault-tolerant string conversions for handler-level
query and path parameter parsing.

Do not use this package where malformed input must be distinguished from a
zero value; use [strconv] directly in that case.
*/
package convert

import "strconv"

// ToInt converts a string to an integer, returning 0 on empty or malformed input.
func ToInt(s string) int {
	if s == "" {
		return 0
	}

	v, _ := strconv.Atoi(s)
	return v
}

// ToIntD converts a string to an int, returning def on empty or malformed input.
func ToIntD(s string, def int) int {
	if s == "" {
		return def
	}

	if v, err := strconv.Atoi(s); err == nil {
		return v
	}

	return def
}
