// Copyright (c) 2026 Librarium. All rights reserved.
// Author: thirawat.bk@gmail.com

package namekey_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thirawat/librarium/pkg/namekey"
)

/*
TestFrom checks the canonical key pipeline (case, accents, whitespace).
*/
func TestFrom(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercase_passthrough", "haruki murakami", "haruki murakami"},
		{"mixed_case", "Haruki Murakami", "haruki murakami"},
		{"surrounding_whitespace", "  Haruki Murakami \t", "haruki murakami"},
		{"internal_whitespace_collapsed", "Haruki   Murakami", "haruki murakami"},
		{"accents_stripped", "Gabriel García Márquez", "gabriel garcia marquez"},
		{"empty", "", ""},
		{"whitespace_only", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, namekey.From(tt.input))
		})
	}
}

/*
TestEqual checks key equality between differently written names.
*/
func TestEqual(t *testing.T) {
	assert.True(t, namekey.Equal("TOLKIEN", "tolkien"))
	assert.True(t, namekey.Equal(" J. R. R. Tolkien", "j. r. r. tolkien "))
	assert.False(t, namekey.Equal("Tolkien", "Tolkien Jr."))
}
