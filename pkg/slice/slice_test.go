// Copyright (c) 2026 Librarium. All rights reserved.
// Author: thirawat.bk@gmail.com

package slice_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thirawat/librarium/pkg/slice"
)

func TestMap(t *testing.T) {
	assert.Equal(t, []string{"1", "2"}, slice.Map([]int{1, 2}, strconv.Itoa))
	assert.Nil(t, slice.Map(nil, strconv.Itoa))
}

func TestFilter(t *testing.T) {
	even := func(n int) bool { return n%2 == 0 }
	assert.Equal(t, []int{2, 4}, slice.Filter([]int{1, 2, 3, 4}, even))
	assert.Nil(t, slice.Filter(nil, even))
}

/*
TestUnique checks first-occurrence-order de-duplication.
*/
func TestUnique(t *testing.T) {
	tests := []struct {
		name     string
		input    []int
		expected []int
	}{
		{"no_duplicates", []int{3, 1, 2}, []int{3, 1, 2}},
		{"duplicates_keep_first", []int{5, 9, 5, 12, 9}, []int{5, 9, 12}},
		{"empty", []int{}, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, slice.Unique(tt.input))
		})
	}

	assert.Nil(t, slice.Unique[int](nil))
}
