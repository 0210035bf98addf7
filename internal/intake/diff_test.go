package intake_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thirawat/librarium/internal/intake"
)

/*
TestDiff checks the add/remove sets for representative current/desired pairs.
*/
func TestDiff(t *testing.T) {
	tests := []struct {
		name       string
		current    []int
		desired    []int
		wantAdd    []int
		wantRemove []int
	}{
		{"edit_scenario", []int{5, 9}, []int{9, 12}, []int{12}, []int{5}},
		{"no_change", []int{1, 2}, []int{2, 1}, []int{}, []int{}},
		{"all_new", []int{}, []int{3, 4}, []int{3, 4}, []int{}},
		{"all_removed", []int{3, 4}, []int{}, []int{}, []int{3, 4}},
		{"both_empty", []int{}, []int{}, []int{}, []int{}},
		{"disjoint", []int{1}, []int{2}, []int{2}, []int{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := intake.Diff(tt.current, tt.desired)
			assert.ElementsMatch(t, tt.wantAdd, result.ToAdd)
			assert.ElementsMatch(t, tt.wantRemove, result.ToRemove)
		})
	}
}

/*
TestDiff_ApplyYieldsDesired verifies the core invariant: applying the diff
to the current set produces exactly the desired set.
*/
func TestDiff_ApplyYieldsDesired(t *testing.T) {
	cases := []struct {
		current []int
		desired []int
	}{
		{[]int{5, 9}, []int{9, 12}},
		{[]int{1, 2, 3, 4, 5}, []int{2, 4, 6, 8}},
		{[]int{}, []int{7}},
		{[]int{7}, []int{}},
		{[]int{10, 20, 30}, []int{10, 20, 30}},
	}

	for _, tc := range cases {
		result := intake.Diff(tc.current, tc.desired)

		applied := map[int]bool{}
		for _, id := range tc.current {
			applied[id] = true
		}
		for _, id := range result.ToRemove {
			delete(applied, id)
		}
		for _, id := range result.ToAdd {
			applied[id] = true
		}

		got := make([]int, 0, len(applied))
		for id := range applied {
			got = append(got, id)
		}
		sort.Ints(got)

		want := append([]int{}, tc.desired...)
		sort.Ints(want)
		assert.Equal(t, want, got)

		// Idempotence: the same inputs always produce the same diff.
		again := intake.Diff(tc.current, tc.desired)
		assert.Equal(t, result, again)
	}
}
