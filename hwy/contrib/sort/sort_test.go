// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sort

import (
	"math/rand"
	"slices"
	"testing"
)

func identityIdx(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}

func isSortedByValue(idx []int, values []int) bool {
	for i := 1; i < len(idx); i++ {
		if values[idx[i]] < values[idx[i-1]] {
			return false
		}
	}
	return true
}

func TestSortIndicesEmptyAndSingle(t *testing.T) {
	var empty []int
	SortIndices(empty, func(i, j int) bool { return i < j })
	if len(empty) != 0 {
		t.Errorf("SortIndices(empty) should not modify empty slice")
	}

	single := []int{7}
	SortIndices(single, func(i, j int) bool { return i < j })
	if single[0] != 7 {
		t.Errorf("SortIndices([7]) = %v, want [7]", single)
	}
}

func TestSortIndicesOrdersByValue(t *testing.T) {
	sizes := []int{0, 1, 7, 8, 15, 16, 31, 32, 63, 64, 100, 256, 1000}
	rng := rand.New(rand.NewSource(1))
	for _, n := range sizes {
		values := make([]int, n)
		for i := range values {
			values[i] = rng.Intn(1000) - 500
		}
		idx := identityIdx(n)
		SortIndices(idx, func(a, b int) bool { return values[a] < values[b] })
		if !isSortedByValue(idx, values) {
			t.Errorf("SortIndices(n=%d) produced an ordering not sorted by value", n)
		}
		if len(idx) != n {
			t.Fatalf("SortIndices(n=%d) changed length to %d", n, len(idx))
		}
		seen := make([]bool, n)
		for _, v := range idx {
			if v < 0 || v >= n || seen[v] {
				t.Fatalf("SortIndices(n=%d) produced invalid permutation %v", n, idx)
			}
			seen[v] = true
		}
	}
}

func TestSortIndicesStableTieBreakWhenLessEnforcesIt(t *testing.T) {
	// A comparator that tie-breaks by index (ascending) must produce a
	// result sorted primarily by value and secondarily by original index,
	// the same contract the per-bucket suffix sort relies on.
	values := []int{3, 1, 3, 1, 2, 3, 1}
	idx := identityIdx(len(values))
	less := func(a, b int) bool {
		if values[a] != values[b] {
			return values[a] < values[b]
		}
		return a < b
	}
	SortIndices(idx, less)

	for i := 1; i < len(idx); i++ {
		a, b := idx[i-1], idx[i]
		if values[a] > values[b] || (values[a] == values[b] && a > b) {
			t.Fatalf("tie-break violated at position %d: idx=%v", i, idx)
		}
	}
}

func TestSortIndicesAlreadySortedAndReverse(t *testing.T) {
	n := 500
	values := make([]int, n)
	for i := range values {
		values[i] = i
	}

	idx := identityIdx(n)
	SortIndices(idx, func(a, b int) bool { return values[a] < values[b] })
	if !isSortedByValue(idx, values) {
		t.Fatalf("SortIndices(already sorted) failed")
	}

	idx = identityIdx(n)
	SortIndices(idx, func(a, b int) bool { return values[a] > values[b] })
	for i := 1; i < len(idx); i++ {
		if values[idx[i]] > values[idx[i-1]] {
			t.Fatalf("SortIndices(reverse comparator) not in descending order")
		}
	}
}

func TestSortIndicesManyDuplicates(t *testing.T) {
	// Suffix-array buckets routinely contain long runs of tied keys; make
	// sure the 3-way partition degrades to linear work, not quadratic
	// misbehavior, by exercising an all-but-two-equal distribution.
	n := 2000
	values := make([]int, n)
	for i := range values {
		values[i] = 1
	}
	values[n/2] = 0
	values[n-1] = 2

	idx := identityIdx(n)
	SortIndices(idx, func(a, b int) bool { return values[a] < values[b] })
	if !isSortedByValue(idx, values) {
		t.Fatalf("SortIndices(many duplicates) produced unsorted result")
	}
}

func TestSortIndicesMatchesStdlibOrdering(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	n := 3000
	values := make([]int, n)
	for i := range values {
		values[i] = rng.Intn(100)
	}

	idx := identityIdx(n)
	SortIndices(idx, func(a, b int) bool { return values[a] < values[b] })

	want := make([]int, n)
	for i := range values {
		want[i] = values[i]
	}
	slices.Sort(want)

	got := make([]int, n)
	for i, v := range idx {
		got[i] = values[v]
	}
	if !slices.Equal(got, want) {
		t.Fatalf("SortIndices value sequence does not match slices.Sort reference")
	}
}
