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

// Package sort provides an index-permutation introsort: the comparator is
// supplied by the caller rather than baked into the element type. This is
// the shape suffix-array-style bucket sorting needs, where what's compared
// is a window of bytes reachable from an index, not the index itself.
package sort

// Thresholds for switching strategies, mirroring the numeric VQSort this
// package used to wrap: sorting networks don't pay off once the comparator
// does real work per call, so small arrays go straight to insertion sort.
const sortInsertionThreshold = 24

// Less reports whether the element at index i must sort before the element
// at index j. Implementations must be a strict weak ordering.
type Less func(i, j int) bool

// SortIndices sorts idx in place according to less, which compares the
// underlying elements idx[i] and idx[j] refer to (not i and j themselves).
// It is an introsort: quicksort partitioning with a depth-limited fallback
// to heapsort, and insertion sort below sortInsertionThreshold.
func SortIndices(idx []int, less Less) {
	n := len(idx)
	if n <= 1 {
		return
	}
	depthLimit := 0
	for tmp := n; tmp > 0; tmp >>= 1 {
		depthLimit++
	}
	depthLimit *= 2
	sortIndicesImpl(idx, less, depthLimit)
}

func sortIndicesImpl(idx []int, less Less, depthLimit int) {
	n := len(idx)
	if n <= 1 {
		return
	}
	if n <= sortInsertionThreshold {
		insertionSortIndices(idx, less)
		return
	}
	if depthLimit == 0 {
		heapSortIndices(idx, less)
		return
	}

	lt, gt := partition3WayIndices(idx, less)
	if lt > 0 {
		sortIndicesImpl(idx[:lt], less, depthLimit-1)
	}
	if gt < n {
		sortIndicesImpl(idx[gt:], less, depthLimit-1)
	}
}

func insertionSortIndices(idx []int, less Less) {
	for i := 1; i < len(idx); i++ {
		key := idx[i]
		j := i - 1
		for j >= 0 && less(key, idx[j]) {
			idx[j+1] = idx[j]
			j--
		}
		idx[j+1] = key
	}
}

func heapSortIndices(idx []int, less Less) {
	n := len(idx)
	for i := n/2 - 1; i >= 0; i-- {
		siftDownIndices(idx, less, i, n)
	}
	for i := n - 1; i > 0; i-- {
		idx[0], idx[i] = idx[i], idx[0]
		siftDownIndices(idx, less, 0, i)
	}
}

func siftDownIndices(idx []int, less Less, i, n int) {
	for {
		largest := i
		left := 2*i + 1
		right := 2*i + 2
		if left < n && less(idx[largest], idx[left]) {
			largest = left
		}
		if right < n && less(idx[largest], idx[right]) {
			largest = right
		}
		if largest == i {
			return
		}
		idx[i], idx[largest] = idx[largest], idx[i]
		i = largest
	}
}

// medianOf3Pivot picks a pivot value from the low, mid, and high elements,
// the same sampling VQSort used, cheap and good enough to avoid quadratic
// blowup on sorted or reverse-sorted inputs.
func medianOf3Pivot(idx []int, less Less) int {
	n := len(idx)
	a, b, c := idx[0], idx[n/2], idx[n-1]
	if less(a, b) {
		if less(b, c) {
			return b
		}
		if less(a, c) {
			return c
		}
		return a
	}
	if less(a, c) {
		return a
	}
	if less(b, c) {
		return c
	}
	return b
}

// partition3WayIndices performs Dutch-national-flag partitioning against a
// sampled pivot, returning (lt, gt) such that idx[:lt] sorts strictly before
// the pivot, idx[lt:gt] is tied with it, and idx[gt:] sorts strictly after.
// 3-way partitioning matters here: suffix-array buckets routinely contain
// long runs of ties (repeated k-mers), and a 2-way partition would degrade
// to quadratic time on them.
func partition3WayIndices(idx []int, less Less) (int, int) {
	pivot := medianOf3Pivot(idx, less)
	lt, i, gt := 0, 0, len(idx)
	for i < gt {
		switch {
		case less(idx[i], pivot):
			idx[lt], idx[i] = idx[i], idx[lt]
			lt++
			i++
		case less(pivot, idx[i]):
			gt--
			idx[i], idx[gt] = idx[gt], idx[i]
		default:
			i++
		}
	}
	return lt, gt
}
