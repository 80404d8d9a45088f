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

package dnasa

import "github.com/suffixkit/dnasa/hwy/contrib/bitpack"

// CompactVec stores n unsigned integers at a uniform, runtime-chosen byte
// width — the minimum width that can represent the largest index the
// suffix array ever needs to hold. This is the one piece of exported
// storage the package hands back to callers (SuffixArray.Idxs), so its
// width is fixed once at construction from the corpus length rather than
// templated per call site.
type CompactVec struct {
	data         []byte
	n            int
	bytesPerElem int
}

// NewCompactVec allocates a vector of n elements, each wide enough to hold
// maxValue.
func NewCompactVec(n int, maxValue uint64) *CompactVec {
	width := bitpack.BytesForMax(maxValue)
	if width < 1 {
		width = 1
	}
	return &CompactVec{
		data:         make([]byte, n*width),
		n:            n,
		bytesPerElem: width,
	}
}

// Len returns the number of elements.
func (v *CompactVec) Len() int {
	return v.n
}

// Get returns the element at i.
func (v *CompactVec) Get(i int) uint64 {
	off := i * v.bytesPerElem
	var val uint64
	for b := 0; b < v.bytesPerElem; b++ {
		val |= uint64(v.data[off+b]) << (8 * uint(b))
	}
	return val
}

// Set stores val at i. val must fit in the vector's element width.
func (v *CompactVec) Set(i int, val uint64) {
	off := i * v.bytesPerElem
	for b := 0; b < v.bytesPerElem; b++ {
		v.data[off+b] = byte(val >> (8 * uint(b)))
	}
}

// Slice returns a view over the half-open range [lo, hi) that shares the
// same backing array. Writes through disjoint slices from concurrent
// goroutines are safe; this is how the per-bucket sort phase hands each
// worker its own region of the output without copying.
func (v *CompactVec) Slice(lo, hi int) *CompactVec {
	byteLo := lo * v.bytesPerElem
	byteHi := hi * v.bytesPerElem
	return &CompactVec{
		data:         v.data[byteLo:byteHi:byteHi],
		n:            hi - lo,
		bytesPerElem: v.bytesPerElem,
	}
}

// ToSlice copies the vector out into a plain []uint64, for callers that
// don't need the compact representation.
func (v *CompactVec) ToSlice() []uint64 {
	out := make([]uint64, v.n)
	for i := range out {
		out[i] = v.Get(i)
	}
	return out
}
