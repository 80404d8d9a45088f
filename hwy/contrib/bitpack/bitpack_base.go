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

// Package bitpack sizes fixed-width packed integer storage: given the
// largest value that must be representable, how many bits (and bytes) each
// packed element needs.
package bitpack

import "github.com/suffixkit/dnasa/hwy"

// MaxBits returns the minimum number of bits needed to represent the
// largest value in src. Returns 0 for an empty slice.
func MaxBits[T hwy.UnsignedInts](src []T) int {
	if len(src) == 0 {
		return 0
	}
	m := src[0]
	for _, v := range src[1:] {
		if v > m {
			m = v
		}
	}
	return bitsNeeded(m)
}

// bitsNeeded returns the number of bits needed to represent val (0 needs 1 bit).
func bitsNeeded[T hwy.UnsignedInts](val T) int {
	if val == 0 {
		return 1
	}
	bits := 0
	for val > 0 {
		bits++
		val >>= 1
	}
	return bits
}

// PackedSize returns the number of bytes needed to store n values packed at
// bitWidth bits each.
func PackedSize(n, bitWidth int) int {
	return (n*bitWidth + 7) / 8
}

// BytesForMax returns the minimum number of whole bytes needed to store any
// value in [0, maxValue] — the per-element width CompactVec uses.
func BytesForMax(maxValue uint64) int {
	return (bitsNeeded(maxValue) + 7) / 8
}
