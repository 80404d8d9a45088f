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

//go:build amd64 && goexperiment.simd

package dnasa

import (
	"math/bits"

	"simd/archsimd"

	"github.com/suffixkit/dnasa/hwy"
)

// cmpPack compares two packed comparator windows using one AVX2 vector
// compare instead of a 31-byte scalar loop. Construction (Load124) stays
// scalar in every build: the comparator is what actually runs O(n log n)
// times during the per-bucket sort, so it's the piece worth a hardware
// kernel, while packing only ever runs once per position.
func cmpPack(a, b packedWindow) int {
	if hwy.CurrentLevel() != hwy.DispatchAVX2 {
		return cmpPackScalar(a, b)
	}

	va := archsimd.LoadUint8x32Slice(a[:])
	vb := archsimd.LoadUint8x32Slice(b[:])
	eq := va.Equal(vb)

	// AVX2 has no direct mask-to-bits move for byte lanes (that needs
	// AVX-512 KMOV); convert to a same-width signed vector and read sign
	// bits instead, the same trick the teacher's mask32x8ToBits/
	// mask64x4ToBits helpers use for their own lane widths.
	var eqBytes [32]int8
	eq.ToInt8x32().StoreSlice(eqBytes[:])

	neq := uint32(0)
	for i, v := range eqBytes {
		if v >= 0 {
			neq |= 1 << uint(i)
		}
	}
	if neq == 0 {
		return 0
	}
	first := bits.TrailingZeros32(neq)
	if a[first] < b[first] {
		return -1
	}
	return 1
}
