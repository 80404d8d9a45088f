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

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompactVec_GetSetRoundTrip(t *testing.T) {
	v := NewCompactVec(10, 1_000_000)
	for i := 0; i < 10; i++ {
		v.Set(i, uint64(i*97))
	}
	for i := 0; i < 10; i++ {
		require.Equal(t, uint64(i*97), v.Get(i))
	}
}

func TestCompactVec_WidthGrowsWithMaxValue(t *testing.T) {
	small := NewCompactVec(4, 200)
	large := NewCompactVec(4, 1<<40)
	require.Less(t, small.bytesPerElem, large.bytesPerElem)
}

func TestCompactVec_SliceSharesBackingArray(t *testing.T) {
	v := NewCompactVec(8, 100)
	for i := 0; i < 8; i++ {
		v.Set(i, uint64(i))
	}

	sub := v.Slice(2, 5)
	require.Equal(t, 3, sub.Len())
	sub.Set(0, 99)

	require.Equal(t, uint64(99), v.Get(2))
}

func TestCompactVec_DisjointSliceWritesAreIndependent(t *testing.T) {
	v := NewCompactVec(6, 100)
	left := v.Slice(0, 3)
	right := v.Slice(3, 6)

	done := make(chan struct{})
	go func() {
		for i := 0; i < left.Len(); i++ {
			left.Set(i, uint64(10+i))
		}
		close(done)
	}()
	for i := 0; i < right.Len(); i++ {
		right.Set(i, uint64(20+i))
	}
	<-done

	require.Equal(t, []uint64{10, 11, 12, 20, 21, 22}, v.ToSlice())
}

func TestCompactVec_ToSlice(t *testing.T) {
	v := NewCompactVec(3, 5)
	v.Set(0, 1)
	v.Set(1, 4)
	v.Set(2, 2)
	require.Equal(t, []uint64{1, 4, 2}, v.ToSlice())
}
