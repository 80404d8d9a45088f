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
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRevPacked_LoadKMatchesSourceSymbols(t *testing.T) {
	rp := NewRevPacked([]byte("ACGTACGT"))

	require.Equal(t, uint32(0b00_01_10_11), rp.LoadK(0, 4)) // A C G T
	require.Equal(t, uint32(0b01_10_11_00), rp.LoadK(1, 4)) // C G T A
	require.Equal(t, uint32(0b11), rp.LoadK(3, 1))          // T
}

func TestRevPacked_LoadKIsCaseInsensitive(t *testing.T) {
	upper := NewRevPacked([]byte("ACGT"))
	lower := NewRevPacked([]byte("acgt"))
	require.Equal(t, upper.LoadK(0, 4), lower.LoadK(0, 4))
}

func TestRevPacked_LoadKFoldsNonACGTToA(t *testing.T) {
	rp := NewRevPacked([]byte("ANGT"))
	plain := NewRevPacked([]byte("AAGT"))
	require.Equal(t, plain.LoadK(0, 4), rp.LoadK(0, 4))
}

func TestRevPacked_Load124OrderingMatchesLexicographicOrder(t *testing.T) {
	// The "ACGT" wraparound scenario from spec.md §9: reverse packing must
	// make byte-wise comparison of two windows agree with forward
	// lexicographic order of the underlying symbols.
	pad := strings.Repeat("A", packedWindowLen)
	rp := NewRevPacked([]byte("ACGTACGT" + pad))

	w0 := rp.Load124(0) // starts "ACGTACGT..."
	w4 := rp.Load124(4) // starts "ACGTAAAA..." (runs into the pad sooner)

	// w4 has an 'A' where w0 has a 'C' five symbols in, so w4 < w0.
	require.Less(t, bytes.Compare(w4[:], w0[:]), 0)
}

func TestRevPacked_Load124AgreesWithSymbolAt(t *testing.T) {
	pad := strings.Repeat("A", packedWindowLen)
	b := []byte("GATTACA" + pad)
	rp := NewRevPacked(b)

	w := rp.Load124(0)
	for s := 0; s < packedWindowLen; s++ {
		byteIdx := s / 4
		shift := uint(6 - 2*(s%4))
		got := (w[byteIdx] >> shift) & 0x3
		require.Equal(t, symbolCode[b[s]], got, "symbol %d", s)
	}
}
