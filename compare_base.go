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

import "bytes"

// cmpPackScalar compares two packed comparator windows byte by byte from
// index 0 (the most significant symbol) onward. It's the scalar reference
// implementation; cmpPack (compare_avx2.go, build-tag gated) may replace it
// with a hardware-accelerated kernel that must agree with it exactly.
func cmpPackScalar(a, b packedWindow) int {
	return bytes.Compare(a[:], b[:])
}

// SimdCmpPacked compares suffixes starting at ai and bi by chaining ctx
// packedWindowLen-symbol windows, advancing by packedWindowLen symbols each
// time a window ties. Suffixes that tie across all ctx windows fall back to
// ascending start position, which is what makes the sort stable regardless
// of which introsort variant performed the tie-breaking comparisons.
func SimdCmpPacked(rp *RevPacked, ctx, ai, bi int) int {
	for w := 0; w < ctx; w++ {
		off := w * packedWindowLen
		a := rp.Load124(ai + off)
		b := rp.Load124(bi + off)
		if c := cmpPack(a, b); c != 0 {
			return c
		}
	}
	switch {
	case ai < bi:
		return -1
	case ai > bi:
		return 1
	default:
		return 0
	}
}

// SimdCmpBytes compares suffixes starting at ai and bi over ctx windows of
// byteWindowLen raw bytes each, encoding each byte through the same 4-symbol
// table used everywhere else (so e.g. a stray 'N' in the input compares as
// an 'A' here exactly as it does in the packed path, rather than by its raw
// ASCII value). There is no position tie-break: ties here mean the two
// suffixes are genuinely indistinguishable within ctx*byteWindowLen bytes.
func SimdCmpBytes(b []byte, ctx, ai, bi int) int {
	for w := 0; w < ctx; w++ {
		off := w * byteWindowLen
		for j := 0; j < byteWindowLen; j++ {
			ca := symbolCode[b[ai+off+j]]
			cb := symbolCode[b[bi+off+j]]
			if ca != cb {
				if ca < cb {
					return -1
				}
				return 1
			}
		}
	}
	return 0
}

// SimdCmp16 compares two seeded positions over ctx windows of seedWindowLen
// uint16 elements each. Used by the New (pre-seeded) construction path,
// where the caller has already reduced the corpus to a uint16 symbol
// stream (e.g. k-mer codes) rather than raw bases.
func SimdCmp16(seeds []uint16, ctx, ai, bi int) int {
	for w := 0; w < ctx; w++ {
		off := w * seedWindowLen
		for j := 0; j < seedWindowLen; j++ {
			sa := seeds[ai+off+j]
			sb := seeds[bi+off+j]
			if sa != sb {
				if sa < sb {
					return -1
				}
				return 1
			}
		}
	}
	return 0
}

// cachedKey holds the ctx comparator windows for one suffix, computed once
// up front for small-ctx buckets so the O(bucket log bucket) sort
// comparisons don't each re-walk the packed buffer. The source position is
// always carried as part of the key, so the cached-key sort and
// SimdCmpPacked agree on tie-break order by construction.
type cachedKey struct {
	windows [4]packedWindow
	ctx     int
	pos     int
}

func buildKey(rp *RevPacked, pos, ctx int) cachedKey {
	k := cachedKey{ctx: ctx, pos: pos}
	for w := 0; w < ctx; w++ {
		k.windows[w] = rp.Load124(pos + w*packedWindowLen)
	}
	return k
}

func keyLess(a, b cachedKey) bool {
	for w := 0; w < a.ctx; w++ {
		if c := cmpPack(a.windows[w], b.windows[w]); c != 0 {
			return c < 0
		}
	}
	return a.pos < b.pos
}
