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

// Package dnasa builds suffix arrays over DNA sequence data (the 4-letter
// {A,C,G,T} alphabet, case-insensitive) using a bit-packed corpus
// representation, a bucket-partitioned radix+comparison sort, and a
// compact integer output container. See SPEC_FULL.md for the full design.
package dnasa

import (
	"fmt"
	"log/slog"

	sortpkg "github.com/suffixkit/dnasa/hwy/contrib/sort"
	"github.com/suffixkit/dnasa/hwy/contrib/workerpool"
)

// SuffixArray holds the permutation produced by one of the New* constructors,
// along with the radix width and context depth it was built with.
type SuffixArray struct {
	idxs *CompactVec
	k    int
	ctx  int
}

// Idxs returns the constructed permutation. Index i of the returned
// CompactVec holds the start position of the i-th suffix in sorted order.
func (sa *SuffixArray) Idxs() *CompactVec {
	return sa.idxs
}

// K returns the radix width the array was built with (0 for the byte-path
// array, which doesn't bucket).
func (sa *SuffixArray) K() int {
	return sa.k
}

// Ctx returns the number of comparator windows chained by the array's
// construction.
func (sa *SuffixArray) Ctx() int {
	return sa.ctx
}

// NewPacked builds a suffix array over b using the primary bit-packed,
// bucket-radix path: a k-mer prefix partitions suffixes into 4^k buckets,
// which are then sorted independently (in parallel) by a CTX-window
// comparator. b must carry at least packedWindowLen*ctx trailing pad bytes
// past the last valid suffix start.
func NewPacked(b []byte, k, ctx int, cfg Config) (*SuffixArray, error) {
	cfg.K, cfg.CTX = k, ctx
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	padLen := packedWindowLen * ctx
	if len(b) < padLen {
		return nil, newConstructionError("NewPacked", "corpus length %d shorter than required pad %d", len(b), padLen)
	}
	n := len(b) - padLen
	if n <= 0 {
		return nil, newConstructionError("NewPacked", "corpus has no valid suffix starts after padding (len=%d, pad=%d)", len(b), padLen)
	}

	slog.Debug("dnasa: packing corpus", "len", len(b))
	packed := NewRevPacked(b)

	numBuckets := cfg.numBuckets()
	threads := cfg.threads()
	if threads > n {
		threads = n
	}
	if threads < 1 {
		threads = 1
	}

	pool := workerpool.New(threads)
	defer pool.Close()

	// Histogram phase: each chunk owns its own counts row, written only by
	// the worker that scans that chunk.
	threadCounts := make([]*CompactVec, threads)
	for t := range threadCounts {
		threadCounts[t] = NewCompactVec(numBuckets, uint64(n))
	}

	slog.Debug("dnasa: histogram phase", "buckets", numBuckets, "threads", threads)
	pool.ParallelForAtomic(threads, func(t int) {
		counts := threadCounts[t]
		start, end := chunkBounds(n, threads, t)
		for i := start; i < end; i++ {
			kmer := packed.LoadK(i, k)
			counts.Set(int(kmer), counts.Get(int(kmer))+1)
		}
	})

	// Prefix-sum phase: serial, O(threads * 4^k). For each bucket value,
	// walk threads in order, replacing each thread's count with its
	// exclusive starting offset and accumulating the running sum.
	slog.Debug("dnasa: prefix-sum phase")
	sum := 0
	maxBucket := 0
	for v := 0; v < numBuckets; v++ {
		bucketTotal := 0
		for t := 0; t < threads; t++ {
			cur := threadCounts[t].Get(v)
			threadCounts[t].Set(v, uint64(sum))
			sum += int(cur)
			bucketTotal += int(cur)
		}
		if bucketTotal > maxBucket {
			maxBucket = bucketTotal
		}
	}

	// Scatter phase: re-run the chunked scan, writing each position into
	// its bucket slot and advancing that bucket's running offset.
	sorted := NewCompactVec(n, uint64(n))
	slog.Debug("dnasa: scatter phase")
	pool.ParallelForAtomic(threads, func(t int) {
		counts := threadCounts[t]
		start, end := chunkBounds(n, threads, t)
		for i := start; i < end; i++ {
			kmer := packed.LoadK(i, k)
			idx := int(counts.Get(int(kmer)))
			sorted.Set(idx, uint64(i))
			counts.Set(int(kmer), uint64(idx+1))
		}
	})

	// After scatter, the last thread's counts row holds each bucket's
	// exclusive end offset.
	bucketEnds := threadCounts[threads-1]

	slog.Debug("dnasa: per-bucket sort phase", "maxBucket", maxBucket, "total", n)
	pool.ParallelForAtomic(numBuckets, func(v int) {
		lo := 0
		if v > 0 {
			lo = int(bucketEnds.Get(v - 1))
		}
		hi := int(bucketEnds.Get(v))
		if hi <= lo {
			return
		}
		bucket := sorted.Slice(lo, hi)
		sortBucket(packed, bucket, ctx)
	})

	return &SuffixArray{idxs: sorted, k: k, ctx: ctx}, nil
}

// sortBucket sorts the positions in bucket (a Slice view into the shared
// sorted output) by their suffix order. CTX<=4 uses the cached-key
// strategy (materialize each position's comparator windows once, sort
// unstably by key+position); larger CTX sorts in place directly against
// the comparator, which re-walks the packed buffer on every comparison.
func sortBucket(packed *RevPacked, bucket *CompactVec, ctx int) {
	n := bucket.Len()
	if n <= 1 {
		return
	}
	if ctx <= 4 {
		keys := make([]cachedKey, n)
		order := make([]int, n)
		for i := 0; i < n; i++ {
			keys[i] = buildKey(packed, int(bucket.Get(i)), ctx)
			order[i] = i
		}
		sortpkg.SortIndices(order, func(i, j int) bool {
			return keyLess(keys[i], keys[j])
		})
		for i := 0; i < n; i++ {
			bucket.Set(i, uint64(keys[order[i]].pos))
		}
		return
	}

	idx := make([]int, n)
	for i := range idx {
		idx[i] = int(bucket.Get(i))
	}
	sortpkg.SortIndices(idx, func(ai, bi int) bool {
		return SimdCmpPacked(packed, ctx, ai, bi) < 0
	})
	for i := 0; i < n; i++ {
		bucket.Set(i, uint64(idx[i]))
	}
}

// NewBytes builds a suffix array over b using the radix-free byte path: no
// bucketing, just a single parallel sort of every valid position using
// SimdCmpBytes. b must carry at least byteWindowLen*ctx trailing pad bytes.
func NewBytes(b []byte, ctx int, cfg Config) (*SuffixArray, error) {
	cfg.K, cfg.CTX = 1, ctx
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	padLen := byteWindowLen * ctx
	if len(b) < padLen {
		return nil, newConstructionError("NewBytes", "corpus length %d shorter than required pad %d", len(b), padLen)
	}
	n := len(b) - padLen
	if n <= 0 {
		return nil, newConstructionError("NewBytes", "corpus has no valid suffix starts after padding (len=%d, pad=%d)", len(b), padLen)
	}

	sorted := NewCompactVec(n, uint64(n))
	for i := 0; i < n; i++ {
		sorted.Set(i, uint64(i))
	}

	threads := cfg.threads()
	pool := workerpool.New(threads)
	defer pool.Close()

	slog.Debug("dnasa: byte-path parallel sort", "n", n, "threads", threads)
	parallelSortIndices(pool, sorted, n, func(ai, bi int) int {
		return SimdCmpBytes(b, ctx, ai, bi)
	})

	return &SuffixArray{idxs: sorted, k: 0, ctx: ctx}, nil
}

// New builds a suffix array over a pre-seeded stream of 16-bit values
// (each carrying k meaningful bits), using counting-sort bucketing
// followed by a per-bucket parallel sort via SimdCmp16. seeds must carry
// at least seedWindowLen*ctx trailing pad elements.
func New(seeds []uint16, k, ctx int, cfg Config) (*SuffixArray, error) {
	cfg.K, cfg.CTX = k, ctx
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	padLen := seedWindowLen * ctx
	if len(seeds) < padLen {
		return nil, newConstructionError("New", "seed length %d shorter than required pad %d", len(seeds), padLen)
	}
	n := len(seeds) - padLen
	if n <= 0 {
		return nil, newConstructionError("New", "seed stream has no valid suffix starts after padding (len=%d, pad=%d)", len(seeds), padLen)
	}

	numBuckets := cfg.numBuckets()
	counts := NewCompactVec(numBuckets, uint64(n))
	for i := 0; i < n; i++ {
		s := int(seeds[i])
		counts.Set(s, counts.Get(s)+1)
	}

	// Inclusive prefix-sum table: seedToIdx[v] is the start offset of
	// bucket v, seedToIdx[v+1] its exclusive end.
	seedToIdx := NewCompactVec(numBuckets+1, uint64(n))
	sum := 0
	seedToIdx.Set(0, 0)
	for v := 0; v < numBuckets; v++ {
		sum += int(counts.Get(v))
		seedToIdx.Set(v+1, uint64(sum))
	}

	// Scatter by decrementing count: each bucket fills from its high end
	// down to its low end. SimdCmp16 has no position tie-break, so suffixes
	// it reports equal are left in whatever relative order the per-bucket
	// sort produces, which can depend on this fill order.
	sorted := NewCompactVec(n, uint64(n))
	for i := 0; i < n; i++ {
		s := int(seeds[i])
		start := int(seedToIdx.Get(s))
		cnt := int(counts.Get(s))
		sorted.Set(start+cnt-1, uint64(i))
		counts.Set(s, uint64(cnt-1))
	}

	threads := cfg.threads()
	pool := workerpool.New(threads)
	defer pool.Close()

	slog.Debug("dnasa: seeded-path per-bucket sort", "buckets", numBuckets)
	pool.ParallelForAtomic(numBuckets, func(v int) {
		lo := int(seedToIdx.Get(v))
		hi := int(seedToIdx.Get(v + 1))
		if hi-lo <= 1 {
			return
		}
		bucket := sorted.Slice(lo, hi)
		idx := make([]int, bucket.Len())
		for i := range idx {
			idx[i] = int(bucket.Get(i))
		}
		sortpkg.SortIndices(idx, func(ai, bi int) bool {
			return SimdCmp16(seeds, ctx, ai+1, bi+1) < 0
		})
		for i := range idx {
			bucket.Set(i, uint64(idx[i]))
		}
	})

	return &SuffixArray{idxs: sorted, k: k, ctx: ctx}, nil
}

// parallelSortIndices sorts the n elements of v (each an int position). Up
// to sequentialThreshold elements, or with a single-worker pool, it sorts
// sequentially with sortpkg.SortIndices; otherwise it hands off to
// parallelIntrosort. The pool is consulted only for its worker count.
func parallelSortIndices(pool *workerpool.Pool, v *CompactVec, n int, cmp func(ai, bi int) int) {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = int(v.Get(i))
	}

	less := func(ai, bi int) bool { return cmp(ai, bi) < 0 }
	const sequentialThreshold = 1 << 14
	if n <= sequentialThreshold || pool.NumWorkers() <= 1 {
		sortpkg.SortIndices(idx, less)
	} else {
		parallelIntrosort(pool, idx, less, sequentialThreshold)
	}

	for i := 0; i < n; i++ {
		v.Set(i, uint64(idx[i]))
	}
}

// parallelIntrosort recursively splits idx the same way sortpkg's 3-way
// quicksort partition does, but sorts the two resulting partitions on two
// new goroutines (not on the pool's workers) while a partition is larger
// than threshold; partitions at or below threshold are sorted sequentially.
func parallelIntrosort(pool *workerpool.Pool, idx []int, less sortpkg.Less, threshold int) {
	if len(idx) <= threshold {
		sortpkg.SortIndices(idx, less)
		return
	}

	lt, gt := partitionOnce(idx, less)
	left, right := idx[:lt], idx[gt:]

	done := make(chan struct{}, 2)
	go func() {
		parallelIntrosort(pool, left, less, threshold)
		done <- struct{}{}
	}()
	go func() {
		parallelIntrosort(pool, right, less, threshold)
		done <- struct{}{}
	}()
	<-done
	<-done
}

// partitionOnce performs a single median-of-3 3-way partition pass,
// returning (lt, gt) such that idx[:lt] sorts strictly before the pivot,
// idx[lt:gt] ties it, and idx[gt:] sorts strictly after — the same scheme
// sortpkg.SortIndices uses internally, exposed here so the top level of a
// large sort can be split across the pool before falling back to the
// sequential introsort.
func partitionOnce(idx []int, less sortpkg.Less) (int, int) {
	n := len(idx)
	a, b, c := idx[0], idx[n/2], idx[n-1]
	pivot := medianOf3(a, b, c, less)

	lt, i, gt := 0, 0, n
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

func medianOf3(a, b, c int, less sortpkg.Less) int {
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

// StatsHistogram is the diagnostic output of Stats: index l holds the
// number of adjacent suffix pairs whose common comparator-window prefix
// has length exactly l (measured in encoded symbols, capped at
// packedWindowLen*ctx).
type StatsHistogram struct {
	Counts []int
}

// Stats walks adjacent pairs of the constructed array and histograms their
// common-prefix length against the raw corpus b, for diagnostics only; it
// never mutates the array.
func (sa *SuffixArray) Stats(b []byte) (StatsHistogram, error) {
	maxLen := packedWindowLen * sa.ctx
	h := StatsHistogram{Counts: make([]int, maxLen+1)}
	n := sa.idxs.Len()
	for x := 0; x < n-1; x++ {
		i := int(sa.idxs.Get(x))
		j := int(sa.idxs.Get(x + 1))
		l := 0
		for l < maxLen && symbolCode[b[i+l]] == symbolCode[b[j+l]] {
			l++
		}
		h.Counts[l]++
	}
	return h, nil
}

// String renders the histogram as a compact one-line summary, handy for
// ad-hoc logging from cmd/dnasa-bench.
func (h StatsHistogram) String() string {
	total, distinct := 0, 0
	for _, c := range h.Counts {
		total += c
		if c > 0 {
			distinct++
		}
	}
	return fmt.Sprintf("%d adjacent pairs, %d distinct prefix lengths observed", total, distinct)
}
