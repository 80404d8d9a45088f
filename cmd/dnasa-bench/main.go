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

// Package main times dnasa's packed suffix-array construction over an
// in-memory synthetic ACGT sequence. It does not read FASTA files or any
// other corpus format — loading real sequence data is a caller concern
// outside this module's scope.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/suffixkit/dnasa"
	"github.com/suffixkit/dnasa/hwy"
)

func main() {
	n := flag.Int("n", 1_000_000, "length of the synthetic ACGT corpus")
	k := flag.Int("k", 8, "radix width in bases")
	ctx := flag.Int("ctx", 2, "number of 124-base comparator windows")
	threads := flag.Int("threads", 0, "bucket/histogram thread count (0 = GOMAXPROCS)")
	seed := flag.Int64("seed", 1, "PRNG seed for the synthetic corpus")
	stats := flag.Bool("stats", false, "print the adjacent-pair common-prefix histogram")
	flag.Parse()

	fmt.Printf("dnasa-bench: SIMD level %s (width %d bytes)\n", hwy.CurrentName(), hwy.CurrentWidth())

	padLen := 124 * *ctx
	corpus := syntheticCorpus(*n, padLen, *seed)

	cfg := dnasa.Config{BucketThreads: *threads}
	start := time.Now()
	sa, err := dnasa.NewPacked(corpus, *k, *ctx, cfg)
	elapsed := time.Since(start)
	if err != nil {
		fmt.Fprintln(os.Stderr, "dnasa-bench:", err)
		os.Exit(1)
	}

	fmt.Printf("built suffix array of %d positions in %s (k=%d ctx=%d)\n",
		sa.Idxs().Len(), elapsed, sa.K(), sa.Ctx())

	if *stats {
		hist, err := sa.Stats(corpus)
		if err != nil {
			fmt.Fprintln(os.Stderr, "dnasa-bench: stats:", err)
			os.Exit(1)
		}
		fmt.Println(hist)
	}
}

// syntheticCorpus returns n random ACGT bytes followed by padLen bytes of
// 'A' padding, the trailing-context pad every construction path requires.
func syntheticCorpus(n, padLen int, seed int64) []byte {
	const alphabet = "ACGT"
	rng := rand.New(rand.NewSource(seed))
	b := make([]byte, n+padLen)
	for i := 0; i < n; i++ {
		b[i] = alphabet[rng.Intn(4)]
	}
	for i := n; i < len(b); i++ {
		b[i] = 'A'
	}
	return b
}
