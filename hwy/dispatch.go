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

package hwy

import (
	"os"
	"strconv"
)

// DispatchLevel represents the current SIMD instruction set being used.
type DispatchLevel int

const (
	// DispatchScalar indicates no SIMD, pure Go implementation.
	DispatchScalar DispatchLevel = iota

	// DispatchAVX2 indicates AVX2 instructions (256-bit SIMD), the only
	// hardware-accelerated path this package implements.
	DispatchAVX2
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchAVX2:
		return "avx2"
	default:
		return "unknown"
	}
}

// currentLevel is the detected SIMD level for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel DispatchLevel

// currentWidth is the SIMD register width in bytes for the current level.
// Set by init() in dispatch_*.go files.
//
// For DispatchScalar this is set to 16.
var currentWidth int

// CurrentLevel returns the SIMD instruction set being used.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the SIMD register width in bytes.
// 16 for scalar fallback, 32 for AVX2.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns a human-readable name for the current SIMD target.
// For example: "avx2", "scalar".
func CurrentName() string {
	return currentLevel.String()
}

// HasSIMD returns true if hardware SIMD acceleration is available.
// Returns false when running in scalar fallback mode (e.g., when
// GOEXPERIMENT=simd is not enabled or HWY_NO_SIMD is set).
func HasSIMD() bool {
	return currentLevel != DispatchScalar
}

// NoSimdEnv checks if the HWY_NO_SIMD environment variable is set.
// When set, the comparator and packing layers fall back to scalar code
// regardless of detected CPU capabilities. Useful for testing and for
// reproducing results across machines with different instruction sets.
func NoSimdEnv() bool {
	val := os.Getenv("HWY_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
