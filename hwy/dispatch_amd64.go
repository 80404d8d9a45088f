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

//go:build amd64 && !goexperiment.simd

package hwy

import (
	"log/slog"

	"golang.org/x/sys/cpu"
)

// Fallback for when GOEXPERIMENT=simd is not enabled. Without the simd
// experiment, the archsimd package is unavailable, so there is no safe way
// to probe AVX2 and still get a typed vector API to use it with. Build with
// GOEXPERIMENT=simd for the real AVX2 comparator path (packing stays scalar
// in every build).
//
// x/sys/cpu is still usable here even without the simd experiment, so the
// scalar fallback can say *why* it's scalar instead of staying silent on
// hardware that could otherwise run the AVX2 path.
func init() {
	if cpu.X86.HasAVX2 {
		slog.Debug("dnasa: AVX2-capable CPU detected but GOEXPERIMENT=simd not set, using scalar comparator")
	}
	setScalarMode()
}

func setScalarMode() {
	currentLevel = DispatchScalar
	currentWidth = 16
}
