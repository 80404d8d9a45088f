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

package hwy

import (
	"simd/archsimd"
)

func init() {
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	detectCPUFeatures()
}

func detectCPUFeatures() {
	if archsimd.X86.AVX2() {
		currentLevel = DispatchAVX2
		currentWidth = 32
	} else {
		// No AVX2: the comparator and packing layers have no SSE2-only
		// kernels, so fall back to the portable scalar path rather than
		// claiming a dispatch level this package can't actually exploit.
		setScalarMode()
	}
}

func setScalarMode() {
	currentLevel = DispatchScalar
	currentWidth = 16
}
