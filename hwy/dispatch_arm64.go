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

//go:build arm64

package hwy

// This package implements one hardware-accelerated comparator path, AVX2 on
// amd64. arm64 has no NEON kernel yet, so it always runs the portable scalar
// path; HWY_NO_SIMD has no effect here since there is nothing to disable.
func init() {
	currentLevel = DispatchScalar
	currentWidth = 16
}
