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

//go:build !amd64 || !goexperiment.simd

package dnasa

// cmpPack compares two packed comparator windows. This build has no
// hardware kernel available (non-amd64, or the simd experiment isn't
// enabled), so it's the scalar byte comparison directly.
func cmpPack(a, b packedWindow) int {
	return cmpPackScalar(a, b)
}
