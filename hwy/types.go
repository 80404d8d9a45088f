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

// Package hwy provides runtime CPU dispatch (AVX2 vs scalar) and the
// integer-type constraints the rest of the module's generic helpers are
// built against, scoped to what the suffix array engine needs. It follows
// the Highway C++ library's dispatch philosophy — detect once, route every
// call through the result — without carrying Highway's full portable
// vector API, which this module has no float or wide-lane use for.
package hwy

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types. Used by
// hwy/contrib/bitpack to size packed integer storage generically over the
// caller's index type.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}
