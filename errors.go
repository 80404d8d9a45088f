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

import "fmt"

// ConstructionError reports a precondition violation in one of the
// suffix-array constructors (bad k, a corpus too short for the requested
// context, an invalid thread count). It wraps the underlying reason so
// callers can still match on it with errors.Is/errors.As.
type ConstructionError struct {
	Op     string
	Reason error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("dnasa: %s: %v", e.Op, e.Reason)
}

func (e *ConstructionError) Unwrap() error {
	return e.Reason
}

func newConstructionError(op string, format string, args ...any) error {
	return &ConstructionError{Op: op, Reason: fmt.Errorf(format, args...)}
}
