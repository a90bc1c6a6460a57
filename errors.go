// Copyright 2025 The Rivaas Authors
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

package regexrouter

import (
	"errors"
	"fmt"
)

var (
	// ErrNilMethods indicates that a mapping was registered with a nil method slice.
	// An empty (non-nil) method slice is allowed and produces an inert mapping.
	ErrNilMethods = errors.New("methods must not be nil")

	// ErrNilPattern indicates that a mapping was registered with a nil route pattern.
	ErrNilPattern = errors.New("route pattern must not be nil")

	// ErrNilHandler indicates that a mapping was registered with a nil handler.
	ErrNilHandler = errors.New("handler must not be nil")

	// ErrBuilderConsumed indicates that a Builder was used after Build.
	// Build transfers ownership of the accumulated mappings to the Router;
	// the builder must be discarded afterwards.
	ErrBuilderConsumed = errors.New("builder already consumed by Build")

	// ErrParamOutOfRange indicates a positional parameter index outside the
	// pattern's capture-group range.
	ErrParamOutOfRange = errors.New("positional parameter index out of range")

	// ErrParamNotFound indicates that a route parameter could not be resolved.
	// It covers both a capture-group name that is undefined in the pattern and
	// a group that did not participate in the match; use ErrParamUnmatched to
	// distinguish the latter.
	ErrParamNotFound = errors.New("route parameter not found")

	// ErrParamInvalid indicates that a route parameter could not be parsed as
	// the requested type.
	ErrParamInvalid = errors.New("invalid route parameter value")
)

// ErrParamUnmatched indicates that a capture group exists in the pattern but
// did not participate in the match (for example, an unused alternation
// branch). It wraps ErrParamNotFound, so callers that treat both absence
// modes the same can match on ErrParamNotFound alone.
var ErrParamUnmatched = fmt.Errorf("%w: capture group did not participate in the match", ErrParamNotFound)

// DecodeError reports that a captured value contained malformed
// percent-encoding. It is returned from RouteParams accessors instead of the
// decoded value; the raw captured text is preserved in Value.
type DecodeError struct {
	Param string // capture-group name, or the positional index as a string
	Value string // raw captured text that failed to decode
	Err   error  // underlying escape error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode route parameter %s: %q: %v", e.Param, e.Value, e.Err)
}

// Unwrap returns the underlying escape error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}
