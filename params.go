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
	"fmt"
	"net/url"
	"regexp"
	"strconv"
)

// RouteParams is a read-only view over the capture groups of one successful
// match. A fresh value is created per dispatch and bound to exactly that
// match; it is never shared or reused across dispatches.
//
// Positional parameters are indexed from 0 in declaration order. Named
// parameters are keyed by capture-group name ((?P<name>...) syntax).
// Captured text is percent-decoded before it is returned.
type RouteParams struct {
	pattern *regexp.Regexp
	path    string
	idx     []int // pairwise submatch offsets into path; -1 for non-participating groups
}

// newRouteParams wraps the submatch index slice produced by
// FindStringSubmatchIndex. The slice is owned by the RouteParams from here on.
func newRouteParams(pattern *regexp.Regexp, path string, idx []int) *RouteParams {
	return &RouteParams{pattern: pattern, path: path, idx: idx}
}

// Count returns the number of capture groups declared in the route pattern.
// Valid positional indices are 0 through Count()-1.
func (p *RouteParams) Count() int {
	return p.pattern.NumSubexp()
}

// Positional returns the percent-decoded text of capture group i, counting
// from 0 in declaration order.
//
// An index outside the pattern's capture-group range reports
// ErrParamOutOfRange. A group inside the range that did not participate in
// the match reports ErrParamUnmatched. Malformed percent-encoding in the
// captured text reports a *DecodeError. None of these conditions panic.
func (p *RouteParams) Positional(i int) (string, error) {
	if i < 0 || i >= p.pattern.NumSubexp() {
		return "", fmt.Errorf("%w: %d", ErrParamOutOfRange, i)
	}
	return p.group(i+1, strconv.Itoa(i))
}

// Named returns the percent-decoded text of the named capture group.
//
// A name that is not defined in the pattern reports ErrParamNotFound. A name
// that is defined but did not participate in the match reports
// ErrParamUnmatched, which wraps ErrParamNotFound — callers that do not care
// about the distinction can match on ErrParamNotFound for both.
func (p *RouteParams) Named(name string) (string, error) {
	n := p.pattern.SubexpIndex(name)
	if n < 0 {
		return "", fmt.Errorf("%w: %q", ErrParamNotFound, name)
	}
	return p.group(n, name)
}

// group extracts submatch n, decoding percent-escapes. label identifies the
// parameter in errors: the group name, or the positional index as a string.
func (p *RouteParams) group(n int, label string) (string, error) {
	lo, hi := p.idx[2*n], p.idx[2*n+1]
	if lo < 0 || hi < 0 {
		return "", fmt.Errorf("%w: %q", ErrParamUnmatched, label)
	}

	raw := p.path[lo:hi]
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return "", &DecodeError{Param: label, Value: raw, Err: err}
	}
	return decoded, nil
}
