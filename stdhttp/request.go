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

package stdhttp

import (
	"net/http"

	"rivaas.dev/regexrouter"
)

// request adapts *http.Request to the router's Request interface.
// The underlying request stays reachable through Underlying so handlers can
// read headers and the body.
type request struct {
	r *http.Request
}

// NewRequest wraps an *http.Request as a regexrouter.Request. Matching uses
// the URL path, not the raw URI, so query strings never reach the patterns.
func NewRequest(r *http.Request) regexrouter.Request {
	return request{r: r}
}

func (a request) Method() string { return a.r.Method }

func (a request) Path() string { return a.r.URL.Path }

// Underlying returns the *http.Request behind a Request produced by
// NewRequest. ok is false for Request values from other packages.
func Underlying(req regexrouter.Request) (*http.Request, bool) {
	a, ok := req.(request)
	if !ok {
		return nil, false
	}
	return a.r, true
}
