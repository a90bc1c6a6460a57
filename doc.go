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

// Package regexrouter provides a regular-expression request router for Go.
//
// The router resolves an incoming (method, path) pair by scanning an ordered
// list of route patterns and dispatching to the first full match. It is
// deliberately simple: no radix tree, no per-segment parsing, just compiled
// regular expressions checked in registration order. This makes routing
// behavior easy to reason about and makes arbitrary path grammars possible,
// at the cost of linear scan time within a method bucket.
//
// # Key Features
//
//   - Ordered dispatch: the first registered pattern that fully matches wins
//   - Per-method buckets built once at Build time for cheaper lookup
//   - Positional and named capture groups exposed as decoded route parameters
//   - A caller-supplied context value shared across all dispatches
//   - Immutable route table: safe for concurrent dispatch without locking
//   - Optional observability via DispatchObserver (tracing, metrics, logging)
//
// # Quick Start
//
//	type app struct{ greeting string }
//
//	b := regexrouter.NewBuilder(&app{greeting: "hello"})
//	b.Handle(http.MethodGet, regexp.MustCompile(`/users/(?P<id>\d+)`),
//	    func(ctx context.Context, a *app, params *regexrouter.RouteParams, req regexrouter.Request) (regexrouter.Responder, error) {
//	        id, err := params.Named("id")
//	        if err != nil {
//	            return nil, err
//	        }
//	        return a.greeting + " user " + id, nil
//	    })
//
//	r, err := b.Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res, matched, err := r.Dispatch(context.Background(), regexrouter.NewRequest("GET", "/users/42"))
//
// # Matching Semantics
//
// Patterns must match the entire request path. A pattern is anchored at
// registration time by recompiling it as `\A(?:expr)\z`, so `/users/(\d+)`
// matches "/users/5" but not "/users/5/extra". Method comparison is
// case-insensitive; methods are canonicalized to lower case when the route
// table is built. Registering a mapping with an empty (non-nil) method set is
// allowed and produces a mapping that never matches — callers constructing
// method sets dynamically do not need to special-case the empty set.
//
// # Transport Integration
//
// The router owns only the lookup. It consumes an abstract Request (method
// plus path) and produces an opaque Responder or reports "no match" as a
// plain value. Socket handling, not-found responses, and response
// serialization belong to the transport layer; see the stdhttp subpackage
// for a net/http bridge.
package regexrouter
