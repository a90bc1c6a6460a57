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

// Package stdhttp bridges regexrouter to net/http.
//
// The router core is transport-agnostic: it consumes an abstract Request and
// returns an opaque Responder or "no match". This package supplies the
// net/http side of that contract: a Request view over *http.Request, a small
// Response value that writes itself, and an http.Handler that dispatches and
// renders the result.
//
// # Quick Start
//
//	b := regexrouter.NewBuilder(app)
//	b.Handle(http.MethodGet, regexp.MustCompile(`/users/(?P<id>\d+)`),
//	    func(ctx context.Context, a *App, params *regexrouter.RouteParams, req regexrouter.Request) (regexrouter.Responder, error) {
//	        id, err := params.Named("id")
//	        if err != nil {
//	            return nil, err
//	        }
//	        return stdhttp.Text(http.StatusOK, "user "+id), nil
//	    })
//
//	r, err := b.Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	http.ListenAndServe(":8080", stdhttp.NewHandler(r))
//
// Unmatched requests fall through to a configurable no-route handler
// (http.NotFound by default); handler errors become 500 responses and are
// logged. Status-code policy for these cases lives here, not in the router.
package stdhttp
