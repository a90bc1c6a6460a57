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

import "context"

// Request is the minimal view of an incoming request that the router needs.
// Transport packages adapt their own request representation to this
// interface; see the stdhttp subpackage for the net/http adapter.
type Request interface {
	// Method returns the request method token, for example "GET".
	// Comparison against registered methods is case-insensitive.
	Method() string

	// Path returns the request path matched against route patterns.
	Path() string
}

// Responder is the opaque value produced by a handler. The router returns it
// to the caller without interpreting it; the transport layer decides how a
// Responder becomes bytes on the wire.
type Responder any

// Handler is the canonical handler shape: it receives the cancellation
// context, the router-scoped context value fixed at Build time, the route
// parameters for the winning match, and the request itself.
//
// Errors returned by a handler propagate unchanged through Dispatch.
type Handler[Ctx any] func(ctx context.Context, rctx Ctx, params *RouteParams, req Request) (Responder, error)

// RequestHandler is a reduced handler for routes that need neither the
// router context nor route parameters. It is adapted to the canonical
// Handler shape at registration.
type RequestHandler func(ctx context.Context, req Request) (Responder, error)

// ContextHandler is a reduced handler for routes that need the router
// context but not route parameters. It is adapted to the canonical Handler
// shape at registration.
type ContextHandler[Ctx any] func(ctx context.Context, rctx Ctx, req Request) (Responder, error)

// BoundHandler is a handler bound to a specific match: the router context
// and route parameters are already captured. Returned by HandlerForRequest
// for late-binding transports that separate lookup from invocation.
type BoundHandler func(ctx context.Context, req Request) (Responder, error)
