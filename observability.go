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
	"context"
	"io"
	"log/slog"
)

// NoMatchRoute is the sentinel route pattern reported to observers when no
// mapping matched the request. Observers should use the route pattern (not
// the raw path) as a metric or span attribute to keep cardinality bounded;
// this sentinel keeps unmatched requests out of the pattern namespace.
const NoMatchRoute = "_no_match"

// noopLogger is a singleton no-op logger used when no logger is configured.
var noopLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// NoopLogger returns the singleton no-op logger.
func NoopLogger() *slog.Logger {
	return noopLogger
}

// DispatchObserver provides lifecycle hooks around route dispatch.
// Implementations typically record traces, metrics, or access logs.
//
// Lifecycle:
//  1. Router calls OnDispatchStart(ctx, req) → (enrichedCtx, state)
//     - The enriched context is used for the rest of the dispatch, including
//       the handler invocation (e.g. trace span propagation).
//     - The state token is opaque to the router. Returning nil state excludes
//       this dispatch: OnDispatchEnd is not called, but the enriched context
//       is still used.
//  2. Router resolves the route and, on a match, invokes the handler.
//  3. Router calls OnDispatchEnd with the matched route pattern (the
//     registered expression, not the raw path) or NoMatchRoute, and the
//     handler's error if any. Called only if state != nil.
//
// Thread safety: all methods must be safe for concurrent use; dispatches run
// concurrently over the shared immutable route table.
type DispatchObserver interface {
	// OnDispatchStart is called before the route scan begins.
	OnDispatchStart(ctx context.Context, req Request) (context.Context, any)

	// OnDispatchEnd is called after the handler returns, or after the scan
	// finds no match. err is the handler's error, nil for no-match outcomes.
	OnDispatchEnd(ctx context.Context, state any, req Request, routePattern string, err error)
}
