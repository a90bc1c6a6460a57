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
	"log/slog"
	"regexp"
	"slices"
	"strings"
)

// bucketEntry is one candidate within a per-method bucket. The method set is
// implicit: bucket membership already encodes it, so the scan only has to
// test the pattern.
type bucketEntry[Ctx any] struct {
	pattern *regexp.Regexp
	expr    string
	handler Handler[Ctx]
}

// RouteInfo describes one registered mapping for introspection.
type RouteInfo struct {
	Methods []string // lower-cased method tokens; empty means the mapping is inert
	Pattern string   // the route expression as registered, before anchoring
}

// Router is the immutable, dispatch-ready route table produced by
// Builder.Build. Mappings are partitioned into per-method buckets; within a
// bucket, candidates keep their registration order, so bucketed lookup and a
// flat ordered scan produce identical results.
//
// The Router is safe for concurrent use without additional synchronization:
// no dispatch mutates router state, compiled patterns are read-only, and each
// dispatch builds its own match state.
type Router[Ctx any] struct {
	rctx     Ctx
	buckets  map[string][]bucketEntry[Ctx]
	routes   []RouteInfo
	observer DispatchObserver
	logger   *slog.Logger
}

// Dispatch resolves the request against the route table and invokes the
// matched handler with (ctx, router context, route params, request).
//
// matched reports whether any mapping matched; false is not an error — the
// caller (typically a transport loop) translates it into a not-found
// response. When matched is true, res and err are whatever the handler
// returned; handler errors propagate unchanged and are never wrapped or
// retried. The scan stops at the first structural match: a later mapping is
// never consulted because the matched handler failed.
func (r *Router[Ctx]) Dispatch(ctx context.Context, req Request) (res Responder, matched bool, err error) {
	var obsState any
	if r.observer != nil {
		ctx, obsState = r.observer.OnDispatchStart(ctx, req)
	}

	entry, params, ok := r.match(req)
	if !ok {
		r.logger.Debug("no route matched", "method", req.Method(), "path", req.Path())
		if obsState != nil {
			r.observer.OnDispatchEnd(ctx, obsState, req, NoMatchRoute, nil)
		}
		return nil, false, nil
	}

	r.logger.Debug("route matched", "method", req.Method(), "route", entry.expr)
	res, err = entry.handler(ctx, r.rctx, params, req)

	if obsState != nil {
		r.observer.OnDispatchEnd(ctx, obsState, req, entry.expr, err)
	}
	return res, true, err
}

// HandlerForRequest resolves the request to a handler without invoking it.
// The returned BoundHandler has the router context and route parameters
// already captured; the caller supplies the cancellation context at
// invocation time. Returns ok == false when no mapping matches.
//
// Late-binding transports use this to separate lookup from execution;
// Dispatch is the one-shot equivalent.
func (r *Router[Ctx]) HandlerForRequest(req Request) (h BoundHandler, ok bool) {
	entry, params, ok := r.match(req)
	if !ok {
		return nil, false
	}
	return func(ctx context.Context, req Request) (Responder, error) {
		return entry.handler(ctx, r.rctx, params, req)
	}, true
}

// match performs the bucketed first-match scan. A missing bucket means no
// mapping was registered for the method, which is a plain miss.
func (r *Router[Ctx]) match(req Request) (*bucketEntry[Ctx], *RouteParams, bool) {
	bucket := r.buckets[strings.ToLower(req.Method())]
	path := req.Path()

	for i := range bucket {
		entry := &bucket[i]
		// Patterns are anchored at registration, so any match is a full match.
		if idx := entry.pattern.FindStringSubmatchIndex(path); idx != nil {
			return entry, newRouteParams(entry.pattern, path, idx), true
		}
	}
	return nil, nil, false
}

// Routes returns the registered mappings in registration order. The returned
// slice is a copy; mutating it does not affect the router.
func (r *Router[Ctx]) Routes() []RouteInfo {
	routes := make([]RouteInfo, len(r.routes))
	for i, info := range r.routes {
		routes[i] = RouteInfo{
			Methods: slices.Clone(info.Methods),
			Pattern: info.Pattern,
		}
	}
	return routes
}

// Context returns the router context value fixed at Build time.
func (r *Router[Ctx]) Context() Ctx {
	return r.rctx
}
