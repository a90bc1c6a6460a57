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
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// mapping is one registered (methods, pattern, handler) triple. The pattern
// held here is the anchored recompilation of the caller's pattern; expr keeps
// the caller's original expression for introspection and observability.
type mapping[Ctx any] struct {
	methods []string // lower-cased, deduplicated, registration order preserved
	pattern *regexp.Regexp
	expr    string
	handler Handler[Ctx]
}

// Builder accumulates ordered route mappings and freezes them into a Router.
//
// The builder is single-owner: it must not be used from multiple goroutines,
// and it must be discarded after Build. Registration order is significant —
// when two patterns both match a request, the mapping registered first wins.
//
// Example:
//
//	b := regexrouter.NewBuilder(db)
//	b.Handle(http.MethodGet, regexp.MustCompile(`/users/(?P<id>\d+)`), getUser)
//	b.Handle(http.MethodPost, regexp.MustCompile(`/users`), createUser)
//	r, err := b.Build()
type Builder[Ctx any] struct {
	rctx     Ctx
	mappings []mapping[Ctx]
	consumed bool
	cfg      config
}

// NewBuilder creates a Builder bound to the given router context. The
// context value is fixed here: every handler invoked by the built Router
// receives it unchanged. Pass a zero value when no shared state is needed.
func NewBuilder[Ctx any](rctx Ctx, opts ...Option) *Builder[Ctx] {
	b := &Builder[Ctx]{rctx: rctx}
	for _, opt := range opts {
		opt(&b.cfg)
	}
	return b
}

// AddMapping appends a mapping for the given method set. This is the
// canonical registration operation; Handle, HandleRequest, and HandleContext
// all desugar to it.
//
// methods, pattern, and handler must be non-nil. An empty (non-nil) method
// slice is accepted and produces a mapping that never matches any request.
// Methods are canonicalized to lower case and deduplicated; the pattern is
// recompiled with full-match anchoring.
func (b *Builder[Ctx]) AddMapping(methods []string, pattern *regexp.Regexp, handler Handler[Ctx]) error {
	if b.consumed {
		return ErrBuilderConsumed
	}
	if methods == nil {
		return ErrNilMethods
	}
	if pattern == nil {
		return ErrNilPattern
	}
	if handler == nil {
		return ErrNilHandler
	}

	normalized := make([]string, 0, len(methods))
	for _, m := range methods {
		m = strings.ToLower(m)
		if !slices.Contains(normalized, m) {
			normalized = append(normalized, m)
		}
	}

	anchored, err := anchorPattern(pattern)
	if err != nil {
		return err
	}

	b.mappings = append(b.mappings, mapping[Ctx]{
		methods: normalized,
		pattern: anchored,
		expr:    pattern.String(),
		handler: handler,
	})
	return nil
}

// Handle registers a mapping for a single method.
func (b *Builder[Ctx]) Handle(method string, pattern *regexp.Regexp, handler Handler[Ctx]) error {
	return b.AddMapping([]string{method}, pattern, handler)
}

// HandleRequest registers a handler that ignores the router context and
// route parameters. The handler is wrapped into the canonical shape.
func (b *Builder[Ctx]) HandleRequest(methods []string, pattern *regexp.Regexp, handler RequestHandler) error {
	if handler == nil {
		return ErrNilHandler
	}
	return b.AddMapping(methods, pattern, func(ctx context.Context, _ Ctx, _ *RouteParams, req Request) (Responder, error) {
		return handler(ctx, req)
	})
}

// HandleContext registers a handler that ignores route parameters.
// The handler is wrapped into the canonical shape.
func (b *Builder[Ctx]) HandleContext(methods []string, pattern *regexp.Regexp, handler ContextHandler[Ctx]) error {
	if handler == nil {
		return ErrNilHandler
	}
	return b.AddMapping(methods, pattern, func(ctx context.Context, rctx Ctx, _ *RouteParams, req Request) (Responder, error) {
		return handler(ctx, rctx, req)
	})
}

// Build freezes the accumulated mappings into an immutable Router and
// consumes the builder. The flat mapping sequence is replayed into per-method
// buckets, preserving relative order within each bucket, so dispatch results
// are identical to a scan over the flat sequence.
//
// After Build returns, further calls on the builder fail with
// ErrBuilderConsumed.
func (b *Builder[Ctx]) Build() (*Router[Ctx], error) {
	if b.consumed {
		return nil, ErrBuilderConsumed
	}
	b.consumed = true

	buckets := make(map[string][]bucketEntry[Ctx])
	routes := make([]RouteInfo, 0, len(b.mappings))
	for _, m := range b.mappings {
		routes = append(routes, RouteInfo{
			Methods: slices.Clone(m.methods),
			Pattern: m.expr,
		})
		for _, method := range m.methods {
			buckets[method] = append(buckets[method], bucketEntry[Ctx]{
				pattern: m.pattern,
				expr:    m.expr,
				handler: m.handler,
			})
		}
	}

	logger := b.cfg.logger
	if logger == nil {
		logger = noopLogger
	}

	return &Router[Ctx]{
		rctx:     b.rctx,
		buckets:  buckets,
		routes:   routes,
		observer: b.cfg.observer,
		logger:   logger,
	}, nil
}

// MustBuild is like Build but panics on error. Useful in main() wiring where
// a consumed builder is a programming error.
func (b *Builder[Ctx]) MustBuild() *Router[Ctx] {
	r, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("regexrouter: MustBuild: %v", err))
	}
	return r
}

// anchorPattern recompiles a pattern so it must match the entire path.
// Wrapping in a non-capturing group preserves capture-group numbering and
// names. Checking match offsets instead would be wrong: Go's regexp returns
// the leftmost match, so `a|ab` against "ab" yields "a" even though a full
// match exists.
func anchorPattern(p *regexp.Regexp) (*regexp.Regexp, error) {
	anchored, err := regexp.Compile(`\A(?:` + p.String() + `)\z`)
	if err != nil {
		return nil, fmt.Errorf("anchor route pattern %q: %w", p.String(), err)
	}
	return anchored, nil
}
