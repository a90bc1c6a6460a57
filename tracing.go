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

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// tracerName is the instrumentation scope name used for dispatch spans.
const tracerName = "rivaas.dev/regexrouter"

// TracingObserver is a DispatchObserver that records one OpenTelemetry span
// per dispatch. The span carries the request method and, once routing
// completes, the matched route pattern (or the NoMatchRoute sentinel) as
// attributes; handler errors are recorded on the span and set its status.
//
// Example:
//
//	b := regexrouter.NewBuilder(appCtx,
//	    regexrouter.WithObserver(regexrouter.NewTracingObserver(
//	        regexrouter.WithTracerProvider(tp),
//	    )),
//	)
type TracingObserver struct {
	tracer trace.Tracer
}

// TracingOption configures a TracingObserver.
type TracingOption func(*TracingObserver)

// WithTracerProvider sets the tracer provider used for dispatch spans.
// When unset, the global provider registered with otel is used.
func WithTracerProvider(tp trace.TracerProvider) TracingOption {
	return func(t *TracingObserver) {
		t.tracer = tp.Tracer(tracerName)
	}
}

// NewTracingObserver creates a TracingObserver.
func NewTracingObserver(opts ...TracingOption) *TracingObserver {
	t := &TracingObserver{}
	for _, opt := range opts {
		opt(t)
	}
	if t.tracer == nil {
		t.tracer = otel.Tracer(tracerName)
	}
	return t
}

// Compile-time check that TracingObserver implements DispatchObserver.
var _ DispatchObserver = (*TracingObserver)(nil)

// OnDispatchStart starts the dispatch span and returns the span-enriched
// context; the span itself travels as the opaque observer state.
func (t *TracingObserver) OnDispatchStart(ctx context.Context, req Request) (context.Context, any) {
	ctx, span := t.tracer.Start(ctx, "regexrouter.dispatch",
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(
			attribute.String("http.request.method", req.Method()),
			attribute.String("url.path", req.Path()),
		),
	)
	return ctx, span
}

// OnDispatchEnd finishes the dispatch span, attaching the matched route
// pattern and any handler error.
func (t *TracingObserver) OnDispatchEnd(_ context.Context, state any, _ Request, routePattern string, err error) {
	span, ok := state.(trace.Span)
	if !ok {
		return
	}

	span.SetAttributes(attribute.String("http.route", routePattern))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
