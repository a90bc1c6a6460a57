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

package metrics

import (
	"context"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"rivaas.dev/regexrouter"
)

// Compile-time check that Recorder implements DispatchObserver.
var _ regexrouter.DispatchObserver = (*Recorder)(nil)

// dispatchState carries per-dispatch measurement state between the start and
// end hooks.
type dispatchState struct {
	start time.Time
}

// OnDispatchStart implements regexrouter.DispatchObserver. It marks the
// dispatch as in flight and captures the start time. Returns nil state when
// the recorder is disabled, which excludes the dispatch from recording.
func (r *Recorder) OnDispatchStart(ctx context.Context, _ regexrouter.Request) (context.Context, any) {
	if !r.enabled {
		return ctx, nil
	}

	r.activeDispatches.Add(ctx, 1,
		metric.WithAttributes(r.serviceNameAttr, r.serviceVersionAttr))

	return ctx, &dispatchState{start: time.Now()}
}

// OnDispatchEnd implements regexrouter.DispatchObserver. It records the
// dispatch count, duration, and handler errors, labeled by method, route
// pattern, and outcome. The route pattern attribute is the registered
// expression (or the no-match sentinel), never the raw path, so attribute
// cardinality stays bounded by the route table.
func (r *Recorder) OnDispatchEnd(ctx context.Context, state any, req regexrouter.Request, routePattern string, err error) {
	st, ok := state.(*dispatchState)
	if !ok {
		return
	}

	outcome := "matched"
	switch {
	case routePattern == regexrouter.NoMatchRoute:
		outcome = "no_match"
	case err != nil:
		outcome = "error"
	}

	attrs := metric.WithAttributes(
		r.serviceNameAttr,
		r.serviceVersionAttr,
		attribute.String("http.request.method", strings.ToLower(req.Method())),
		attribute.String("http.route", routePattern),
		attribute.String("regexrouter.outcome", outcome),
	)

	r.dispatchCount.Add(ctx, 1, attrs)
	r.dispatchDuration.Record(ctx, time.Since(st.start).Seconds(), attrs)
	if err != nil {
		r.handlerErrors.Add(ctx, 1, attrs)
	}

	r.activeDispatches.Add(ctx, -1,
		metric.WithAttributes(r.serviceNameAttr, r.serviceVersionAttr))
}
