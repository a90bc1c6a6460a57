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

// Package metrics provides OpenTelemetry dispatch metrics for regexrouter.
//
// The Recorder implements regexrouter.DispatchObserver and records, per
// dispatch: a count labeled by method, route pattern, and outcome; a duration
// histogram; and an in-flight gauge. Route patterns (not raw paths) are used
// as attribute values to keep metric cardinality bounded.
//
// Three exporters are supported: Prometheus (pull, with an optional dedicated
// scrape server), OTLP over HTTP (push), and stdout (development). By default
// the package does NOT register the global OpenTelemetry meter provider; use
// WithGlobalMeterProvider to opt in.
//
// # Quick Start
//
//	recorder, err := metrics.New(
//	    metrics.WithServiceName("orders-api"),
//	    metrics.WithPrometheus(":9090", "/metrics"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer recorder.Shutdown(context.Background())
//
//	b := regexrouter.NewBuilder(appCtx, regexrouter.WithObserver(recorder))
package metrics
