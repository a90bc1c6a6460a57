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
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/metric"
)

// Option defines functional options for Recorder configuration.
type Option func(*Recorder)

// WithServiceName sets the service.name attribute attached to every
// measurement.
func WithServiceName(name string) Option {
	return func(r *Recorder) {
		r.serviceName = name
		r.initCommonAttributes()
	}
}

// WithServiceVersion sets the service.version attribute attached to every
// measurement.
func WithServiceVersion(version string) Option {
	return func(r *Recorder) {
		r.serviceVersion = version
		r.initCommonAttributes()
	}
}

// WithPrometheus selects the Prometheus provider and starts a dedicated
// scrape server on the given port ("":9090"-style address) and path.
// Use WithPrometheusHandlerOnly to serve the scrape endpoint yourself.
//
// Example:
//
//	recorder, err := metrics.New(metrics.WithPrometheus(":9090", "/metrics"))
func WithPrometheus(port, path string) Option {
	return func(r *Recorder) {
		r.provider = PrometheusProvider
		r.providerSetCount++
		r.metricsPort = port
		r.metricsPath = path
		r.autoStartServer = true
	}
}

// WithPrometheusHandlerOnly selects the Prometheus provider without starting
// a dedicated server; retrieve the scrape handler with Recorder.Handler.
func WithPrometheusHandlerOnly() Option {
	return func(r *Recorder) {
		r.provider = PrometheusProvider
		r.providerSetCount++
		r.autoStartServer = false
	}
}

// WithOTLP selects the OTLP HTTP provider pushing to the given endpoint
// (e.g. "http://localhost:4318").
func WithOTLP(endpoint string) Option {
	return func(r *Recorder) {
		r.provider = OTLPProvider
		r.providerSetCount++
		r.otlpEndpoint = endpoint
	}
}

// WithStdout selects the stdout provider. Intended for development and
// testing.
func WithStdout() Option {
	return func(r *Recorder) {
		r.provider = StdoutProvider
		r.providerSetCount++
	}
}

// WithMeterProvider uses a caller-managed meter provider instead of a
// built-in one. The recorder will not flush or shut the provider down.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(r *Recorder) {
		r.meterProvider = mp
		r.customMeterProvider = true
	}
}

// WithGlobalMeterProvider registers the recorder's meter provider as the
// global OpenTelemetry provider via otel.SetMeterProvider.
func WithGlobalMeterProvider() Option {
	return func(r *Recorder) {
		r.registerGlobal = true
	}
}

// WithExportInterval sets the export interval for push-based providers
// (OTLP, stdout). Intervals below one second are rejected.
func WithExportInterval(interval time.Duration) Option {
	return func(r *Recorder) {
		if interval < time.Second {
			r.validationErrors = append(r.validationErrors,
				fmt.Errorf("export interval must be at least 1s, got %s", interval))
			return
		}
		r.exportInterval = interval
	}
}

// WithDurationBuckets overrides the dispatch duration histogram boundaries,
// in seconds.
func WithDurationBuckets(buckets []float64) Option {
	return func(r *Recorder) {
		if len(buckets) == 0 {
			r.validationErrors = append(r.validationErrors,
				fmt.Errorf("duration buckets must not be empty"))
			return
		}
		r.durationBuckets = buckets
	}
}

// WithEventHandler sets the handler for internal operational events.
func WithEventHandler(handler EventHandler) Option {
	return func(r *Recorder) {
		r.eventHandler = handler
	}
}

// WithLogger routes internal operational events to the given slog.Logger.
// Shorthand for WithEventHandler(DefaultEventHandler(logger)).
func WithLogger(logger *slog.Logger) Option {
	return func(r *Recorder) {
		r.eventHandler = DefaultEventHandler(logger)
	}
}

// WithDisabled turns the recorder into a no-op. Dispatch hooks return
// immediately and no provider is initialized.
func WithDisabled() Option {
	return func(r *Recorder) {
		r.enabled = false
	}
}
