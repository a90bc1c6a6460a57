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

import "log/slog"

// config holds builder-time configuration shared by all Ctx instantiations.
type config struct {
	observer DispatchObserver
	logger   *slog.Logger
}

// Option defines functional options for router configuration.
// Options are applied by NewBuilder and take effect on the built Router.
type Option func(*config)

// WithObserver sets a DispatchObserver on the built Router. The observer
// receives lifecycle hooks around every dispatch; see TracingObserver and the
// metrics subpackage for implementations.
//
// Example:
//
//	b := regexrouter.NewBuilder(appCtx,
//	    regexrouter.WithObserver(regexrouter.NewTracingObserver()),
//	)
func WithObserver(observer DispatchObserver) Option {
	return func(c *config) {
		c.observer = observer
	}
}

// WithLogger sets a structured logger for dispatch-level debug logging.
// When unset, logging is disabled via a no-op logger.
//
// Example:
//
//	b := regexrouter.NewBuilder(appCtx,
//	    regexrouter.WithLogger(slog.Default()),
//	)
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}
