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

package stdhttp

import (
	"fmt"
	"log/slog"
	"net/http"

	"rivaas.dev/regexrouter"
)

// Handler serves HTTP by dispatching through a Router and rendering the
// result. It holds the status-code policy the router deliberately leaves out:
// no match falls through to the no-route handler, handler errors become 500s.
type Handler[Ctx any] struct {
	router  *regexrouter.Router[Ctx]
	noRoute http.Handler
	logger  *slog.Logger
}

// Compile-time check that Handler implements http.Handler.
var _ http.Handler = (*Handler[struct{}])(nil)

// HandlerOption configures a Handler.
type HandlerOption func(*handlerConfig)

type handlerConfig struct {
	noRoute http.Handler
	logger  *slog.Logger
}

// WithNoRoute sets the handler invoked when no route matches the request.
// Defaults to http.NotFound.
func WithNoRoute(h http.Handler) HandlerOption {
	return func(cfg *handlerConfig) {
		cfg.noRoute = h
	}
}

// WithLogger sets the logger used for handler and response-write errors.
// Defaults to the router package's no-op logger.
func WithLogger(logger *slog.Logger) HandlerOption {
	return func(cfg *handlerConfig) {
		cfg.logger = logger
	}
}

// NewHandler wraps a Router as an http.Handler.
func NewHandler[Ctx any](router *regexrouter.Router[Ctx], opts ...HandlerOption) *Handler[Ctx] {
	cfg := handlerConfig{
		noRoute: http.HandlerFunc(http.NotFound),
		logger:  regexrouter.NoopLogger(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Handler[Ctx]{
		router:  router,
		noRoute: cfg.noRoute,
		logger:  cfg.logger,
	}
}

// ServeHTTP implements http.Handler. It dispatches the request through the
// router and renders the returned Responder:
//
//   - ResponseWriterTo values write themselves
//   - http.Handler values are invoked with the original request
//   - nil produces 204 No Content
//
// Any other Responder type is a programming error and is reported as a 500.
func (h *Handler[Ctx]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	res, matched, err := h.router.Dispatch(r.Context(), NewRequest(r))
	if !matched {
		h.noRoute.ServeHTTP(w, r)
		return
	}
	if err != nil {
		h.logger.Error("handler failed",
			"method", r.Method, "path", r.URL.Path, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	switch res := res.(type) {
	case nil:
		w.WriteHeader(http.StatusNoContent)
	case ResponseWriterTo:
		if err := res.WriteResponse(w, r); err != nil {
			// Headers may already be out; logging is all that is left.
			h.logger.Error("write response failed",
				"method", r.Method, "path", r.URL.Path, "error", err)
		}
	case http.Handler:
		res.ServeHTTP(w, r)
	default:
		h.logger.Error("unsupported responder type",
			"method", r.Method, "path", r.URL.Path, "type", fmt.Sprintf("%T", res))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
