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

package benchmarks

import (
	"context"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/mux"
	"github.com/labstack/echo/v4"

	"rivaas.dev/regexrouter"
	"rivaas.dev/regexrouter/stdhttp"
)

// Router Comparison Benchmarks
//
// This file contains comparative benchmarks between regexrouter and other
// popular Go routers. These benchmarks are isolated in a separate module to
// avoid polluting the main module's dependencies.
//
// regexrouter trades matching speed for expressiveness: every route is a full
// regular expression, and lookup is a linear scan over the method bucket. The
// trie-based routers here are expected to win on raw dispatch time; the
// interesting numbers are the constant factors and allocation counts.
//
// To run these benchmarks:
//   cd benchmarks
//   go test -bench=.

func newRegexRouter(b *testing.B) http.Handler {
	b.Helper()

	rb := regexrouter.NewBuilder(struct{}{})

	_ = rb.Handle(http.MethodGet, regexp.MustCompile(`/`),
		func(context.Context, struct{}, *regexrouter.RouteParams, regexrouter.Request) (regexrouter.Responder, error) {
			return stdhttp.Text(http.StatusOK, "Hello"), nil
		})
	_ = rb.Handle(http.MethodGet, regexp.MustCompile(`/users/(?P<id>\d+)`),
		func(_ context.Context, _ struct{}, params *regexrouter.RouteParams, _ regexrouter.Request) (regexrouter.Responder, error) {
			id, _ := params.Named("id")
			return stdhttp.Text(http.StatusOK, "User: "+id), nil
		})
	_ = rb.Handle(http.MethodGet, regexp.MustCompile(`/users/(?P<id>\d+)/posts/(?P<post_id>\d+)`),
		func(_ context.Context, _ struct{}, params *regexrouter.RouteParams, _ regexrouter.Request) (regexrouter.Responder, error) {
			id, _ := params.Named("id")
			postID, _ := params.Named("post_id")
			return stdhttp.Text(http.StatusOK, "User: "+id+", Post: "+postID), nil
		})

	return stdhttp.NewHandler(rb.MustBuild())
}

// BenchmarkRegexRouter benchmarks dispatch through the net/http bridge.
func BenchmarkRegexRouter(b *testing.B) {
	h := newRegexRouter(b)

	req := httptest.NewRequest(http.MethodGet, "/users/123", nil)
	w := httptest.NewRecorder()

	b.ResetTimer()
	for b.Loop() {
		w.Body.Reset()
		w.Code = 0
		w.Flushed = false
		h.ServeHTTP(w, req)
	}
}

// BenchmarkRegexRouterDispatchOnly benchmarks the core dispatch path without
// response rendering, which is what a custom transport would pay.
func BenchmarkRegexRouterDispatchOnly(b *testing.B) {
	rb := regexrouter.NewBuilder(struct{}{})
	_ = rb.Handle(http.MethodGet, regexp.MustCompile(`/users/(?P<id>\d+)`),
		func(_ context.Context, _ struct{}, params *regexrouter.RouteParams, _ regexrouter.Request) (regexrouter.Responder, error) {
			return params.Named("id")
		})
	r := rb.MustBuild()

	ctx := context.Background()
	req := regexrouter.NewRequest(http.MethodGet, "/users/123")

	b.ResetTimer()
	for b.Loop() {
		_, _, _ = r.Dispatch(ctx, req)
	}
}

// BenchmarkRegexRouterDeepTable benchmarks worst-case linear scanning: the
// matching route is the last of 50 in its method bucket.
func BenchmarkRegexRouterDeepTable(b *testing.B) {
	rb := regexrouter.NewBuilder(struct{}{})
	for i := 0; i < 50; i++ {
		_ = rb.Handle(http.MethodGet, regexp.MustCompile(`/miss/`+regexp.QuoteMeta(string(rune('a'+i%26)))+`/\d+`),
			func(context.Context, struct{}, *regexrouter.RouteParams, regexrouter.Request) (regexrouter.Responder, error) {
				return nil, nil
			})
	}
	_ = rb.Handle(http.MethodGet, regexp.MustCompile(`/users/(?P<id>\d+)`),
		func(_ context.Context, _ struct{}, params *regexrouter.RouteParams, _ regexrouter.Request) (regexrouter.Responder, error) {
			return params.Named("id")
		})
	r := rb.MustBuild()

	ctx := context.Background()
	req := regexrouter.NewRequest(http.MethodGet, "/users/123")

	b.ResetTimer()
	for b.Loop() {
		_, _, _ = r.Dispatch(ctx, req)
	}
}

// BenchmarkStandardMux benchmarks Go's standard library mux
func BenchmarkStandardMux(b *testing.B) {
	m := http.NewServeMux()
	m.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Hello"))
	})
	m.HandleFunc("/users/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("User: " + r.PathValue("id")))
	})
	m.HandleFunc("/users/{id}/posts/{post_id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("User: " + r.PathValue("id") + ", Post: " + r.PathValue("post_id")))
	})

	req := httptest.NewRequest(http.MethodGet, "/users/123", nil)
	w := httptest.NewRecorder()

	b.ResetTimer()
	for b.Loop() {
		w.Body.Reset()
		w.Code = 0
		w.Flushed = false
		m.ServeHTTP(w, req)
	}
}

// BenchmarkGinRouter benchmarks Gin router
func BenchmarkGinRouter(b *testing.B) {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Hello")
	})
	r.GET("/users/:id", func(c *gin.Context) {
		c.String(http.StatusOK, "User: %s", c.Param("id"))
	})
	r.GET("/users/:id/posts/:post_id", func(c *gin.Context) {
		c.String(http.StatusOK, "User: %s, Post: %s", c.Param("id"), c.Param("post_id"))
	})

	req := httptest.NewRequest(http.MethodGet, "/users/123", nil)
	w := httptest.NewRecorder()

	b.ResetTimer()
	for b.Loop() {
		w.Body.Reset()
		w.Code = 0
		w.Flushed = false
		r.ServeHTTP(w, req)
	}
}

// BenchmarkEchoRouter benchmarks Echo router
func BenchmarkEchoRouter(b *testing.B) {
	e := echo.New()
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Hello")
	})
	e.GET("/users/:id", func(c echo.Context) error {
		return c.String(http.StatusOK, "User: "+c.Param("id"))
	})
	e.GET("/users/:id/posts/:post_id", func(c echo.Context) error {
		return c.String(http.StatusOK, "User: "+c.Param("id")+", Post: "+c.Param("post_id"))
	})

	req := httptest.NewRequest(http.MethodGet, "/users/123", nil)
	w := httptest.NewRecorder()

	b.ResetTimer()
	for b.Loop() {
		w.Body.Reset()
		w.Code = 0
		w.Flushed = false
		e.ServeHTTP(w, req)
	}
}

// BenchmarkChiRouter benchmarks Chi router
func BenchmarkChiRouter(b *testing.B) {
	r := chi.NewRouter()
	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Hello"))
	})
	r.Get("/users/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("User: " + chi.URLParam(r, "id")))
	})
	r.Get("/users/{id}/posts/{post_id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("User: " + chi.URLParam(r, "id") + ", Post: " + chi.URLParam(r, "post_id")))
	})

	req := httptest.NewRequest(http.MethodGet, "/users/123", nil)
	w := httptest.NewRecorder()

	b.ResetTimer()
	for b.Loop() {
		w.Body.Reset()
		w.Code = 0
		w.Flushed = false
		r.ServeHTTP(w, req)
	}
}

// BenchmarkGorillaMux benchmarks gorilla/mux, the closest neighbor in spirit:
// it also supports regex constraints in route patterns.
func BenchmarkGorillaMux(b *testing.B) {
	r := mux.NewRouter()
	r.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Hello"))
	}).Methods(http.MethodGet)
	r.HandleFunc("/users/{id:[0-9]+}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("User: " + mux.Vars(r)["id"]))
	}).Methods(http.MethodGet)
	r.HandleFunc("/users/{id:[0-9]+}/posts/{post_id:[0-9]+}", func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("User: " + vars["id"] + ", Post: " + vars["post_id"]))
	}).Methods(http.MethodGet)

	req := httptest.NewRequest(http.MethodGet, "/users/123", nil)
	w := httptest.NewRecorder()

	b.ResetTimer()
	for b.Loop() {
		w.Body.Reset()
		w.Code = 0
		w.Flushed = false
		r.ServeHTTP(w, req)
	}
}
