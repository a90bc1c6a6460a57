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
	"errors"
	"net/http"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatchFirstMatchWins(t *testing.T) {
	t.Parallel()

	b := NewBuilder(struct{}{})
	// Both patterns fully match /users/admin; the first registration wins.
	require.NoError(t, b.Handle(http.MethodGet, regexp.MustCompile(`/users/\w+`), okHandler("broad")))
	require.NoError(t, b.Handle(http.MethodGet, regexp.MustCompile(`/users/admin`), okHandler("specific")))

	r, err := b.Build()
	require.NoError(t, err)

	res, matched, err := r.Dispatch(context.Background(), NewRequest(http.MethodGet, "/users/admin"))
	require.NoError(t, err)
	require.True(t, matched)
	assert.Equal(t, "broad", res)
}

func TestDispatchFullMatchRequired(t *testing.T) {
	t.Parallel()

	b := NewBuilder(struct{}{})
	require.NoError(t, b.Handle(http.MethodGet, regexp.MustCompile(`/users/(\d+)`), okHandler("user")))

	r, err := b.Build()
	require.NoError(t, err)

	tests := []struct {
		name    string
		path    string
		matched bool
	}{
		{name: "exact", path: "/users/5", matched: true},
		{name: "trailing segment", path: "/users/5/extra", matched: false},
		{name: "trailing slash", path: "/users/5/", matched: false},
		{name: "leading prefix", path: "/api/users/5", matched: false},
		{name: "partial digit run", path: "/users/5x", matched: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, matched, err := r.Dispatch(context.Background(), NewRequest(http.MethodGet, tt.path))
			require.NoError(t, err)
			assert.Equal(t, tt.matched, matched)
		})
	}
}

func TestDispatchAlternationFullMatch(t *testing.T) {
	t.Parallel()

	// Leftmost-match semantics would pick the shorter branch "a" and make an
	// offset check reject "ab"; anchoring has to find the full match instead.
	b := NewBuilder(struct{}{})
	require.NoError(t, b.Handle(http.MethodGet, regexp.MustCompile(`a|ab`), okHandler("hit")))

	r, err := b.Build()
	require.NoError(t, err)

	for _, path := range []string{"a", "ab"} {
		_, matched, err := r.Dispatch(context.Background(), NewRequest(http.MethodGet, path))
		require.NoError(t, err)
		assert.True(t, matched, "path %q", path)
	}

	_, matched, err := r.Dispatch(context.Background(), NewRequest(http.MethodGet, "abc"))
	require.NoError(t, err)
	assert.False(t, matched)
}

func TestDispatchMethodCaseInsensitive(t *testing.T) {
	t.Parallel()

	b := NewBuilder(struct{}{})
	require.NoError(t, b.Handle("GeT", regexp.MustCompile(`/mixed`), okHandler("ok")))

	r, err := b.Build()
	require.NoError(t, err)

	for _, method := range []string{"GET", "get", "GeT", "gEt"} {
		_, matched, err := r.Dispatch(context.Background(), NewRequest(method, "/mixed"))
		require.NoError(t, err)
		assert.True(t, matched, "method %q", method)
	}
}

func TestDispatchMethodBuckets(t *testing.T) {
	t.Parallel()

	b := NewBuilder(struct{}{})
	require.NoError(t, b.Handle(http.MethodGet, regexp.MustCompile(`/things`), okHandler("list")))
	require.NoError(t, b.Handle(http.MethodPost, regexp.MustCompile(`/things`), okHandler("create")))
	require.NoError(t, b.AddMapping(
		[]string{http.MethodPut, http.MethodPatch},
		regexp.MustCompile(`/things/(\d+)`),
		okHandler("update"),
	))

	r, err := b.Build()
	require.NoError(t, err)

	res, matched, err := r.Dispatch(context.Background(), NewRequest(http.MethodGet, "/things"))
	require.NoError(t, err)
	require.True(t, matched)
	assert.Equal(t, "list", res)

	res, matched, err = r.Dispatch(context.Background(), NewRequest(http.MethodPost, "/things"))
	require.NoError(t, err)
	require.True(t, matched)
	assert.Equal(t, "create", res)

	for _, method := range []string{http.MethodPut, http.MethodPatch} {
		res, matched, err = r.Dispatch(context.Background(), NewRequest(method, "/things/3"))
		require.NoError(t, err)
		require.True(t, matched, "method %s", method)
		assert.Equal(t, "update", res)
	}

	// A method with no bucket at all is a plain miss.
	_, matched, err = r.Dispatch(context.Background(), NewRequest(http.MethodDelete, "/things"))
	require.NoError(t, err)
	assert.False(t, matched)
}

func TestDispatchNoMatch(t *testing.T) {
	t.Parallel()

	b := NewBuilder(struct{}{})
	require.NoError(t, b.Handle(http.MethodGet, regexp.MustCompile(`/known`), okHandler("ok")))

	r, err := b.Build()
	require.NoError(t, err)

	res, matched, err := r.Dispatch(context.Background(), NewRequest(http.MethodGet, "/unknown"))
	require.NoError(t, err)
	assert.False(t, matched)
	assert.Nil(t, res)
}

func TestDispatchEmptyRouter(t *testing.T) {
	t.Parallel()

	r, err := NewBuilder(struct{}{}).Build()
	require.NoError(t, err)

	_, matched, err := r.Dispatch(context.Background(), NewRequest(http.MethodGet, "/anything"))
	require.NoError(t, err)
	assert.False(t, matched)
	assert.Empty(t, r.Routes())
}

func TestDispatchHandlerErrorPropagates(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")
	invoked := 0

	b := NewBuilder(struct{}{})
	require.NoError(t, b.Handle(http.MethodGet, regexp.MustCompile(`/fail`),
		func(context.Context, struct{}, *RouteParams, Request) (Responder, error) {
			invoked++
			return nil, errBoom
		}))
	// A later mapping that also matches must not be consulted on handler error.
	require.NoError(t, b.Handle(http.MethodGet, regexp.MustCompile(`/fail`), okHandler("fallback")))

	r, err := b.Build()
	require.NoError(t, err)

	res, matched, err := r.Dispatch(context.Background(), NewRequest(http.MethodGet, "/fail"))
	assert.True(t, matched)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, errBoom)
	assert.Equal(t, 1, invoked)
}

func TestDispatchParamsBoundToMatch(t *testing.T) {
	t.Parallel()

	b := NewBuilder(struct{}{})
	require.NoError(t, b.Handle(http.MethodGet, regexp.MustCompile(`/users/(?P<id>\d+)`),
		func(_ context.Context, _ struct{}, params *RouteParams, _ Request) (Responder, error) {
			return params.Named("id")
		}))

	r, err := b.Build()
	require.NoError(t, err)

	res, matched, err := r.Dispatch(context.Background(), NewRequest(http.MethodGet, "/users/123"))
	require.NoError(t, err)
	require.True(t, matched)
	assert.Equal(t, "123", res)
}

func TestHandlerForRequest(t *testing.T) {
	t.Parallel()

	b := NewBuilder("shared")
	require.NoError(t, b.Handle(http.MethodGet, regexp.MustCompile(`/users/(?P<id>\d+)`),
		func(_ context.Context, rctx string, params *RouteParams, _ Request) (Responder, error) {
			id, err := params.Named("id")
			if err != nil {
				return nil, err
			}
			return rctx + ":" + id, nil
		}))

	r, err := b.Build()
	require.NoError(t, err)

	req := NewRequest(http.MethodGet, "/users/42")
	h, ok := r.HandlerForRequest(req)
	require.True(t, ok)

	// Lookup and invocation are separate; the bound handler carries the
	// router context and the params from the lookup-time match.
	res, err := h(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "shared:42", res)

	_, ok = r.HandlerForRequest(NewRequest(http.MethodGet, "/nope"))
	assert.False(t, ok)
}

func TestDispatchContextPropagation(t *testing.T) {
	t.Parallel()

	type ctxKey struct{}
	var got any

	b := NewBuilder(struct{}{})
	require.NoError(t, b.Handle(http.MethodGet, regexp.MustCompile(`/ctx`),
		func(ctx context.Context, _ struct{}, _ *RouteParams, _ Request) (Responder, error) {
			got = ctx.Value(ctxKey{})
			return nil, nil
		}))

	r, err := b.Build()
	require.NoError(t, err)

	ctx := context.WithValue(context.Background(), ctxKey{}, "payload")
	_, matched, err := r.Dispatch(ctx, NewRequest(http.MethodGet, "/ctx"))
	require.NoError(t, err)
	require.True(t, matched)
	assert.Equal(t, "payload", got)
}

func TestRequestAccessors(t *testing.T) {
	t.Parallel()

	req := NewRequest(http.MethodPost, "/a/b")
	assert.Equal(t, http.MethodPost, req.Method())
	assert.Equal(t, "/a/b", req.Path())
}
