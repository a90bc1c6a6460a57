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
	"encoding/json"
	"fmt"
	"net/http"
)

// ResponseWriterTo is the Responder contract this bridge understands: a
// value returned from a handler that knows how to write itself to the
// response. Responders that implement http.Handler are also accepted.
type ResponseWriterTo interface {
	WriteResponse(w http.ResponseWriter, r *http.Request) error
}

// Response is a simple status/header/body triple implementing
// ResponseWriterTo. Handlers that need streaming or trailers should return a
// custom ResponseWriterTo instead.
type Response struct {
	Status int
	Header http.Header
	Body   []byte
}

// WriteResponse implements ResponseWriterTo.
func (resp Response) WriteResponse(w http.ResponseWriter, _ *http.Request) error {
	for key, values := range resp.Header {
		for _, v := range values {
			w.Header().Add(key, v)
		}
	}

	status := resp.Status
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)

	if len(resp.Body) > 0 {
		if _, err := w.Write(resp.Body); err != nil {
			return fmt.Errorf("write response body: %w", err)
		}
	}
	return nil
}

// Text builds a text/plain Response.
func Text(status int, body string) Response {
	return Response{
		Status: status,
		Header: http.Header{"Content-Type": {"text/plain; charset=utf-8"}},
		Body:   []byte(body),
	}
}

// JSON builds an application/json Response by marshaling v.
func JSON(status int, v any) (Response, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return Response{}, fmt.Errorf("marshal JSON response: %w", err)
	}
	return Response{
		Status: status,
		Header: http.Header{"Content-Type": {"application/json"}},
		Body:   body,
	}, nil
}
