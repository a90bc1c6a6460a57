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

// simpleRequest is a plain (method, path) pair. It is the smallest possible
// Request implementation, used in tests and by callers that drive the router
// outside an HTTP server.
type simpleRequest struct {
	method string
	path   string
}

// NewRequest returns a Request carrying just a method and a path.
// Transports with richer request types should implement Request directly
// instead of copying into this form.
func NewRequest(method, path string) Request {
	return simpleRequest{method: method, path: path}
}

func (r simpleRequest) Method() string { return r.method }

func (r simpleRequest) Path() string { return r.path }
