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
	"fmt"
	"strconv"
)

// NamedInt parses a named route parameter as an int.
// Returns an error if the parameter is absent or cannot be parsed.
//
// Example:
//
//	id, err := params.NamedInt("id")
//	if err != nil {
//	    return nil, err
//	}
func (p *RouteParams) NamedInt(name string) (int, error) {
	s, err := p.Named(name)
	if err != nil {
		return 0, err
	}

	val, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s (%w)", ErrParamInvalid, name, err)
	}

	return val, nil
}

// NamedInt64 parses a named route parameter as an int64.
// Returns an error if the parameter is absent or cannot be parsed.
func (p *RouteParams) NamedInt64(name string) (int64, error) {
	s, err := p.Named(name)
	if err != nil {
		return 0, err
	}

	val, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s (%w)", ErrParamInvalid, name, err)
	}

	return val, nil
}

// NamedFloat64 parses a named route parameter as a float64.
// Returns an error if the parameter is absent or cannot be parsed.
func (p *RouteParams) NamedFloat64(name string) (float64, error) {
	s, err := p.Named(name)
	if err != nil {
		return 0, err
	}

	val, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s (%w)", ErrParamInvalid, name, err)
	}

	return val, nil
}

// PositionalInt parses a positional route parameter as an int.
// Returns an error if the index is out of range or the value cannot be parsed.
func (p *RouteParams) PositionalInt(i int) (int, error) {
	s, err := p.Positional(i)
	if err != nil {
		return 0, err
	}

	val, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %d (%w)", ErrParamInvalid, i, err)
	}

	return val, nil
}
