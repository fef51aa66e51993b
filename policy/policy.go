/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package policy holds the tunables of kind-label resolution: whether
// builtin types get labels, how deep container peeling goes, and which
// side of a map carries the label.
package policy

import (
	"dirpx.dev/omx/apis"
)

const (
	// DefaultIncludeBuiltins labels builtin types ("int", "string") rather
	// than hiding them.
	DefaultIncludeBuiltins = true
	// DefaultMaxUnwrap bounds container peeling. Eight layers cover any
	// container nesting that occurs in practice.
	DefaultMaxUnwrap = 8
	// DefaultMapPreferElem labels maps by their element side, matching the
	// common name-to-model map shape.
	DefaultMapPreferElem = true
)

// Default returns the stock policy.
func Default() apis.Policy {
	return apis.Policy{
		IncludeBuiltins: DefaultIncludeBuiltins,
		MaxUnwrap:       DefaultMaxUnwrap,
		MapPreferElem:   DefaultMapPreferElem,
	}
}

// New builds a policy starting from Default and applying opts in order.
func New(opts ...Option) apis.Policy {
	pol := Default()
	for _, opt := range opts {
		opt(&pol)
	}
	return sanitize(pol)
}

// sanitize repairs out-of-range knobs. Only negative MaxUnwrap resets;
// zero is a legal "no peeling" setting.
func sanitize(p apis.Policy) apis.Policy {
	if p.MaxUnwrap < 0 {
		p.MaxUnwrap = DefaultMaxUnwrap
	}
	return p
}

// Option mutates an apis.Policy during construction.
type Option func(*apis.Policy)

// WithIncludeBuiltins sets whether builtin types receive labels.
func WithIncludeBuiltins(include bool) Option {
	return func(p *apis.Policy) {
		p.IncludeBuiltins = include
	}
}

// WithMaxUnwrap sets the container peeling bound. A negative value resets
// to the default.
func WithMaxUnwrap(max int) Option {
	return func(p *apis.Policy) {
		if max < 0 {
			p.MaxUnwrap = DefaultMaxUnwrap
			return
		}
		p.MaxUnwrap = max
	}
}

// WithMapPreferElem sets which map side is consulted first for labels.
func WithMapPreferElem(prefer bool) Option {
	return func(p *apis.Policy) {
		p.MapPreferElem = prefer
	}
}
