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

package resolver

import (
	"reflect"

	"dirpx.dev/omx/apis"
)

// New builds the apis.Resolver that asks each strategy in turn and takes
// the first answer. The stock chain assembled by the builder asks
// self-labelling models first, then explicit registrations, then
// reflection; custom chains compose the same way. Nil strategies are
// dropped here so the ask loop never trips over one.
//
// The resolver itself holds no state; it is safe for concurrent use
// whenever the strategies are.
func New(strategies ...apis.Strategy) apis.Resolver {
	var c chain
	for _, s := range strategies {
		if s != nil {
			c.steps = append(c.steps, s)
		}
	}
	return c
}

// chain holds the strategies in ask order, fixed at construction.
type chain struct {
	steps []apis.Strategy
}

// Resolve returns the first strategy's kind label for v, or "" when every
// strategy passes.
func (c chain) Resolve(v any, pol apis.Policy) string {
	for _, s := range c.steps {
		if kind, ok := s.TryResolve(v, pol); ok {
			return kind
		}
	}
	return ""
}

// ResolveType returns the first strategy's kind label for t, or "" when
// every strategy passes.
func (c chain) ResolveType(t reflect.Type, pol apis.Policy) string {
	for _, s := range c.steps {
		if kind, ok := s.TryResolveType(t, pol); ok {
			return kind
		}
	}
	return ""
}
