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

package strategy

import (
	"reflect"

	"dirpx.dev/omx/apis"
)

// NewRegistryStrategy creates the apis.Strategy that answers from explicit
// kind registrations. It sits between the namer fast path and the reflect
// fallback: a registered label wins over anything derived.
func NewRegistryStrategy(kinds apis.Registry) apis.Strategy {
	return &registryStrategy{kinds: kinds}
}

type registryStrategy struct {
	kinds apis.Registry
}

var _ apis.Strategy = (*registryStrategy)(nil)

// TryResolve looks up the label registered for v's dynamic type.
func (s *registryStrategy) TryResolve(v any, pol apis.Policy) (string, bool) {
	if v == nil {
		return "", false
	}
	return s.TryResolveType(reflect.TypeOf(v), pol)
}

// TryResolveType looks up the label registered for t; a miss passes the
// question down the chain.
func (s *registryStrategy) TryResolveType(t reflect.Type, _ apis.Policy) (string, bool) {
	if t == nil || s.kinds == nil {
		return "", false
	}
	return s.kinds.Lookup(t)
}
