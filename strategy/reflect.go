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
	"sync"

	"dirpx.dev/omx/apis"
	uref "dirpx.dev/omx/utils/reflect"
)

// NewReflectStrategy creates the apis.Strategy that derives kind labels from
// type information. It is the universal fallback at the end of the chain:
// every type gets a stable "pkg.Type" label via utils/reflect.TypeLabel,
// memoized per strategy instance.
func NewReflectStrategy() apis.Strategy {
	return &reflectStrategy{}
}

type reflectStrategy struct {
	// labels memoizes TypeLabel results keyed by type and the policy knobs
	// the label depends on. The cache lives on the instance, so a rebuilt
	// resolver starts clean.
	labels sync.Map // labelKey -> string
}

var _ apis.Strategy = (*reflectStrategy)(nil)

// labelKey carries every policy knob that can change a label; two lookups
// with different knobs must never share a cache entry.
type labelKey struct {
	typ        reflect.Type
	builtins   bool
	unwrap     int16
	preferElem bool
}

// TryResolve derives the kind label from v's dynamic type.
func (s *reflectStrategy) TryResolve(v any, pol apis.Policy) (string, bool) {
	if v == nil {
		return "", false
	}
	return s.TryResolveType(reflect.TypeOf(v), pol)
}

// TryResolveType derives the kind label for t. The bool is always true for a
// non-nil type: reflection is the last word, even when the label is empty.
func (s *reflectStrategy) TryResolveType(t reflect.Type, pol apis.Policy) (string, bool) {
	if t == nil {
		return "", false
	}
	key := labelKey{
		typ:        t,
		builtins:   pol.IncludeBuiltins,
		unwrap:     int16(pol.MaxUnwrap),
		preferElem: pol.MapPreferElem,
	}
	if v, ok := s.labels.Load(key); ok {
		return v.(string), true
	}
	label := uref.TypeLabel(t, pol)
	s.labels.Store(key, label)
	return label, true
}
