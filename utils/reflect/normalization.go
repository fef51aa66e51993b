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

package reflect

import (
	"errors"
	"reflect"

	"dirpx.dev/omx/apis"
	"dirpx.dev/omx/policy"
)

var (
	// ErrReflectNilType is returned when a nil reflect.Type is provided.
	ErrReflectNilType = errors.New("reflect: nil reflect.Type provided")
	// ErrReflectTypeNotNamed indicates that the provided type (after peeling
	// containers) carries no named type a kind label could be derived from
	// (e.g. anonymous struct, func, interface{}).
	ErrReflectTypeNotNamed = errors.New("reflect: type has no usable kind label")
)

// Normalize peels container types off t until it reaches the named type a
// kind label can be derived from. Models are usually handed around as
// pointers, and occasionally as slices of rows or maps of widgets; labelling
// wants the model type inside, not the container.
//
// Pointers, slices, arrays and channels peel to their element. For a map the
// label can live on either side: the side preferred by pol.MapPreferElem
// wins when it is named, then the other side is tried, and an unnamed pair
// continues the peel into the element. Anything else must already carry a
// name. pol.MaxUnwrap bounds the peeling; values < 1 fall back to
// policy.DefaultMaxUnwrap.
func Normalize(t reflect.Type, pol apis.Policy) (reflect.Type, error) {
	if t == nil {
		return nil, ErrReflectNilType
	}
	limit := pol.MaxUnwrap
	if limit <= 0 {
		limit = policy.DefaultMaxUnwrap
	}

	for step := 0; t != nil && step < limit; step++ {
		switch t.Kind() {
		case reflect.Ptr, reflect.Slice, reflect.Array, reflect.Chan:
			t = t.Elem()

		case reflect.Map:
			if nt, ok := mapSide(t, pol.MapPreferElem); ok {
				return nt, nil
			}
			t = t.Elem()

		default:
			if nt, ok := named(t); ok {
				return nt, nil
			}
			return nil, ErrReflectTypeNotNamed
		}
	}

	// The peel budget ran out; whatever is left must be named.
	if nt, ok := named(t); ok {
		return nt, nil
	}
	return nil, ErrReflectTypeNotNamed
}

// mapSide picks the named side of a map type: the preferred side when it is
// named, the other side as fallback, none when both are anonymous.
func mapSide(t reflect.Type, preferElem bool) (reflect.Type, bool) {
	first, second := t.Key(), t.Elem()
	if preferElem {
		first, second = second, first
	}
	if nt, ok := named(first); ok {
		return nt, true
	}
	return named(second)
}

// named returns t when it carries a type name.
func named(t reflect.Type) (reflect.Type, bool) {
	if t != nil && t.Name() != "" {
		return t, true
	}
	return nil, false
}
