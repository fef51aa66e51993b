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

package model

import (
	"fmt"
	"reflect"

	"dirpx.dev/omx/apis"
)

// DefaultBindDepth bounds the nesting Bind will descend into.
const DefaultBindDepth = 32

// BindOption configures a Bind walk.
type BindOption func(*binder)

// WithBindDepth overrides the maximum nesting depth. Values < 1 are ignored.
func WithBindDepth(n int) BindOption {
	return func(bd *binder) {
		if n > 0 {
			bd.maxDepth = n
		}
	}
}

// Bind is the declaration-time form of composition interception: it
// reflectively walks root's struct fields and stitches every reachable
// model to its container, so a declared tree needs no per-field Attach
// calls.
//
// The walk visits exported fields only; embedded structs are traversed
// transparently at any depth, so layered model types stitch the fields of
// all their layers to the outermost instance. Pointers are followed,
// slice and array elements are stitched under "field[i]" slots, and
// pointer-valued map entries under "field[key]" slots. Values that are
// not models are skipped silently. Models that already have a parent keep
// it (explicit WithParent wins); each newly stitched child is then walked
// in turn. Every model is visited at most once, so back-references to an
// ancestor are left alone rather than reported as cycles.
func Bind(root apis.Parentable, opts ...BindOption) error {
	if isNilRef(root) {
		return nil
	}
	bd := &binder{
		maxDepth: DefaultBindDepth,
		visited:  make(map[*Base]bool),
	}
	for _, o := range opts {
		if o != nil {
			o(bd)
		}
	}
	if rb := baseOf(root); rb != nil {
		rb.captureSelf(root)
		bd.visited[rb] = true
	}
	rv := reflect.ValueOf(root)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}
	return bd.walk(root, rv, 0)
}

// binder carries the state of one Bind call.
type binder struct {
	maxDepth int
	visited  map[*Base]bool
}

// walk stitches the model fields of one struct layer. Embedded layers run
// at the same depth as their container; child models descend one level.
func (bd *binder) walk(container apis.Parentable, v reflect.Value, depth int) error {
	if depth > bd.maxDepth {
		return &StructuralError{
			Op:     "bind",
			Child:  pathOf(container),
			Reason: fmt.Sprintf("nesting exceeds depth limit %d", bd.maxDepth),
		}
	}

	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		fv := v.Field(i)

		if f.Anonymous {
			av := fv
			if av.Kind() == reflect.Ptr {
				if av.IsNil() {
					continue
				}
				av = av.Elem()
			}
			if av.Kind() == reflect.Struct {
				// A layer of the same model (including the Base embed itself)
				// is traversed in place; a distinct embedded model is treated
				// as a regular child below.
				p, _, isModel := asParentable(fv)
				if !isModel || sameModel(p, container) {
					if err := bd.walk(container, av, depth); err != nil {
						return err
					}
					continue
				}
			}
		}

		if err := bd.field(container, f.Name, fv, depth); err != nil {
			return err
		}
	}
	return nil
}

// field stitches a single field value: a model directly, or the model
// elements of a slice, array or map.
func (bd *binder) field(container apis.Parentable, attr string, fv reflect.Value, depth int) error {
	if p, sv, ok := asParentable(fv); ok {
		return bd.stitch(container, attr, p, sv, depth)
	}

	switch fv.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < fv.Len(); i++ {
			if p, sv, ok := asParentable(fv.Index(i)); ok {
				slot := fmt.Sprintf("%s[%d]", attr, i)
				if err := bd.stitch(container, slot, p, sv, depth); err != nil {
					return err
				}
			}
		}
	case reflect.Map:
		// Map values are not addressable; only pointer (or interface)
		// entries can be linked.
		ek := fv.Type().Elem().Kind()
		if ek != reflect.Ptr && ek != reflect.Interface {
			return nil
		}
		iter := fv.MapRange()
		for iter.Next() {
			if p, sv, ok := asParentable(iter.Value()); ok {
				slot := fmt.Sprintf("%s[%v]", attr, iter.Key().Interface())
				if err := bd.stitch(container, slot, p, sv, depth); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// stitch links one discovered child and recurses into it.
func (bd *binder) stitch(container apis.Parentable, attr string, child apis.Parentable, sv reflect.Value, depth int) error {
	cb := baseOf(child)
	if cb == nil {
		// Foreign Parentable: nothing to link into.
		return nil
	}
	if bd.visited[cb] {
		return nil
	}
	bd.visited[cb] = true

	if cb.parent != nil && !sameModel(cb.parent, container) {
		// Parented elsewhere: the explicit composition wins, and its own
		// tree is not ours to walk.
		return nil
	}
	if err := Attach(container, attr, child); err != nil {
		return err
	}
	if sv.IsValid() && sv.Kind() == reflect.Struct {
		return bd.walk(child, sv, depth+1)
	}
	return nil
}

// asParentable extracts a model from a reflect value: a non-nil pointer or
// interface implementing apis.Parentable, or an addressable struct whose
// pointer implements it. The second result is the struct value to recurse
// into, when there is one.
func asParentable(fv reflect.Value) (apis.Parentable, reflect.Value, bool) {
	switch fv.Kind() {
	case reflect.Ptr:
		if fv.IsNil() {
			return nil, reflect.Value{}, false
		}
		if p, ok := fv.Interface().(apis.Parentable); ok {
			return p, fv.Elem(), true
		}
	case reflect.Interface:
		if fv.IsNil() {
			return nil, reflect.Value{}, false
		}
		if p, ok := fv.Interface().(apis.Parentable); ok {
			ev := fv.Elem()
			for ev.Kind() == reflect.Ptr {
				if ev.IsNil() {
					return nil, reflect.Value{}, false
				}
				ev = ev.Elem()
			}
			return p, ev, true
		}
	case reflect.Struct:
		if fv.CanAddr() {
			if p, ok := fv.Addr().Interface().(apis.Parentable); ok {
				return p, fv, true
			}
		}
	}
	return nil, reflect.Value{}, false
}
