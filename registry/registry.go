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

package registry

import (
	"errors"
	"reflect"
	"sync"

	"dirpx.dev/omx/apis"
	"dirpx.dev/omx/policy"
	uref "dirpx.dev/omx/utils/reflect"
)

var (
	// ErrNilType is returned when a nil reflect.Type is provided.
	ErrNilType = errors.New("omx(registry): nil reflect.Type provided")
	// ErrEmptyKind is returned when an empty kind label is provided.
	ErrEmptyKind = errors.New("omx(registry): empty kind label provided")
	// ErrConflictingRegistration indicates an attempt to re-register
	// a type with a different kind label.
	ErrConflictingRegistration = errors.New("omx(registry): conflicting type registration")
)

// New constructs the Registry that backs explicit kind registrations. Types
// are normalized with pol on both the register and the lookup side, so a
// kind registered for a model type also answers for pointers, slices and
// the other container shapes of it. Only MaxUnwrap and MapPreferElem
// matter here; values < 1 for MaxUnwrap fall back to the policy default.
func New(pol apis.Policy) apis.Registry {
	if pol.MaxUnwrap <= 0 {
		pol.MaxUnwrap = policy.DefaultMaxUnwrap
	}
	return &registry{pol: pol, kinds: make(map[reflect.Type]string)}
}

type registry struct {
	pol apis.Policy

	mu    sync.RWMutex
	kinds map[reflect.Type]string // nearest named type -> kind label
}

// Register associates the nearest named type of t with the given kind
// label. Registering the same pair again is a no-op; a different label for
// an already registered type is ErrConflictingRegistration.
func (r *registry) Register(t reflect.Type, kind string) error {
	if t == nil {
		return ErrNilType
	}
	if kind == "" {
		return ErrEmptyKind
	}
	nt, err := uref.Normalize(t, r.pol)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if old, ok := r.kinds[nt]; ok {
		if old == kind {
			return nil
		}
		return ErrConflictingRegistration
	}
	r.kinds[nt] = kind
	return nil
}

// Lookup returns the kind label registered for t's nearest named type.
func (r *registry) Lookup(t reflect.Type) (string, bool) {
	if t == nil {
		return "", false
	}
	nt, err := uref.Normalize(t, r.pol)
	if err != nil {
		return "", false
	}

	r.mu.RLock()
	kind, ok := r.kinds[nt]
	r.mu.RUnlock()
	return kind, ok
}

// Entries returns a snapshot for diagnostics/docs (order is unspecified).
func (r *registry) Entries() []apis.Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entries := make([]apis.Entry, 0, len(r.kinds))
	for t, kind := range r.kinds {
		entries = append(entries, apis.Entry{Type: t, Kind: kind})
	}
	return entries
}

// Count returns the number of registered entries.
func (r *registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.kinds)
}

// Reset clears all registered entries.
func (r *registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.kinds = make(map[reflect.Type]string)
}
