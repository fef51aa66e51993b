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

package omx

import (
	"errors"
	"reflect"
	"sync"
	"sync/atomic"

	"dirpx.dev/omx/apis"
	"dirpx.dev/omx/builder"
	"dirpx.dev/omx/policy"
)

var (
	// ErrNilRegistry is the panic value when a builder returns a nil registry.
	ErrNilRegistry = errors.New("omx: builder returned nil registry")
	// ErrNilResolver is the panic value when a builder returns a nil resolver.
	ErrNilResolver = errors.New("omx: builder returned nil resolver")
)

// state is one immutable snapshot of the kind-labelling machinery: the
// policy, the extension payload, the registry/resolver pair and the
// builder that produced them. A published state is never mutated;
// writers derive a copy and swap the pointer.
type state struct {
	pol apis.Policy
	ext any
	reg apis.Registry
	res apis.Resolver
	bld apis.Builder

	// preg and pres mark layers that were installed directly via
	// SetRegistry/SetResolver. Pinned layers are excluded from automatic
	// rebuilds until unpinned.
	preg bool
	pres bool
}

// rebuilt returns a copy of s with every unpinned layer rebuilt through
// s.bld. The resolver is always rebuilt after the registry so a fresh
// chain answers from the fresh table.
func (s state) rebuilt() state {
	if !s.preg {
		s.reg = s.bld.BuildRegistry(s.pol, s.reg, s.ext)
	}
	if !s.pres {
		s.res = s.bld.BuildResolver(s.pol, s.reg, s.res, s.ext)
	}
	return s
}

var (
	// st holds the current snapshot. Readers load it without locking.
	st atomic.Pointer[state]

	// buildMu serializes writers so a half-derived snapshot is never
	// published.
	buildMu sync.Mutex
)

func init() {
	s := (state{pol: policy.Default(), bld: builder.New()}).rebuilt()
	st.Store(&s)
}

// swap derives the next snapshot from the current one under the build
// lock and publishes it. Publishing a snapshot with a missing layer is a
// programming error in the installed builder and panics.
func swap(mut func(state) state) {
	buildMu.Lock()
	defer buildMu.Unlock()

	next := mut(*st.Load())
	if next.reg == nil {
		panic(ErrNilRegistry)
	}
	if next.res == nil {
		panic(ErrNilResolver)
	}
	st.Store(&next)
}

// Kind resolves the kind label of v against the current snapshot, or ""
// when no strategy answers.
func Kind(v any) string {
	s := st.Load()
	return s.res.Resolve(v, s.pol)
}

// KindType resolves the kind label of the type t against the current
// snapshot.
func KindType(t reflect.Type) string {
	s := st.Load()
	return s.res.ResolveType(t, s.pol)
}

// Describe renders the kind label of v, extended with the type's own
// description when it provides one via apis.KindDescriber:
// "pages.LoginPage: entry page of the application". Descriptions are
// type-level; per-instance detail belongs to the model itself (its
// String, Path and LogValue).
func Describe(v any) string {
	kind := Kind(v)
	d, ok := v.(apis.KindDescriber)
	if !ok {
		return kind
	}
	desc := d.KindDescription()
	switch {
	case desc == "":
		return kind
	case kind == "":
		return desc
	default:
		return kind + ": " + desc
	}
}

// RegisterKind adds a type-to-kind-label association to the current
// registry.
func RegisterKind(t reflect.Type, kind string) error {
	return st.Load().reg.Register(t, kind)
}

// Policy returns the policy of the current snapshot.
func Policy() apis.Policy {
	return st.Load().pol
}

// SetPolicy publishes a snapshot with pol, rebuilding the unpinned
// layers so labels are computed under the new rules.
func SetPolicy(pol apis.Policy) {
	swap(func(s state) state {
		s.pol = pol
		return s.rebuilt()
	})
}

// Registry returns the registry of the current snapshot.
func Registry() apis.Registry {
	return st.Load().reg
}

// SetRegistry installs reg as the process-wide registry and pins it:
// later rebuilds leave it alone until UnpinRegistry. The resolver is
// rebuilt against reg unless it is pinned itself. A nil reg is ignored.
func SetRegistry(reg apis.Registry) {
	if reg == nil {
		return
	}
	swap(func(s state) state {
		s.reg = reg
		s.preg = true
		return s.rebuilt()
	})
}

// Resolver returns the resolver of the current snapshot.
func Resolver() apis.Resolver {
	return st.Load().res
}

// SetResolver installs res as the process-wide resolver and pins it.
// Nothing is rebuilt; the registry keeps whatever state it had. A nil
// res is ignored.
func SetResolver(res apis.Resolver) {
	if res == nil {
		return
	}
	swap(func(s state) state {
		s.res = res
		s.pres = true
		return s
	})
}

// Builder returns the builder of the current snapshot.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder installs b and immediately rebuilds the unpinned layers
// through it. A nil b is ignored.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}
	swap(func(s state) state {
		s.bld = b
		return s.rebuilt()
	})
}

// SetExt replaces the opaque extension payload handed to the builder and
// rebuilds the unpinned layers with it. omx itself never interprets the
// payload.
func SetExt[T any](ext T) {
	swap(func(s state) state {
		s.ext = ext
		return s.rebuilt()
	})
}

// ExtAs returns the current extension payload as T.
func ExtAs[T any]() (T, bool) {
	ext, ok := st.Load().ext.(T)
	return ext, ok
}

// SetAll replaces every snapshot component in one shot; it is the hard
// reset used by tests. A nil pol or bld keeps the current one; ext is
// always replaced. A nil reg or res is rebuilt through the (possibly
// new) builder and left unpinned; a non-nil one is installed and pinned.
func SetAll(pol *apis.Policy, ext any, reg apis.Registry, res apis.Resolver, bld apis.Builder) {
	swap(func(s state) state {
		if pol != nil {
			s.pol = *pol
		}
		s.ext = ext
		if bld != nil {
			s.bld = bld
		}
		s.preg = reg != nil
		if reg != nil {
			s.reg = reg
		}
		s.pres = res != nil
		if res != nil {
			s.res = res
		}
		return s.rebuilt()
	})
}

// IsRegistryPinned reports whether the registry is excluded from
// automatic rebuilds.
func IsRegistryPinned() bool {
	return st.Load().preg
}

// PinRegistry excludes the current registry from automatic rebuilds.
func PinRegistry() {
	swap(func(s state) state {
		s.preg = true
		return s
	})
}

// UnpinRegistry lets automatic rebuilds replace the registry again. The
// next reconfiguration rebuilds it; nothing happens immediately.
func UnpinRegistry() {
	swap(func(s state) state {
		s.preg = false
		return s
	})
}

// IsResolverPinned reports whether the resolver is excluded from
// automatic rebuilds.
func IsResolverPinned() bool {
	return st.Load().pres
}

// PinResolver excludes the current resolver from automatic rebuilds.
func PinResolver() {
	swap(func(s state) state {
		s.pres = true
		return s
	})
}

// UnpinResolver lets automatic rebuilds replace the resolver again.
func UnpinResolver() {
	swap(func(s state) state {
		s.pres = false
		return s
	})
}
