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

package registry_test

import (
	"errors"
	"reflect"
	"testing"

	"dirpx.dev/omx/policy"
	"dirpx.dev/omx/registry"
	uref "dirpx.dev/omx/utils/reflect"
)

// Named model types to hang kind labels on.
type SearchPage struct{}
type ResultRow struct{}

func TestRegister_NormalizesAndAnswersContainers(t *testing.T) {
	reg := registry.New(policy.Default())

	// Registering through a pointer lands on the named type behind it.
	if err := reg.Register(reflect.TypeOf(&SearchPage{}), "pages.search"); err != nil {
		t.Fatalf("Register(&SearchPage{}): %v", err)
	}

	// Every container shape of the type finds the same label.
	for _, typ := range []reflect.Type{
		reflect.TypeOf(SearchPage{}),
		reflect.TypeOf(&SearchPage{}),
		reflect.TypeOf([]SearchPage{}),
		reflect.TypeOf([]*SearchPage{}),
		reflect.TypeOf(map[string]SearchPage{}),
	} {
		if kind, ok := reg.Lookup(typ); !ok || kind != "pages.search" {
			t.Fatalf("Lookup(%v) = (%q, %v), want (pages.search, true)", typ, kind, ok)
		}
	}

	if got := reg.Count(); got != 1 {
		t.Fatalf("Count() = %d, want 1 (one named type behind all shapes)", got)
	}
}

func TestRegister_IdempotentAndConflicting(t *testing.T) {
	reg := registry.New(policy.Default())

	if err := reg.Register(reflect.TypeOf(SearchPage{}), "pages.search"); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	// The same pair again, through a different container, is a no-op.
	if err := reg.Register(reflect.TypeOf([]*SearchPage{}), "pages.search"); err != nil {
		t.Fatalf("idempotent Register: %v", err)
	}
	// A different label for the same type is refused and changes nothing.
	if err := reg.Register(reflect.TypeOf(&SearchPage{}), "pages.advanced-search"); !errors.Is(err, registry.ErrConflictingRegistration) {
		t.Fatalf("conflicting Register: got %v, want ErrConflictingRegistration", err)
	}
	if kind, _ := reg.Lookup(reflect.TypeOf(SearchPage{})); kind != "pages.search" {
		t.Fatalf("label after conflict = %q, want the original pages.search", kind)
	}
	if got := reg.Count(); got != 1 {
		t.Fatalf("Count() after conflict = %d, want 1", got)
	}
}

func TestRegister_InvalidInputs(t *testing.T) {
	reg := registry.New(policy.Default())

	if err := reg.Register(nil, "pages.search"); !errors.Is(err, registry.ErrNilType) {
		t.Fatalf("nil type: got %v, want ErrNilType", err)
	}
	if err := reg.Register(reflect.TypeOf(SearchPage{}), ""); !errors.Is(err, registry.ErrEmptyKind) {
		t.Fatalf("empty kind: got %v, want ErrEmptyKind", err)
	}
	// A type with nothing named inside cannot be registered.
	if err := reg.Register(reflect.TypeOf(struct{ X int }{}), "pages.anon"); !errors.Is(err, uref.ErrReflectTypeNotNamed) {
		t.Fatalf("anonymous type: got %v, want ErrReflectTypeNotNamed", err)
	}
}

func TestRegister_UnwrapBudget(t *testing.T) {
	tight := policy.Default()
	tight.MaxUnwrap = 1
	reg := registry.New(tight)

	// **SearchPage needs two peels; budget 1 cannot reach the named type.
	deep := reflect.TypeOf((**SearchPage)(nil))
	if err := reg.Register(deep, "pages.search"); !errors.Is(err, uref.ErrReflectTypeNotNamed) {
		t.Fatalf("tight budget: got %v, want ErrReflectTypeNotNamed", err)
	}

	wide := policy.Default()
	reg2 := registry.New(wide)
	if err := reg2.Register(deep, "pages.search"); err != nil {
		t.Fatalf("default budget: %v", err)
	}
	if kind, ok := reg2.Lookup(reflect.TypeOf(SearchPage{})); !ok || kind != "pages.search" {
		t.Fatalf("Lookup after deep Register = (%q, %v), want (pages.search, true)", kind, ok)
	}
}

func TestRegister_MapSidePreference(t *testing.T) {
	mapType := reflect.TypeOf(map[string]ResultRow{})

	// Element side preferred: the registration lands on ResultRow.
	elemPol := policy.Default()
	elemPol.MapPreferElem = true
	regElem := registry.New(elemPol)
	if err := regElem.Register(mapType, "rows.result"); err != nil {
		t.Fatalf("Register prefer elem: %v", err)
	}
	if kind, ok := regElem.Lookup(reflect.TypeOf(ResultRow{})); !ok || kind != "rows.result" {
		t.Fatalf("Lookup(ResultRow) = (%q, %v), want (rows.result, true)", kind, ok)
	}

	// Key side preferred: the registration lands on string.
	keyPol := policy.Default()
	keyPol.MapPreferElem = false
	regKey := registry.New(keyPol)
	if err := regKey.Register(mapType, "keys.name"); err != nil {
		t.Fatalf("Register prefer key: %v", err)
	}
	if kind, ok := regKey.Lookup(reflect.TypeOf("")); !ok || kind != "keys.name" {
		t.Fatalf("Lookup(string) = (%q, %v), want (keys.name, true)", kind, ok)
	}
}

func TestEntries_SnapshotAndReset(t *testing.T) {
	reg := registry.New(policy.Default())
	if err := reg.Register(reflect.TypeOf(SearchPage{}), "pages.search"); err != nil {
		t.Fatalf("Register(SearchPage): %v", err)
	}
	if err := reg.Register(reflect.TypeOf(ResultRow{}), "rows.result"); err != nil {
		t.Fatalf("Register(ResultRow): %v", err)
	}

	byType := map[reflect.Type]string{}
	for _, e := range reg.Entries() {
		byType[e.Type] = e.Kind
	}
	if byType[reflect.TypeOf(SearchPage{})] != "pages.search" ||
		byType[reflect.TypeOf(ResultRow{})] != "rows.result" {
		t.Fatalf("Entries() = %v, want both registrations present", byType)
	}

	reg.Reset()
	if got := reg.Count(); got != 0 {
		t.Fatalf("Count() after Reset = %d, want 0", got)
	}
	if kind, ok := reg.Lookup(reflect.TypeOf(SearchPage{})); ok || kind != "" {
		t.Fatalf("Lookup after Reset = (%q, %v), want a miss", kind, ok)
	}
	// The snapshot taken before Reset is a copy and keeps its entries.
	if len(byType) != 2 {
		t.Fatalf("snapshot invalidated by Reset: %v", byType)
	}
}

func TestLookup_NilAndUnknown(t *testing.T) {
	reg := registry.New(policy.Default())

	if kind, ok := reg.Lookup(nil); ok || kind != "" {
		t.Fatalf("Lookup(nil) = (%q, %v), want a miss", kind, ok)
	}
	if kind, ok := reg.Lookup(reflect.TypeOf(SearchPage{})); ok || kind != "" {
		t.Fatalf("Lookup(unregistered) = (%q, %v), want a miss", kind, ok)
	}
}
