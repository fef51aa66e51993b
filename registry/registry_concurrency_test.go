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
	"reflect"
	"runtime"
	"sync"
	"testing"

	"dirpx.dev/omx/apis"
	"dirpx.dev/omx/policy"
	"dirpx.dev/omx/registry"
)

var _ apis.Registry = registry.New(policy.Default())

// Distinct named types standing in for a suite's page and widget models.
type homePage struct{}
type loginForm struct{}
type navBar struct{}
type statusBadge struct{}
type detailPane struct{}
type footerBar struct{}

// Register, Lookup, Entries and Count run together from many goroutines
// without races, and the registered associations never drift.
func TestRegistry_ConcurrentReadersAndWriters(t *testing.T) {
	reg := registry.New(policy.Default())

	types := []reflect.Type{
		reflect.TypeOf(homePage{}),
		reflect.TypeOf(loginForm{}),
		reflect.TypeOf(navBar{}),
		reflect.TypeOf(statusBadge{}),
		reflect.TypeOf(detailPane{}),
		reflect.TypeOf(footerBar{}),
	}
	kinds := []string{
		"pages.home", "forms.login", "widgets.nav",
		"widgets.badge", "panes.detail", "widgets.footer",
	}
	for i, tt := range types {
		if err := reg.Register(tt, kinds[i]); err != nil {
			t.Fatalf("seed Register(%v): %v", tt, err)
		}
	}

	workers := runtime.GOMAXPROCS(0) * 4
	var wg sync.WaitGroup

	// Readers walk lookups and snapshots.
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < 5000; i++ {
				idx := i % len(types)
				if got, ok := reg.Lookup(types[idx]); !ok || got != kinds[idx] {
					t.Errorf("Lookup(%v) = (%q, %v), want %q", types[idx], got, ok, kinds[idx])
					return
				}
				if i%100 == 0 {
					_ = reg.Entries()
					_ = reg.Count()
				}
			}
		}()
	}

	// Writers re-register the same pairs; idempotent, never an error.
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(id int) {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				j := (i + id) % len(types)
				if err := reg.Register(types[j], kinds[j]); err != nil {
					t.Errorf("re-Register(%v): %v", types[j], err)
					return
				}
			}
		}(w)
	}

	wg.Wait()

	if got := reg.Count(); got != len(types) {
		t.Fatalf("Count() = %d, want %d", got, len(types))
	}
	snapshot := map[reflect.Type]string{}
	for _, e := range reg.Entries() {
		snapshot[e.Type] = e.Kind
	}
	for i, tt := range types {
		if snapshot[tt] != kinds[i] {
			t.Fatalf("entry for %v = %q, want %q", tt, snapshot[tt], kinds[i])
		}
	}
}

// Racing first registrations with different labels elect exactly one
// winner; the loser sees the conflict error and the winner sticks.
func TestRegistry_ContestedFirstRegistration(t *testing.T) {
	type contested struct{}
	reg := registry.New(policy.Default())
	typ := reflect.TypeOf(contested{})
	labels := []string{"pages.contested-a", "pages.contested-b"}

	var wg sync.WaitGroup
	errs := make([]error, len(labels))
	wg.Add(len(labels))
	for i := range labels {
		go func(i int) {
			defer wg.Done()
			errs[i] = reg.Register(typ, labels[i])
		}(i)
	}
	wg.Wait()

	winner, ok := reg.Lookup(typ)
	if !ok || (winner != labels[0] && winner != labels[1]) {
		t.Fatalf("Lookup = (%q, %v), want one of the contested labels", winner, ok)
	}
	for i, err := range errs {
		if labels[i] == winner && err != nil {
			t.Fatalf("winning Register(%q) errored: %v", labels[i], err)
		}
		if labels[i] != winner && err == nil {
			t.Fatalf("losing Register(%q) succeeded alongside %q", labels[i], winner)
		}
	}
	// The winner stays put on later attempts.
	for _, l := range labels {
		_ = reg.Register(typ, l)
	}
	if got, _ := reg.Lookup(typ); got != winner {
		t.Fatalf("label drifted after retries: %q, want %q", got, winner)
	}
}
