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

package builder

import (
	"dirpx.dev/omx/apis"
	"dirpx.dev/omx/registry"
	"dirpx.dev/omx/resolver"
	"dirpx.dev/omx/strategy"
)

// New returns the stock apis.Builder. It assembles the pieces the root
// package snapshots: a normalizing registry and the three-step resolver
// chain (self-labelling models, explicit registrations, reflection).
func New() apis.Builder {
	return &builder{}
}

type builder struct{}

// BuildRegistry constructs a registry under pol. Registrations from the
// previous registry are carried into the new one, so a policy change does
// not lose explicitly registered kinds.
func (b *builder) BuildRegistry(pol apis.Policy, prev apis.Registry, _ any) apis.Registry {
	next := registry.New(pol)
	if prev != nil {
		for _, e := range prev.Entries() {
			_ = next.Register(e.Type, e.Kind)
		}
	}
	return next
}

// BuildResolver constructs the resolver chain over reg. The previous
// resolver is not reused; strategies are cheap and a fresh chain picks up
// the rebuilt registry.
func (b *builder) BuildResolver(pol apis.Policy, reg apis.Registry, _ apis.Resolver, _ any) apis.Resolver {
	return resolver.New(
		strategy.NewNamerStrategy(),
		strategy.NewRegistryStrategy(reg),
		strategy.NewReflectStrategy(),
	)
}
