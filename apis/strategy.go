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

package apis

import (
	"reflect"
)

// Strategy is one step of kind-label resolution. A Resolver asks its
// strategies in chain order and the first answer wins; a strategy with no
// opinion reports handled false so the chain moves on. The stock chain
// asks the model itself (KindNamer), then the registry, then falls back
// to reflection.
type Strategy interface {
	// TryResolve inspects a live value and returns its kind label with
	// handled true when this strategy can answer for v.
	TryResolve(v any, pol Policy) (kind string, handled bool)

	// TryResolveType is the type-level variant used when no instance is
	// at hand. Strategies that need a value report handled false here.
	TryResolveType(t reflect.Type, pol Policy) (kind string, handled bool)
}
