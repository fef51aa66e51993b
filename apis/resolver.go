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

// Resolver turns values and types into kind labels by running a strategy
// chain. Resolution never fails: when no strategy answers, the label is
// the empty string and callers render their own fallback.
type Resolver interface {
	// Resolve returns the kind label for v, or "" when no strategy answers.
	Resolve(v any, pol Policy) string

	// ResolveType returns the kind label for t, or "" when no strategy answers.
	ResolveType(t reflect.Type, pol Policy) string
}
