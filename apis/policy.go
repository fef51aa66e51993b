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

// Policy is the set of tunables that steer kind-label resolution. It is
// passed by value through every strategy call and must be treated as
// immutable once handed out; resolvers are free to cache per-Policy
// results.
type Policy struct {
	// IncludeBuiltins reports whether predeclared types ("int", "string")
	// may serve as kind labels. When false such types resolve to the
	// empty label and callers fall back to their own rendering.
	IncludeBuiltins bool

	// MaxUnwrap bounds how many container layers (pointer, slice, array,
	// chan, map) normalization peels while searching for a named type.
	// Zero forbids peeling entirely.
	MaxUnwrap int

	// MapPreferElem selects which side of a map type is inspected first
	// when hunting for a named type: the element side when true, the key
	// side otherwise. The other side remains the fallback.
	MapPreferElem bool
}
