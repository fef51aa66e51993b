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

import "reflect"

// Registry is the reflection-free lookup table of the kind-label chain:
// applications register their model types once, up front, and every later
// lookup is a plain table read. Implementations must be safe for
// concurrent use.
type Registry interface {
	// Register associates t, normalized to its nearest named type, with a
	// fixed kind label. Repeating an existing association is a no-op;
	// registering a second label for the same type is an error.
	Register(t reflect.Type, kind string) error

	// Lookup returns the kind label registered for t, if any.
	Lookup(t reflect.Type) (kind string, ok bool)

	// Entries returns a point-in-time snapshot of all associations, in
	// unspecified order.
	Entries() []Entry

	// Count returns the number of associations.
	Count() int

	// Reset removes every association.
	Reset()
}

// Entry is one (type, kind) association from a Registry snapshot.
type Entry struct {
	// Type is the registered type after normalization.
	Type reflect.Type

	// Kind is the label it resolves to.
	Kind string
}
