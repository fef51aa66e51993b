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

// KindNamer lets a type choose the kind label used for it in paths,
// diagnostics and registry lookups, overriding both registered labels
// and the reflect-derived fallback.
//
// ModelKind must be callable on a zero value and must return the same
// string on every call. An empty string means "no opinion" and defers
// to the next resolution strategy.
type KindNamer interface {
	ModelKind() string
}

// KindDescriber optionally augments a kind label with a short
// free-form description for diagnostics output. Implementing it is
// never required.
type KindDescriber interface {
	KindDescription() string
}

// KindNamerFunc adapts a plain function to the KindNamer interface.
type KindNamerFunc func() string

// ModelKind calls f.
func (f KindNamerFunc) ModelKind() string { return f() }
